// This file is part of curst.
//
// curst is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// curst is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with curst.  If not, see <https://www.gnu.org/licenses/>.

//go:build !assertions

package assert

// Owner records the goroutine that created a resource.
type Owner struct{}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{}
}

// Check does nothing without the assertions build constraint.
func (o Owner) Check(_ string) {}

// Enabled is true when the assertions build constraint is present.
const Enabled = false
