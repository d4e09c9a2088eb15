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

//go:build assertions

package assert

import (
	"fmt"
)

// Owner records the goroutine that created a resource.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GetGoRoutineID()}
}

// Check panics if the calling goroutine is not the owner. The label is used
// in the panic message.
func (o Owner) Check(label string) {
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("assert: %s used from goroutine %d but owned by goroutine %d", label, id, o.id))
	}
}

// Enabled is true when the assertions build constraint is present.
const Enabled = true
