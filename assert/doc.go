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

// Package assert provides run-time checks that are only compiled into the
// program when the assertions build constraint is present. Without the
// constraint the checks are empty functions and cost nothing.
//
// The curses package uses the goroutine ownership check to confirm that a
// session is only ever used from the goroutine that created it.
package assert
