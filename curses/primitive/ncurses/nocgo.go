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

//go:build !cgo

package ncurses

import (
	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses/primitive"
)

// New always fails when cgo is not available.
func New() (primitive.Library, error) {
	return nil, curated.Errorf(NotAvailable, "built without cgo")
}
