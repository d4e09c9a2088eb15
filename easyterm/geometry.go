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

package easyterm

import "fmt"

// Geometry contains the dimensions of a terminal.
type Geometry struct {
	// characters
	Rows    uint16
	Columns uint16

	// pixels. zero if the terminal does not report them
	X uint16
	Y uint16
}

func (g Geometry) String() string {
	s := fmt.Sprintf("%d lines x %d columns", g.Rows, g.Columns)
	if g.X > 0 && g.Y > 0 {
		s = fmt.Sprintf("%s (%dx%d pixels)", s, g.X, g.Y)
	}
	return s
}
