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

package curses

import (
	"fmt"

	"github.com/jetsetilly/curst/curated"
)

// Location on the screen or in a window. The origin is the top left corner.
type Location struct {
	Line   uint32
	Column uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.Line, l.Column)
}

// Size of a window or of the screen. Both fields are always greater than
// zero. Use NewSize() to create a Size.
type Size struct {
	lines   uint32
	columns uint32
}

// NewSize returns a Size if both values are greater than zero.
func NewSize(lines uint32, columns uint32) (Size, error) {
	if lines == 0 || columns == 0 {
		return Size{}, curated.Errorf(InvalidZero)
	}
	return Size{lines: lines, columns: columns}, nil
}

// Lines returns the number of lines.
func (s Size) Lines() uint32 {
	return s.lines
}

// Columns returns the number of columns.
func (s Size) Columns() uint32 {
	return s.columns
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.lines, s.columns)
}

// the size and location of a window, as library arguments
type bounds struct {
	lines, columns int32
	line, column   int32
}

// the zero value of Size is not valid. zero has a special meaning for newwin
// so it must never be passed on
func toBounds(size Size, origin Location) (bounds, error) {
	var b bounds
	var err error
	if size.lines == 0 || size.columns == 0 {
		return b, curated.Errorf(InvalidZero)
	}
	if b.lines, err = toInt(size.lines); err != nil {
		return b, err
	}
	if b.columns, err = toInt(size.columns); err != nil {
		return b, err
	}
	if b.line, err = toInt(origin.Line); err != nil {
		return b, err
	}
	if b.column, err = toInt(origin.Column); err != nil {
		return b, err
	}
	return b, nil
}
