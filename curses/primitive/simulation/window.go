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

package simulation

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// placeholder for the second cell of a double width rune.
const continuation = rune(0)

type window struct {
	lines   int32
	columns int32

	// origin on the screen
	line   int32
	column int32

	// cursor
	cy int32
	cx int32

	cells [][]rune

	// input delay in milliseconds. negative values mean wait forever
	delay int32

	// number of panels that wrap this window
	panels int
}

func newWindow(lines, columns, line, column int32) *window {
	w := &window{
		lines:   lines,
		columns: columns,
		line:    line,
		column:  column,
		delay:   -1,
	}
	w.cells = make([][]rune, lines)
	for i := range w.cells {
		w.cells[i] = blank(columns)
	}
	return w
}

func blank(n int32) []rune {
	r := make([]rune, n)
	for i := range r {
		r[i] = ' '
	}
	return r
}

// resize the window, preserving as much of the content as possible.
func (w *window) resize(lines, columns int32) {
	cells := make([][]rune, lines)
	for i := range cells {
		cells[i] = blank(columns)
		if int32(i) < w.lines {
			copy(cells[i], w.cells[i])
		}
	}
	w.cells = cells
	w.lines = lines
	w.columns = columns
	w.cy = min(w.cy, lines-1)
	w.cx = min(w.cx, columns-1)
}

// advance the cursor by one cell. returns false if the cursor is in the
// bottom right corner and cannot advance.
func (w *window) advance() bool {
	w.cx++
	if w.cx < w.columns {
		return true
	}
	if w.cy+1 >= w.lines {
		w.cx = w.columns - 1
		return false
	}
	w.cy++
	w.cx = 0
	return true
}

// newline clears the rest of the current line and moves to the start of the
// next line.
func (w *window) newline() bool {
	w.clearToEOL()
	if w.cy+1 >= w.lines {
		return false
	}
	w.cy++
	w.cx = 0
	return true
}

func (w *window) clearToEOL() {
	for x := w.cx; x < w.columns; x++ {
		w.cells[w.cy][x] = ' '
	}
}

func (w *window) deleteChar() {
	row := w.cells[w.cy]
	copy(row[w.cx:], row[w.cx+1:])
	row[w.columns-1] = ' '
}

// addRune writes a single rune at the cursor with the same rules as ncurses
// waddch: control characters are made visible, tabs expand to the next tab
// stop and double width runes wrap as a whole.
func (w *window) addRune(r rune) bool {
	switch {
	case r == '\n':
		return w.newline()
	case r == '\r':
		w.cx = 0
		return true
	case r == '\b':
		if w.cx > 0 {
			w.cx--
		}
		return true
	case r == '\t':
		for {
			w.cells[w.cy][w.cx] = ' '
			if !w.advance() {
				return false
			}
			if w.cx%8 == 0 {
				return true
			}
		}
	case r < 0x20 || r == 0x7f:
		// control characters are shown in caret notation
		if !w.addRune('^') {
			return false
		}
		return w.addRune(r ^ 0x40)
	}

	width := int32(runewidth.RuneWidth(r))
	if width == 0 {
		return true
	}

	// a double width rune that does not fit on the line moves to the next
	if width > 1 && w.cx+width > w.columns {
		for w.cx < w.columns {
			w.cells[w.cy][w.cx] = ' '
			w.cx++
		}
		w.cx--
		if !w.advance() {
			return false
		}
	}

	w.cells[w.cy][w.cx] = r
	for i := int32(1); i < width; i++ {
		if !w.advance() {
			return false
		}
		w.cells[w.cy][w.cx] = continuation
	}
	return w.advance()
}

// addBytes writes the UTF-8 encoded string. invalid bytes are shown as the
// replacement character.
func (w *window) addBytes(b []byte) bool {
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		b = b[n:]
		if !w.addRune(r) {
			return false
		}
	}
	return true
}

// text returns the content of the window with trailing spaces removed.
func (w *window) text() []string {
	s := make([]string, w.lines)
	for i, row := range w.cells {
		s[i] = rowString(row)
	}
	return s
}

func rowString(row []rune) string {
	b := make([]rune, 0, len(row))
	for _, r := range row {
		if r != continuation {
			b = append(b, r)
		}
	}
	end := len(b)
	for end > 0 && b[end-1] == ' ' {
		end--
	}
	return string(b[:end])
}
