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

// Package primitive defines the raw interface to a curses library and the
// panel extension.
//
// Each method of the Library interface corresponds to exactly one call into
// the library. Arguments and results are passed through unmodified: return
// codes are the library's own integers, handles may be nil, and text is a copy
// of the library's bytes with no validation. It is the responsibility of the
// curses package to translate these results into Go values and errors.
//
// There are two implementations. The ncurses package is the cgo binding to
// the system's ncurses and panel libraries. The simulation package is a
// complete curses library in Go with a tcell simulation screen as the
// physical display, and is used for testing.
package primitive
