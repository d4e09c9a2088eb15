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

package primitive

import "unsafe"

// Window is an opaque handle to a curses WINDOW. The nil handle is the NULL
// pointer. A Window is never dereferenced outside of the library that created
// it.
type Window unsafe.Pointer

// Panel is an opaque handle to a PANEL of the panel extension. The nil handle
// is the NULL pointer.
type Panel unsafe.Pointer

// Return codes used by the library.
const (
	OK  int32 = 0
	ERR int32 = -1
)

// Results of predicate calls (is_term_resized, panel_hidden).
const (
	False int32 = 0
	True  int32 = 1
)

// Library is the complete set of calls used by the curses package. There is
// one method per entry point and each method makes exactly one call into the
// library.
//
// None of the methods are safe for concurrent use. A Library instance should
// only ever be used from a single goroutine.
type Library interface {
	// session
	Initscr() Window
	Endwin() int32
	ResizeTerm(lines int32, columns int32) int32
	IsTermResized(lines int32, columns int32) int32
	Doupdate() int32
	Echo() int32
	Noecho() int32
	Beep() int32
	Flash() int32

	// text returned by the library. a nil slice is a NULL pointer
	Longname() []byte
	Termname() []byte
	CursesVersion() []byte

	// windows
	Newwin(lines int32, columns int32, line int32, column int32) Window
	Delwin(w Window) int32
	Getmaxx(w Window) int32
	Getmaxy(w Window) int32
	Getcurx(w Window) int32
	Getcury(w Window) int32
	Wmove(w Window, line int32, column int32) int32
	// the string must not contain a nul byte
	Waddstr(w Window, s []byte) int32
	Wclrtoeol(w Window) int32
	Wdelch(w Window) int32
	Wgetch(w Window) int32
	Wtimeout(w Window, delay int32)

	// panels
	NewPanel(w Window) Panel
	DelPanel(p Panel) int32
	PanelWindow(p Panel) Window
	UpdatePanels()
	TopPanel(p Panel) int32
	BottomPanel(p Panel) int32
	HidePanel(p Panel) int32
	ShowPanel(p Panel) int32
	PanelHidden(p Panel) int32
	MovePanel(p Panel, line int32, column int32) int32
	ReplacePanel(p Panel, w Window) int32
}

// Rescuer is implemented by libraries that can return the terminal to a usable
// state when the program must stop without an orderly shutdown of the library.
type Rescuer interface {
	Rescue()
}
