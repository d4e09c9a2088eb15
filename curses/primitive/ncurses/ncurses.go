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

//go:build cgo

package ncurses

/*
#cgo LDFLAGS: -lpanel -lncurses

#include <stdlib.h>
#include <string.h>
#include <ncurses.h>
#include <panel.h>

static inline int curst_getmaxx(WINDOW *w) { return getmaxx(w); }
static inline int curst_getmaxy(WINDOW *w) { return getmaxy(w); }
static inline int curst_getcurx(WINDOW *w) { return getcurx(w); }
static inline int curst_getcury(WINDOW *w) { return getcury(w); }
static inline int curst_is_term_resized(int lines, int columns) { return is_term_resized(lines, columns) ? TRUE : FALSE; }
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses/primitive"
	"github.com/jetsetilly/curst/easyterm"
	"github.com/jetsetilly/curst/logger"
)

// Library is the ncurses implementation of primitive.Library.
type Library struct {
	// terminal attributes from before initscr() was called
	term *easyterm.Terminal
}

// New checks that the standard input and output are connected to a terminal
// and records the terminal's attributes for use by Rescue().
//
// The library is not initialised. That happens when Initscr() is called.
func New() (primitive.Library, error) {
	if !easyterm.IsTerminal(os.Stdin) {
		return nil, curated.Errorf(NotATerminal, "stdin")
	}
	if !easyterm.IsTerminal(os.Stdout) {
		return nil, curated.Errorf(NotATerminal, "stdout")
	}

	term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return nil, curated.Errorf(NotAvailable, err)
	}

	return &Library{term: term}, nil
}

// Rescue implements the primitive.Rescuer interface.
func (lib *Library) Rescue() {
	if err := lib.term.Restore(); err != nil {
		logger.Log(logger.Allow, "ncurses", err)
	}
}

func window(w primitive.Window) *C.WINDOW {
	return (*C.WINDOW)(w)
}

func panel(p primitive.Panel) *C.PANEL {
	return (*C.PANEL)(p)
}

// copy a string owned by the library. the library's buffer may be reused by a
// later call so the bytes must be copied immediately
func goBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(s), C.int(C.strlen(s)))
}

func (lib *Library) Initscr() primitive.Window {
	return primitive.Window(unsafe.Pointer(C.initscr()))
}

func (lib *Library) Endwin() int32 {
	return int32(C.endwin())
}

func (lib *Library) ResizeTerm(lines int32, columns int32) int32 {
	return int32(C.resize_term(C.int(lines), C.int(columns)))
}

func (lib *Library) IsTermResized(lines int32, columns int32) int32 {
	return int32(C.curst_is_term_resized(C.int(lines), C.int(columns)))
}

func (lib *Library) Doupdate() int32 {
	return int32(C.doupdate())
}

func (lib *Library) Echo() int32 {
	return int32(C.echo())
}

func (lib *Library) Noecho() int32 {
	return int32(C.noecho())
}

func (lib *Library) Beep() int32 {
	return int32(C.beep())
}

func (lib *Library) Flash() int32 {
	return int32(C.flash())
}

func (lib *Library) Longname() []byte {
	return goBytes(C.longname())
}

func (lib *Library) Termname() []byte {
	return goBytes(C.termname())
}

func (lib *Library) CursesVersion() []byte {
	return goBytes(C.curses_version())
}

func (lib *Library) Newwin(lines int32, columns int32, line int32, column int32) primitive.Window {
	return primitive.Window(unsafe.Pointer(C.newwin(C.int(lines), C.int(columns), C.int(line), C.int(column))))
}

func (lib *Library) Delwin(w primitive.Window) int32 {
	return int32(C.delwin(window(w)))
}

func (lib *Library) Getmaxx(w primitive.Window) int32 {
	return int32(C.curst_getmaxx(window(w)))
}

func (lib *Library) Getmaxy(w primitive.Window) int32 {
	return int32(C.curst_getmaxy(window(w)))
}

func (lib *Library) Getcurx(w primitive.Window) int32 {
	return int32(C.curst_getcurx(window(w)))
}

func (lib *Library) Getcury(w primitive.Window) int32 {
	return int32(C.curst_getcury(window(w)))
}

func (lib *Library) Wmove(w primitive.Window, line int32, column int32) int32 {
	return int32(C.wmove(window(w), C.int(line), C.int(column)))
}

func (lib *Library) Waddstr(w primitive.Window, s []byte) int32 {
	cs := C.CString(string(s))
	defer C.free(unsafe.Pointer(cs))
	return int32(C.waddstr(window(w), cs))
}

func (lib *Library) Wclrtoeol(w primitive.Window) int32 {
	return int32(C.wclrtoeol(window(w)))
}

func (lib *Library) Wdelch(w primitive.Window) int32 {
	return int32(C.wdelch(window(w)))
}

func (lib *Library) Wgetch(w primitive.Window) int32 {
	return int32(C.wgetch(window(w)))
}

func (lib *Library) Wtimeout(w primitive.Window, delay int32) {
	C.wtimeout(window(w), C.int(delay))
}

func (lib *Library) NewPanel(w primitive.Window) primitive.Panel {
	return primitive.Panel(unsafe.Pointer(C.new_panel(window(w))))
}

func (lib *Library) DelPanel(p primitive.Panel) int32 {
	return int32(C.del_panel(panel(p)))
}

func (lib *Library) PanelWindow(p primitive.Panel) primitive.Window {
	return primitive.Window(unsafe.Pointer(C.panel_window(panel(p))))
}

func (lib *Library) UpdatePanels() {
	C.update_panels()
}

func (lib *Library) TopPanel(p primitive.Panel) int32 {
	return int32(C.top_panel(panel(p)))
}

func (lib *Library) BottomPanel(p primitive.Panel) int32 {
	return int32(C.bottom_panel(panel(p)))
}

func (lib *Library) HidePanel(p primitive.Panel) int32 {
	return int32(C.hide_panel(panel(p)))
}

func (lib *Library) ShowPanel(p primitive.Panel) int32 {
	return int32(C.show_panel(panel(p)))
}

func (lib *Library) PanelHidden(p primitive.Panel) int32 {
	return int32(C.panel_hidden(panel(p)))
}

func (lib *Library) MovePanel(p primitive.Panel, line int32, column int32) int32 {
	return int32(C.move_panel(panel(p), C.int(line), C.int(column)))
}

func (lib *Library) ReplacePanel(p primitive.Panel, w primitive.Window) int32 {
	return int32(C.replace_panel(panel(p), window(w)))
}
