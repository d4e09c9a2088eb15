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
	"time"
	"unsafe"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/curst/curses/primitive"
)

// maximum number of codes waiting to be read by wgetch.
const inputQueueLen = 4096

// Library is a simulated curses library. It implements primitive.Library.
type Library struct {
	screen tcell.SimulationScreen

	// size of the simulated terminal. the screen is resized to these values
	// by resize_term(0, 0)
	termLines   int32
	termColumns int32

	initialised bool

	stdscr  *window
	windows map[primitive.Window]*window

	// panel stack. the first entry is the bottom of the stack
	panels []*panel

	// the result of the most recent update_panels
	virtual [][]rune

	input chan int32
	echo  bool

	beeps   int
	flashes int

	termName []byte
	longName []byte
	version  []byte

	// forced failures. the number of remaining failures for each call
	failures map[string]int
}

type panel struct {
	win    *window
	hidden bool
}

// New returns a simulated curses library for a terminal of the specified
// size. The library is not initialised until Initscr() is called.
func New(lines int, columns int) *Library {
	return &Library{
		screen:      tcell.NewSimulationScreen("UTF-8"),
		termLines:   int32(lines),
		termColumns: int32(columns),
		windows:     make(map[primitive.Window]*window),
		input:       make(chan int32, inputQueueLen),
		echo:        true,
		termName:    []byte("simulation"),
		longName:    []byte("tcell simulation screen"),
		version:     []byte("curst simulation 1.0"),
		failures:    make(map[string]int),
	}
}

// Fail causes the next n calls of the named entry point (eg. "delwin") to
// fail. A value of zero removes any pending failures.
func (lib *Library) Fail(call string, n int) {
	if n <= 0 {
		delete(lib.failures, call)
		return
	}
	lib.failures[call] = n
}

// fail returns true if a failure has been requested for the call.
func (lib *Library) fail(call string) bool {
	n, ok := lib.failures[call]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(lib.failures, call)
	} else {
		lib.failures[call] = n - 1
	}
	return true
}

// Screen returns the tcell screen used as the simulated terminal.
func (lib *Library) Screen() tcell.SimulationScreen {
	return lib.screen
}

// SetTerminalSize changes the size of the simulated terminal. The curses
// screen is not changed until resize_term is called.
func (lib *Library) SetTerminalSize(lines int, columns int) {
	lib.termLines = int32(lines)
	lib.termColumns = int32(columns)
	if lib.initialised {
		lib.screen.SetSize(columns, lines)
	}
}

// SetTermName sets the value returned by termname. The value is not
// validated and a nil value causes termname to return NULL.
func (lib *Library) SetTermName(name []byte) {
	lib.termName = name
}

// SetLongname sets the value returned by longname. See SetTermName().
func (lib *Library) SetLongname(name []byte) {
	lib.longName = name
}

// Beeps returns the number of times beep has been called successfully.
func (lib *Library) Beeps() int {
	return lib.beeps
}

// Flashes returns the number of times flash has been called successfully.
func (lib *Library) Flashes() int {
	return lib.flashes
}

// Echoing returns true if typed characters are echoed.
func (lib *Library) Echoing() bool {
	return lib.echo
}

// Initialised returns true between successful calls to initscr and endwin.
func (lib *Library) Initialised() bool {
	return lib.initialised
}

// Live returns the number of windows (including stdscr) and panels that have
// been created and not yet deleted.
func (lib *Library) Live() (windows int, panels int) {
	return len(lib.windows), len(lib.panels)
}

// Text returns the content of the window with trailing spaces removed. The
// window does not need to be on the screen.
func (lib *Library) Text(w primitive.Window) []string {
	win, ok := lib.windows[w]
	if !ok {
		return nil
	}
	return win.text()
}

// Contents returns the content of the simulated terminal as of the most recent
// doupdate, with trailing spaces removed.
func (lib *Library) Contents() []string {
	cols, lines := lib.screen.Size()
	s := make([]string, lines)
	for y := 0; y < lines; y++ {
		row := make([]rune, 0, cols)
		for x := 0; x < cols; x++ {
			r, _, _, w := lib.screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			row = append(row, r)
			if w > 1 {
				x += w - 1
			}
		}
		s[y] = rowString(row)
	}
	return s
}

// Inject adds the bytes of the string to the input queue. wgetch returns one
// byte at a time, as ncurses does.
func (lib *Library) Inject(s string) {
	for i := 0; i < len(s); i++ {
		lib.InjectCode(int32(s[i]))
	}
}

// InjectCode adds a raw code to the input queue.
func (lib *Library) InjectCode(code int32) {
	lib.input <- code
}

// escape sequences for keys that do not produce a single code. the keypad is
// never enabled so ncurses passes the terminal's sequence through.
var sequences = map[tcell.Key]string{
	tcell.KeyUp:     "\x1b[A",
	tcell.KeyDown:   "\x1b[B",
	tcell.KeyRight:  "\x1b[C",
	tcell.KeyLeft:   "\x1b[D",
	tcell.KeyHome:   "\x1b[H",
	tcell.KeyEnd:    "\x1b[F",
	tcell.KeyInsert: "\x1b[2~",
	tcell.KeyDelete: "\x1b[3~",
	tcell.KeyPgUp:   "\x1b[5~",
	tcell.KeyPgDn:   "\x1b[6~",
}

// InjectKey adds the codes that a terminal would produce for the tcell key to
// the input queue. For tcell.KeyRune the rune argument is used and the ModCtrl
// modifier produces the corresponding control code.
func (lib *Library) InjectKey(key tcell.Key, r rune, mod tcell.ModMask) {
	if mod&tcell.ModAlt == tcell.ModAlt {
		lib.InjectCode(0x1b)
	}

	switch key {
	case tcell.KeyRune:
		if mod&tcell.ModCtrl == tcell.ModCtrl {
			lib.InjectCode(int32(r) & 0x1f)
			return
		}
		lib.Inject(string(r))
	case tcell.KeyEnter:
		// carriage return is translated to newline because nl() is the
		// default mode
		lib.InjectCode('\n')
	case tcell.KeyTab:
		lib.InjectCode('\t')
	case tcell.KeyBackspace:
		lib.InjectCode('\b')
	case tcell.KeyBackspace2:
		lib.InjectCode(0x7f)
	case tcell.KeyEscape:
		lib.InjectCode(0x1b)
	default:
		if s, ok := sequences[key]; ok {
			lib.Inject(s)
		}
	}
}

func (lib *Library) handle(w *window) primitive.Window {
	return primitive.Window(unsafe.Pointer(w))
}

func (lib *Library) Initscr() primitive.Window {
	if lib.fail("initscr") {
		return nil
	}
	if lib.initialised {
		return lib.handle(lib.stdscr)
	}
	if err := lib.screen.Init(); err != nil {
		return nil
	}
	lib.screen.SetSize(int(lib.termColumns), int(lib.termLines))
	lib.stdscr = newWindow(lib.termLines, lib.termColumns, 0, 0)
	lib.windows[lib.handle(lib.stdscr)] = lib.stdscr
	lib.initialised = true
	lib.compose()
	return lib.handle(lib.stdscr)
}

func (lib *Library) Endwin() int32 {
	if lib.fail("endwin") || !lib.initialised {
		return primitive.ERR
	}
	lib.screen.Fini()
	lib.initialised = false
	return primitive.OK
}

func (lib *Library) ResizeTerm(lines int32, columns int32) int32 {
	if lib.fail("resize_term") || !lib.initialised || lines < 0 || columns < 0 {
		return primitive.ERR
	}
	if lines == 0 {
		lines = lib.termLines
	}
	if columns == 0 {
		columns = lib.termColumns
	}

	// windows that no longer fit are reduced in size
	for _, w := range lib.windows {
		if w == lib.stdscr {
			continue
		}
		w.line = min(w.line, lines-1)
		w.column = min(w.column, columns-1)
		w.resize(min(w.lines, lines-w.line), min(w.columns, columns-w.column))
	}
	lib.stdscr.resize(lines, columns)
	lib.screen.SetSize(int(columns), int(lines))

	return primitive.OK
}

func (lib *Library) IsTermResized(lines int32, columns int32) int32 {
	if lib.fail("is_term_resized") || !lib.initialised {
		return primitive.False
	}
	if lines > 0 && columns > 0 && (lines != lib.stdscr.lines || columns != lib.stdscr.columns) {
		return primitive.True
	}
	return primitive.False
}

func (lib *Library) Doupdate() int32 {
	if lib.fail("doupdate") || !lib.initialised {
		return primitive.ERR
	}
	lib.screen.Clear()
	for y, row := range lib.virtual {
		for x, r := range row {
			if r != continuation {
				lib.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			}
		}
	}
	lib.screen.Show()
	return primitive.OK
}

func (lib *Library) Echo() int32 {
	if lib.fail("echo") {
		return primitive.ERR
	}
	lib.echo = true
	return primitive.OK
}

func (lib *Library) Noecho() int32 {
	if lib.fail("noecho") {
		return primitive.ERR
	}
	lib.echo = false
	return primitive.OK
}

func (lib *Library) Beep() int32 {
	if lib.fail("beep") || !lib.initialised {
		return primitive.ERR
	}
	lib.screen.Beep()
	lib.beeps++
	return primitive.OK
}

func (lib *Library) Flash() int32 {
	if lib.fail("flash") || !lib.initialised {
		return primitive.ERR
	}
	lib.flashes++
	return primitive.OK
}

// copy text so that the caller can never modify the library's buffer
func copyText(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func (lib *Library) Longname() []byte {
	if lib.fail("longname") {
		return nil
	}
	return copyText(lib.longName)
}

func (lib *Library) Termname() []byte {
	if lib.fail("termname") {
		return nil
	}
	return copyText(lib.termName)
}

func (lib *Library) CursesVersion() []byte {
	if lib.fail("curses_version") {
		return nil
	}
	return copyText(lib.version)
}

func (lib *Library) Newwin(lines int32, columns int32, line int32, column int32) primitive.Window {
	if lib.fail("newwin") || !lib.initialised {
		return nil
	}

	// zero means extend to the edge of the screen
	if lines == 0 {
		lines = lib.stdscr.lines - line
	}
	if columns == 0 {
		columns = lib.stdscr.columns - column
	}

	if lines <= 0 || columns <= 0 || line < 0 || column < 0 {
		return nil
	}
	if line+lines > lib.stdscr.lines || column+columns > lib.stdscr.columns {
		return nil
	}

	w := newWindow(lines, columns, line, column)
	h := lib.handle(w)
	lib.windows[h] = w
	return h
}

func (lib *Library) Delwin(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("delwin") || !ok || win.panels > 0 {
		return primitive.ERR
	}
	delete(lib.windows, w)
	return primitive.OK
}

func (lib *Library) Getmaxx(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("getmaxx") || !ok {
		return primitive.ERR
	}
	return win.columns
}

func (lib *Library) Getmaxy(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("getmaxy") || !ok {
		return primitive.ERR
	}
	return win.lines
}

func (lib *Library) Getcurx(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("getcurx") || !ok {
		return primitive.ERR
	}
	return win.cx
}

func (lib *Library) Getcury(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("getcury") || !ok {
		return primitive.ERR
	}
	return win.cy
}

func (lib *Library) Wmove(w primitive.Window, line int32, column int32) int32 {
	win, ok := lib.windows[w]
	if lib.fail("wmove") || !ok {
		return primitive.ERR
	}
	if line < 0 || column < 0 || line >= win.lines || column >= win.columns {
		return primitive.ERR
	}
	win.cy = line
	win.cx = column
	return primitive.OK
}

func (lib *Library) Waddstr(w primitive.Window, s []byte) int32 {
	win, ok := lib.windows[w]
	if lib.fail("waddstr") || !ok {
		return primitive.ERR
	}
	if !win.addBytes(s) {
		return primitive.ERR
	}
	return primitive.OK
}

func (lib *Library) Wclrtoeol(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("wclrtoeol") || !ok {
		return primitive.ERR
	}
	win.clearToEOL()
	return primitive.OK
}

func (lib *Library) Wdelch(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("wdelch") || !ok {
		return primitive.ERR
	}
	win.deleteChar()
	return primitive.OK
}

func (lib *Library) Wgetch(w primitive.Window) int32 {
	win, ok := lib.windows[w]
	if lib.fail("wgetch") || !ok {
		return primitive.ERR
	}

	var code int32
	switch {
	case win.delay < 0:
		code = <-lib.input
	case win.delay == 0:
		select {
		case code = <-lib.input:
		default:
			return primitive.ERR
		}
	default:
		select {
		case code = <-lib.input:
		case <-time.After(time.Duration(win.delay) * time.Millisecond):
			return primitive.ERR
		}
	}

	// only printable ASCII is echoed. other codes may be part of an escape
	// or multi-byte sequence
	if lib.echo && code >= 0x20 && code < 0x7f {
		win.addRune(rune(code))
	}

	return code
}

func (lib *Library) Wtimeout(w primitive.Window, delay int32) {
	if win, ok := lib.windows[w]; ok {
		win.delay = delay
	}
}
