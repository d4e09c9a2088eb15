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
	"math"
	"time"

	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses/primitive"
	"github.com/jetsetilly/curst/logger"
)

// Window is a curses window. Windows are created with Curses.NewWindow() or
// Curses.NewWindowAt() and must be released with Release().
type Window struct {
	session *Curses
	handle  primitive.Window

	// the main window is released by Curses.End()
	main bool

	// number of live panels wrapping the window
	panels int

	released bool
}

// NewWindow creates a new window with the size and origin from the session's
// preferences. By default, 10 lines by 30 columns in the top left corner of
// the screen.
func (c *Curses) NewWindow() (*Window, error) {
	c.check()
	size, origin, err := c.prefs.window()
	if err != nil {
		return nil, err
	}
	return c.NewWindowAt(size, origin)
}

// NewWindowAt creates a new window of the specified size with the top left
// corner at the origin. The window must fit on the screen.
func (c *Curses) NewWindowAt(size Size, origin Location) (*Window, error) {
	c.check()

	b, err := toBounds(size, origin)
	if err != nil {
		return nil, err
	}

	h, err := windowHandle(c.lib.Newwin(b.lines, b.columns, b.line, b.column), OpNewwin)
	if err != nil {
		return nil, err
	}

	c.windows++
	logger.Logf(c.prefs, "window", "new window %s at %s", size, origin)

	return &Window{session: c, handle: h}, nil
}

// check that the window can be used
func (w *Window) check() {
	w.session.check()
	if w.released {
		panic(curated.Errorf(UseAfterRelease, "window"))
	}
}

// AddString writes the string at the cursor position and advances the cursor.
// The string must not contain a nul byte.
func (w *Window) AddString(s string) error {
	w.check()
	b, err := userString(s)
	if err != nil {
		return err
	}
	return result(w.session.lib.Waddstr(w.handle, b), OpWaddstr)
}

// ClearToLineEnd erases the window from the cursor to the end of the line.
func (w *Window) ClearToLineEnd() error {
	w.check()
	return result(w.session.lib.Wclrtoeol(w.handle), OpWclrtoeol)
}

// MoveTo moves the cursor. The location is relative to the window's origin.
func (w *Window) MoveTo(loc Location) error {
	w.check()
	b, err := toBounds(Size{1, 1}, loc)
	if err != nil {
		return err
	}
	return result(w.session.lib.Wmove(w.handle, b.line, b.column), OpWmove)
}

// DeleteChar deletes the character at the cursor. The rest of the line moves
// one column to the left.
func (w *Window) DeleteChar() error {
	w.check()
	return result(w.session.lib.Wdelch(w.handle), OpWdelch)
}

// Rows returns the number of lines in the window.
func (w *Window) Rows() (uint32, error) {
	w.check()
	return nonZero(w.session.lib.Getmaxy(w.handle))
}

// Columns returns the number of columns in the window.
func (w *Window) Columns() (uint32, error) {
	w.check()
	return nonZero(w.session.lib.Getmaxx(w.handle))
}

// Size returns the number of lines and columns in the window.
func (w *Window) Size() (Size, error) {
	rows, err := w.Rows()
	if err != nil {
		return Size{}, err
	}
	columns, err := w.Columns()
	if err != nil {
		return Size{}, err
	}
	return NewSize(rows, columns)
}

// Cursor returns the location of the cursor, relative to the window's origin.
func (w *Window) Cursor() (Location, error) {
	w.check()
	line, err := nonNegative(w.session.lib.Getcury(w.handle))
	if err != nil {
		return Location{}, err
	}
	column, err := nonNegative(w.session.lib.Getcurx(w.handle))
	if err != nil {
		return Location{}, err
	}
	return Location{Line: line, Column: column}, nil
}

// WaitPolicy says how long Window.Input() waits for input.
type WaitPolicy int32

// List of fixed WaitPolicy values. Use WaitFor() for a timed wait.
const (
	WaitForever WaitPolicy = -1
	NoWait      WaitPolicy = 0
)

// WaitFor returns a WaitPolicy that waits for the duration. The duration is
// rounded up to the nearest millisecond and limited to math.MaxInt32
// milliseconds. Durations of zero or less are the same as NoWait.
func WaitFor(d time.Duration) WaitPolicy {
	if d <= 0 {
		return NoWait
	}
	ms := d / time.Millisecond
	if d%time.Millisecond != 0 {
		ms++
	}
	if ms > math.MaxInt32 {
		return WaitPolicy(math.MaxInt32)
	}
	return WaitPolicy(ms)
}

// SetWait sets the WaitPolicy for Input().
func (w *Window) SetWait(p WaitPolicy) {
	w.check()
	w.session.lib.Wtimeout(w.handle, int32(p))
}

// Input reads the next input according to the window's WaitPolicy. The
// boolean is false if there was no input.
func (w *Window) Input() (Input, bool) {
	w.check()
	k, ok := readKey(w.session.lib.Wgetch(w.handle))
	if !ok {
		return Input{}, false
	}
	return Input{key: k}, true
}

// Release the window. Panels wrapping the window must be released first.
//
// It is safe to call Release() more than once. The main window is released
// by Curses.End() and calling Release() on it has no effect.
func (w *Window) Release() {
	if w.released || w.main {
		return
	}
	w.session.check()

	if w.panels > 0 {
		panic(curated.Errorf(WindowInPanel, w.panels))
	}

	if err := result(w.session.lib.Delwin(w.handle), OpDelwin); err != nil {
		w.session.fatal(err)
	}

	w.released = true
	w.session.windows--
}
