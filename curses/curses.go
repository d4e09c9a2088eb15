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
	"sync/atomic"

	"github.com/jetsetilly/curst/assert"
	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses/primitive"
	"github.com/jetsetilly/curst/logger"
)

// only one session can be active at a time. the curses library has a single
// global screen
var active atomic.Bool

// Curses is an active curses session.
type Curses struct {
	lib   primitive.Library
	prefs *Preferences

	// goroutine that started the session
	owner assert.Owner

	main *Window

	// number of live windows (not including the main window) and panels
	windows int
	panels  int

	ended bool
}

// New starts a new curses session. Returns an error satisfying
// curated.Is(err, AlreadyActive) if a session is already active.
//
// If prefs is nil then DefaultPreferences() is used.
func New(lib primitive.Library, prefs *Preferences) (*Curses, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, curated.Errorf(AlreadyActive)
	}

	if prefs == nil {
		prefs = DefaultPreferences()
	}

	c := &Curses{
		lib:   lib,
		prefs: prefs,
		owner: assert.NewOwner(),
	}

	h, err := windowHandle(lib.Initscr(), OpInitscr)
	if err != nil {
		active.Store(false)
		return nil, err
	}
	c.main = &Window{session: c, handle: h, main: true}

	if size, err := c.main.Size(); err == nil {
		logger.Logf(c.prefs, "curses", "session started (%s)", size)
	} else {
		logger.Log(c.prefs, "curses", "session started")
	}

	return c, nil
}

// check that the session can be used
func (c *Curses) check() {
	c.owner.Check("curses session")
	if c.ended {
		panic(curated.Errorf(UseAfterRelease, "curses session"))
	}
}

// fatal is called when a resource cannot be released
func (c *Curses) fatal(err error) {
	err = curated.Errorf(ReleaseFailure, err)
	logger.Log(logger.Allow, "curses", err)

	if r, ok := c.lib.(primitive.Rescuer); ok {
		r.Rescue()
	}

	// the session cannot be used after a fatal error. allow a new session
	// to be started if the panic is recovered
	c.ended = true
	active.Store(false)

	panic(err)
}

// MainWindow returns the window created when the session started. The main
// window covers the whole screen and is released by End().
func (c *Curses) MainWindow() *Window {
	c.check()
	return c.main
}

// SetEcho turns the echoing of typed characters on or off.
func (c *Curses) SetEcho(on bool) error {
	c.check()
	if on {
		return result(c.lib.Echo(), OpEcho)
	}
	return result(c.lib.Noecho(), OpNoecho)
}

// Beep sounds the terminal bell. The bell is best-effort and a failure is
// only logged.
func (c *Curses) Beep() {
	c.check()
	if code := c.lib.Beep(); code != primitive.OK {
		logger.Logf(c.prefs, "curses", "beep() failed (%d)", code)
	}
}

// Flash the screen. Not all terminals support this. Like Beep(), a failure is
// only logged.
func (c *Curses) Flash() {
	c.check()
	if code := c.lib.Flash(); code != primitive.OK {
		logger.Logf(c.prefs, "curses", "flash() failed (%d)", code)
	}
}

// ResizeScreen changes the size of the curses screen.
func (c *Curses) ResizeScreen(size Size) error {
	c.check()
	b, err := toBounds(size, Location{})
	if err != nil {
		return err
	}
	if err := result(c.lib.ResizeTerm(b.lines, b.columns), OpResizeTerm); err != nil {
		return err
	}
	logger.Logf(c.prefs, "curses", "screen resized to %s", size)
	return nil
}

// SyncScreenSize changes the size of the curses screen to the current size of
// the terminal.
func (c *Curses) SyncScreenSize() error {
	c.check()
	if err := result(c.lib.ResizeTerm(0, 0), OpResizeTerm); err != nil {
		return err
	}
	logger.Log(c.prefs, "curses", "screen size synchronised with terminal")
	return nil
}

// ScreenSize returns the size of the curses screen.
func (c *Curses) ScreenSize() (Size, error) {
	c.check()
	return c.main.Size()
}

// ScreenResized returns true if the size differs from the size of the curses
// screen. ie. ResizeScreen() with the same size would change the screen.
func (c *Curses) ScreenResized(size Size) (bool, error) {
	c.check()
	b, err := toBounds(size, Location{})
	if err != nil {
		return false, err
	}
	return c.lib.IsTermResized(b.lines, b.columns) == primitive.True, nil
}

// Refresh the terminal with the visible panels, in stacking order.
func (c *Curses) Refresh() error {
	c.check()
	c.lib.UpdatePanels()
	return result(c.lib.Doupdate(), OpDoupdate)
}

// Description returns a verbose description of the terminal.
func (c *Curses) Description() (string, error) {
	c.check()
	return text(c.lib.Longname(), OpLongname)
}

// Name returns the short name of the terminal.
func (c *Curses) Name() (string, error) {
	c.check()
	return text(c.lib.Termname(), OpTermname)
}

// Version returns the version of the curses library.
func (c *Curses) Version() (string, error) {
	c.check()
	return text(c.lib.CursesVersion(), OpCursesVersion)
}

// End the session. All windows and panels must have been released. It is safe
// to call End() more than once.
//
// The main window is released and the curses library is shut down. Failure of
// either causes a panic with ReleaseFailure.
func (c *Curses) End() {
	if c.ended {
		return
	}
	c.check()

	if c.windows > 0 || c.panels > 0 {
		panic(curated.Errorf(LiveResources, c.windows, c.panels))
	}

	if err := result(c.lib.Delwin(c.main.handle), OpDelwin); err != nil {
		c.fatal(err)
	}
	c.main.released = true

	if err := result(c.lib.Endwin(), OpEndwin); err != nil {
		c.fatal(err)
	}

	c.ended = true
	active.Store(false)

	logger.Log(c.prefs, "curses", "session ended")
}
