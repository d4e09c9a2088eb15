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
	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses/primitive"
)

// Panel wraps a Window and places it in the panel stack. Panels are drawn by
// Curses.Refresh() in stacking order. A new panel is at the top of the stack.
type Panel struct {
	session *Curses
	handle  primitive.Panel
	win     *Window

	released bool
}

// NewPanel creates a new panel for the window and places it at the top of the
// stack. The window must not be released before the panel.
func (c *Curses) NewPanel(win *Window) (*Panel, error) {
	c.check()
	win.check()

	h, err := panelHandle(c.lib.NewPanel(win.handle), OpNewPanel)
	if err != nil {
		return nil, err
	}

	win.panels++
	c.panels++

	return &Panel{session: c, handle: h, win: win}, nil
}

// check that the panel can be used
func (p *Panel) check() {
	p.session.check()
	if p.released {
		panic(curated.Errorf(UseAfterRelease, "panel"))
	}
}

// Window returns the window wrapped by the panel. This is the same instance
// that was used to create the panel, or the most recent window given to
// Replace().
func (p *Panel) Window() (*Window, error) {
	p.check()
	h, err := windowHandle(p.session.lib.PanelWindow(p.handle), OpPanelWindow)
	if err != nil {
		return nil, err
	}
	if h != p.win.handle {
		return nil, curated.Errorf(CursesError, OpPanelWindow)
	}
	return p.win, nil
}

// Top moves the panel to the top of the stack. A hidden panel is shown.
func (p *Panel) Top() error {
	p.check()
	return result(p.session.lib.TopPanel(p.handle), OpTopPanel)
}

// Bottom moves the panel to the bottom of the stack.
func (p *Panel) Bottom() error {
	p.check()
	return result(p.session.lib.BottomPanel(p.handle), OpBottomPanel)
}

// Hide removes the panel from the screen. The panel is not released.
func (p *Panel) Hide() error {
	p.check()
	return result(p.session.lib.HidePanel(p.handle), OpHidePanel)
}

// Show a hidden panel. The panel is placed at the top of the stack.
func (p *Panel) Show() error {
	p.check()
	return result(p.session.lib.ShowPanel(p.handle), OpShowPanel)
}

// Hidden returns true if the panel is hidden.
func (p *Panel) Hidden() (bool, error) {
	p.check()
	switch p.session.lib.PanelHidden(p.handle) {
	case primitive.True:
		return true, nil
	case primitive.False:
		return false, nil
	}
	return false, curated.Errorf(CursesError, OpPanelHidden)
}

// Move the panel so that the top left corner of its window is at the
// location. The window must still fit on the screen.
func (p *Panel) Move(loc Location) error {
	p.check()
	b, err := toBounds(Size{1, 1}, loc)
	if err != nil {
		return err
	}
	return result(p.session.lib.MovePanel(p.handle, b.line, b.column), OpMovePanel)
}

// Replace the window wrapped by the panel. The panel keeps its place in the
// stack. The previous window can be released once it is no longer wrapped by
// any panel.
func (p *Panel) Replace(win *Window) error {
	p.check()
	win.check()

	if err := result(p.session.lib.ReplacePanel(p.handle, win.handle), OpReplacePanel); err != nil {
		return err
	}

	p.win.panels--
	win.panels++
	p.win = win

	return nil
}

// Release the panel. The window wrapped by the panel is not released. It is
// safe to call Release() more than once.
func (p *Panel) Release() {
	if p.released {
		return
	}
	p.session.check()

	if err := result(p.session.lib.DelPanel(p.handle), OpDelPanel); err != nil {
		p.session.fatal(err)
	}

	p.released = true
	p.win.panels--
	p.session.panels--
}
