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

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/curst/curses"
)

// the demo shows typed keys in a window taken from the preferences, with a
// status line along the bottom of the screen.
type demo struct {
	crs *curses.Curses

	win *curses.Window
	pnl *curses.Panel

	status    *curses.Window
	statusPnl *curses.Panel

	quit  curses.Key
	count int
}

func newDemo(crs *curses.Curses, quit curses.Key) (*demo, error) {
	d := &demo{crs: crs, quit: quit}

	// keys are written to the window by handle()
	if err := crs.SetEcho(false); err != nil {
		return nil, err
	}

	var err error

	d.win, err = crs.NewWindow()
	if err != nil {
		return nil, err
	}

	d.pnl, err = crs.NewPanel(d.win)
	if err != nil {
		d.release()
		return nil, err
	}

	screen, err := crs.ScreenSize()
	if err != nil {
		d.release()
		return nil, err
	}

	statusSize, err := curses.NewSize(1, screen.Columns())
	if err != nil {
		d.release()
		return nil, err
	}

	d.status, err = crs.NewWindowAt(statusSize, curses.Location{Line: screen.Lines() - 1})
	if err != nil {
		d.release()
		return nil, err
	}

	d.statusPnl, err = crs.NewPanel(d.status)
	if err != nil {
		d.release()
		return nil, err
	}

	if err := d.setStatus(fmt.Sprintf("press %s to quit", curses.KeyName(quit))); err != nil {
		d.release()
		return nil, err
	}

	return d, nil
}

// release panels before the windows they wrap
func (d *demo) release() {
	if d.statusPnl != nil {
		d.statusPnl.Release()
	}
	if d.status != nil {
		d.status.Release()
	}
	if d.pnl != nil {
		d.pnl.Release()
	}
	if d.win != nil {
		d.win.Release()
	}
}

func (d *demo) setStatus(s string) error {
	if err := d.status.MoveTo(curses.Location{}); err != nil {
		return err
	}
	if err := d.status.ClearToLineEnd(); err != nil {
		return err
	}

	// the status line is one line and AddString() fails when the cursor
	// cannot advance past the last column
	columns, err := d.status.Columns()
	if err != nil {
		return err
	}
	r := []rune(s)
	if uint32(len(r)) >= columns {
		r = r[:columns-1]
	}
	if err := d.status.AddString(string(r)); err != nil {
		return err
	}

	return d.crs.Refresh()
}

// run the demo until the quit key is pressed or a signal arrives. if stopIdle
// is true the demo also ends when there is no input
func (d *demo) run(intChan <-chan os.Signal, wait curses.WaitPolicy, stopIdle bool) error {
	d.win.SetWait(wait)

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		in, ok := d.win.Input()
		if !ok {
			if stopIdle {
				return nil
			}
			continue // for loop
		}

		k := in.Key()
		if k == d.quit {
			return nil
		}

		if err := d.handle(k); err != nil {
			return err
		}

		d.count++
		if err := d.setStatus(fmt.Sprintf("%d: %s", d.count, in)); err != nil {
			return err
		}
	}
}

// handle a single key. the window wraps back to the top left corner when it
// is full
func (d *demo) handle(k curses.Key) error {
	switch k.Kind {
	case curses.KindPrintable:
		if err := d.win.AddString(string(k.Rune)); err != nil {
			d.crs.Beep()
			return d.win.MoveTo(curses.Location{})
		}

	case curses.KindEnter:
		if err := d.win.AddString("\n"); err != nil {
			d.crs.Flash()
			return d.win.MoveTo(curses.Location{})
		}

	case curses.KindBackspace:
		loc, err := d.win.Cursor()
		if err != nil {
			return err
		}
		if loc.Column == 0 {
			return nil
		}
		loc.Column--
		if err := d.win.MoveTo(loc); err != nil {
			return err
		}
		return d.win.DeleteChar()

	case curses.KindEsc:
		return d.win.ClearToLineEnd()

	case curses.KindTab:
		hidden, err := d.statusPnl.Hidden()
		if err != nil {
			return err
		}
		if hidden {
			return d.statusPnl.Show()
		}
		return d.statusPnl.Hide()

	case curses.KindUnknown:
		d.crs.Beep()
	}

	return nil
}
