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

package curses_test

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses"
	"github.com/jetsetilly/curst/curses/primitive/simulation"
	"github.com/jetsetilly/curst/logger"
	"github.com/jetsetilly/curst/test"
)

// start a session on a simulated 24x80 terminal. the session is ended when
// the test completes
func newSession(t *testing.T) (*curses.Curses, *simulation.Library) {
	t.Helper()
	lib := simulation.New(24, 80)
	crs, err := curses.New(lib, nil)
	test.DemandSuccess(t, err)
	t.Cleanup(crs.End)
	return crs, lib
}

func newSize(t *testing.T, lines, columns uint32) curses.Size {
	t.Helper()
	s, err := curses.NewSize(lines, columns)
	test.DemandSuccess(t, err)
	return s
}

// create a window in a panel so that it is drawn by Refresh()
func newPanel(t *testing.T, crs *curses.Curses, size curses.Size, origin curses.Location) (*curses.Window, *curses.Panel) {
	t.Helper()
	win, err := crs.NewWindowAt(size, origin)
	test.DemandSuccess(t, err)
	pnl, err := crs.NewPanel(win)
	test.DemandSuccess(t, err)
	return win, pnl
}

// logged returns true if the central log has an entry with the tag and detail
func logged(tag string, detail string) bool {
	var ok bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == tag && e.Detail == detail {
				ok = true
			}
		}
	})
	return ok
}

func expectOperation(t *testing.T, err error, op curses.Operation) {
	t.Helper()
	test.ExpectSuccess(t, curated.Is(err, curses.CursesError), op)
	got, _ := curses.FailedOperation(err)
	test.ExpectEquality(t, got, op)
}

func TestSingleSession(t *testing.T) {
	crs, _ := newSession(t)

	_, err := curses.New(simulation.New(24, 80), nil)
	test.ExpectSuccess(t, curated.Is(err, curses.AlreadyActive))

	crs.End()

	// a new session can start once the previous session has ended
	other, err := curses.New(simulation.New(24, 80), nil)
	test.DemandSuccess(t, err)
	other.End()
}

func TestInitscrFailure(t *testing.T) {
	lib := simulation.New(24, 80)
	lib.Fail("initscr", 1)

	_, err := curses.New(lib, nil)
	expectOperation(t, err, curses.OpInitscr)

	// failure to start does not leave a session active
	crs, err := curses.New(lib, nil)
	test.DemandSuccess(t, err)
	crs.End()
}

func TestEndToEnd(t *testing.T) {
	lib := simulation.New(24, 80)

	crs, err := curses.New(lib, nil)
	test.DemandSuccess(t, err)

	win, err := crs.NewWindow()
	test.DemandSuccess(t, err)

	pnl, err := crs.NewPanel(win)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, win.AddString("hello"))
	test.ExpectSuccess(t, crs.Refresh())
	test.ExpectEquality(t, lib.Contents()[0], "hello")

	windows, panels := lib.Live()
	test.ExpectEquality(t, windows, 2)
	test.ExpectEquality(t, panels, 1)

	pnl.Release()
	win.Release()
	crs.End()

	windows, panels = lib.Live()
	test.ExpectEquality(t, windows, 0)
	test.ExpectEquality(t, panels, 0)
	test.ExpectFailure(t, lib.Initialised())
}

func TestMainWindow(t *testing.T) {
	crs, _ := newSession(t)

	main := crs.MainWindow()
	size, err := main.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, newSize(t, 24, 80))

	// releasing the main window is left to End()
	main.Release()
	_, err = main.Size()
	test.ExpectSuccess(t, err)

	size, err = crs.ScreenSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, newSize(t, 24, 80))
}

func TestDefaultWindow(t *testing.T) {
	crs, _ := newSession(t)

	win, err := crs.NewWindow()
	test.DemandSuccess(t, err)
	defer win.Release()

	rows, err := win.Rows()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rows, uint32(10))

	columns, err := win.Columns()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, columns, uint32(30))
}

func TestWindowRoundTrip(t *testing.T) {
	crs, _ := newSession(t)

	for _, s := range []curses.Size{newSize(t, 1, 1), newSize(t, 5, 20), newSize(t, 24, 80)} {
		win, err := crs.NewWindowAt(s, curses.Location{})
		test.DemandSuccess(t, err)

		size, err := win.Size()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, size, s)

		win.Release()
	}
}

func TestNewWindowFailures(t *testing.T) {
	crs, lib := newSession(t)

	// does not fit on the screen
	_, err := crs.NewWindowAt(newSize(t, 10, 10), curses.Location{Line: 20})
	expectOperation(t, err, curses.OpNewwin)

	_, err = crs.NewWindowAt(curses.Size{}, curses.Location{})
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidZero))

	_, err = crs.NewWindowAt(newSize(t, math.MaxInt32+1, 10), curses.Location{})
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidNumberConversion))

	lib.Fail("newwin", 1)
	_, err = crs.NewWindow()
	expectOperation(t, err, curses.OpNewwin)

	// nothing was created by the failed calls
	windows, _ := lib.Live()
	test.ExpectEquality(t, windows, 1)
}

func TestAddString(t *testing.T) {
	crs, lib := newSession(t)

	win, pnl := newPanel(t, crs, newSize(t, 3, 20), curses.Location{})
	defer win.Release()
	defer pnl.Release()

	test.ExpectSuccess(t, win.AddString("hello"))
	loc, err := win.Cursor()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, curses.Location{Line: 0, Column: 5})

	// nothing is written if the string contains a nul byte
	err = win.AddString("hel\x00lo")
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidUserString))
	test.ExpectEquality(t, curated.Values(err)[0], any(3))
	loc, err = win.Cursor()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, curses.Location{Line: 0, Column: 5})

	test.ExpectSuccess(t, win.AddString(" wörld"))
	test.ExpectSuccess(t, crs.Refresh())
	test.ExpectEquality(t, lib.Contents()[0], "hello wörld")

	// writing beyond the bottom right corner fails
	test.ExpectSuccess(t, win.MoveTo(curses.Location{Line: 2, Column: 18}))
	expectOperation(t, win.AddString("abc"), curses.OpWaddstr)
}

func TestEditing(t *testing.T) {
	crs, lib := newSession(t)

	win, pnl := newPanel(t, crs, newSize(t, 2, 20), curses.Location{})
	defer win.Release()
	defer pnl.Release()

	test.ExpectSuccess(t, win.AddString("hello world"))
	test.ExpectSuccess(t, win.MoveTo(curses.Location{Line: 0, Column: 5}))
	test.ExpectSuccess(t, win.ClearToLineEnd())

	test.ExpectSuccess(t, win.MoveTo(curses.Location{Line: 1, Column: 0}))
	test.ExpectSuccess(t, win.AddString("xabc"))
	test.ExpectSuccess(t, win.MoveTo(curses.Location{Line: 1, Column: 0}))
	test.ExpectSuccess(t, win.DeleteChar())

	test.ExpectSuccess(t, crs.Refresh())
	test.ExpectEquality(t, lib.Contents()[0], "hello")
	test.ExpectEquality(t, lib.Contents()[1], "abc")

	expectOperation(t, win.MoveTo(curses.Location{Line: 2, Column: 0}), curses.OpWmove)
	expectOperation(t, win.MoveTo(curses.Location{Line: 0, Column: 20}), curses.OpWmove)

	lib.Fail("wclrtoeol", 1)
	expectOperation(t, win.ClearToLineEnd(), curses.OpWclrtoeol)
	lib.Fail("wdelch", 1)
	expectOperation(t, win.DeleteChar(), curses.OpWdelch)
}

func TestWindowDimensionFailures(t *testing.T) {
	crs, lib := newSession(t)

	win, err := crs.NewWindow()
	test.DemandSuccess(t, err)
	defer win.Release()

	lib.Fail("getmaxy", 1)
	_, err = win.Rows()
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidNumberConversion))

	lib.Fail("getmaxx", 1)
	_, err = win.Size()
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidNumberConversion))

	lib.Fail("getcurx", 1)
	_, err = win.Cursor()
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidNumberConversion))
}

func expectKeys(t *testing.T, win *curses.Window, keys ...curses.Key) {
	t.Helper()
	for i, k := range keys {
		in, ok := win.Input()
		if !test.ExpectSuccess(t, ok, i) {
			return
		}
		test.ExpectEquality(t, in.Key(), k, i)
	}
	_, ok := win.Input()
	test.ExpectFailure(t, ok, "no more input")
}

func TestInput(t *testing.T) {
	crs, lib := newSession(t)

	win, err := crs.NewWindow()
	test.DemandSuccess(t, err)
	defer win.Release()

	win.SetWait(curses.NoWait)
	_, ok := win.Input()
	test.ExpectFailure(t, ok)

	lib.Inject("a\tb\n\x1b\x08")
	expectKeys(t, win,
		curses.PrintableKey('a'),
		curses.Key{Kind: curses.KindTab},
		curses.PrintableKey('b'),
		curses.Key{Kind: curses.KindEnter},
		curses.Key{Kind: curses.KindEsc},
		curses.Key{Kind: curses.KindBackspace},
	)

	// cursor keys arrive as escape sequences
	lib.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	lib.InjectKey(tcell.KeyRune, 'c', tcell.ModCtrl)
	lib.InjectCode(-2)
	expectKeys(t, win,
		curses.Key{Kind: curses.KindEsc},
		curses.PrintableKey('['),
		curses.PrintableKey('A'),
		curses.PrintableKey(0x03),
		curses.UnknownKey(-2),
	)

	win.SetWait(curses.WaitFor(5))
	_, ok = win.Input()
	test.ExpectFailure(t, ok)

	lib.Inject("z")
	in, ok := win.Input()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, in.Key(), curses.PrintableKey('z'))
}

func TestEcho(t *testing.T) {
	crs, lib := newSession(t)

	win, pnl := newPanel(t, crs, newSize(t, 1, 20), curses.Location{})
	defer win.Release()
	defer pnl.Release()
	win.SetWait(curses.NoWait)

	test.ExpectSuccess(t, lib.Echoing())

	lib.Inject("xy")
	expectKeys(t, win, curses.PrintableKey('x'), curses.PrintableKey('y'))

	test.ExpectSuccess(t, crs.SetEcho(false))
	test.ExpectFailure(t, lib.Echoing())

	lib.Inject("z")
	expectKeys(t, win, curses.PrintableKey('z'))

	test.ExpectSuccess(t, crs.Refresh())
	test.ExpectEquality(t, lib.Contents()[0], "xy")

	test.ExpectSuccess(t, crs.SetEcho(true))
	test.ExpectSuccess(t, lib.Echoing())

	lib.Fail("noecho", 1)
	expectOperation(t, crs.SetEcho(false), curses.OpNoecho)
	lib.Fail("echo", 1)
	expectOperation(t, crs.SetEcho(true), curses.OpEcho)
}

func TestBeepAndFlash(t *testing.T) {
	crs, lib := newSession(t)

	crs.Beep()
	crs.Beep()
	crs.Flash()
	test.ExpectEquality(t, lib.Beeps(), 2)
	test.ExpectEquality(t, lib.Flashes(), 1)

	// failures are logged and otherwise ignored
	logger.Clear()
	lib.Fail("beep", 1)
	crs.Beep()
	lib.Fail("flash", 1)
	crs.Flash()
	test.ExpectEquality(t, lib.Beeps(), 2)
	test.ExpectEquality(t, lib.Flashes(), 1)
	test.ExpectSuccess(t, logged("curses", "beep() failed (-1)"))
	test.ExpectSuccess(t, logged("curses", "flash() failed (-1)"))

	// the session is still usable
	crs.Beep()
	test.ExpectEquality(t, lib.Beeps(), 3)
}

func TestTerminalInformation(t *testing.T) {
	crs, lib := newSession(t)

	name, err := crs.Name()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "simulation")

	desc, err := crs.Description()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, desc, "tcell simulation screen")

	_, err = crs.Version()
	test.ExpectSuccess(t, err)

	lib.SetTermName([]byte{'x', 't', 0xc3})
	_, err = crs.Name()
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidCursesString))

	lib.SetTermName(nil)
	_, err = crs.Name()
	expectOperation(t, err, curses.OpTermname)

	lib.Fail("longname", 1)
	_, err = crs.Description()
	expectOperation(t, err, curses.OpLongname)

	lib.Fail("curses_version", 1)
	_, err = crs.Version()
	expectOperation(t, err, curses.OpCursesVersion)
}

func TestResize(t *testing.T) {
	crs, lib := newSession(t)

	test.ExpectSuccess(t, crs.ResizeScreen(newSize(t, 30, 100)))
	size, err := crs.ScreenSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, newSize(t, 30, 100))

	resized, err := crs.ScreenResized(newSize(t, 30, 100))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, resized)

	resized, err = crs.ScreenResized(newSize(t, 24, 80))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, resized)

	// the user resizes the terminal
	lib.SetTerminalSize(40, 120)
	test.ExpectSuccess(t, crs.SyncScreenSize())
	size, err = crs.ScreenSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, newSize(t, 40, 120))

	_, err = crs.ScreenResized(curses.Size{})
	test.ExpectSuccess(t, curated.Is(err, curses.InvalidZero))

	lib.Fail("resize_term", 2)
	expectOperation(t, crs.ResizeScreen(newSize(t, 10, 10)), curses.OpResizeTerm)
	expectOperation(t, crs.SyncScreenSize(), curses.OpResizeTerm)

	lib.Fail("doupdate", 1)
	expectOperation(t, crs.Refresh(), curses.OpDoupdate)
}

func TestPanelStack(t *testing.T) {
	crs, lib := newSession(t)

	winA, pnlA := newPanel(t, crs, newSize(t, 1, 10), curses.Location{})
	winB, pnlB := newPanel(t, crs, newSize(t, 1, 10), curses.Location{Column: 4})
	test.ExpectSuccess(t, winA.AddString("aaaaaaaa"))
	test.ExpectSuccess(t, winB.AddString("bbbbbbbb"))

	line := func() string {
		t.Helper()
		test.ExpectSuccess(t, crs.Refresh())
		return lib.Contents()[0]
	}

	// newest panel is on top
	test.ExpectEquality(t, line(), "aaaabbbbbbbb")

	test.ExpectSuccess(t, pnlA.Top())
	test.ExpectEquality(t, line(), "aaaaaaaa  bb")

	test.ExpectSuccess(t, pnlA.Hide())
	hidden, err := pnlA.Hidden()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, hidden)
	test.ExpectEquality(t, line(), "    bbbbbbbb")

	test.ExpectSuccess(t, pnlA.Show())
	hidden, err = pnlA.Hidden()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, hidden)
	test.ExpectEquality(t, line(), "aaaaaaaa  bb")

	test.ExpectSuccess(t, pnlA.Bottom())
	test.ExpectEquality(t, line(), "aaaabbbbbbbb")

	test.ExpectSuccess(t, pnlB.Move(curses.Location{Line: 1}))
	test.ExpectEquality(t, line(), "aaaaaaaa")
	test.ExpectEquality(t, lib.Contents()[1], "bbbbbbbb")

	// window would not fit on the screen
	expectOperation(t, pnlB.Move(curses.Location{Line: 24}), curses.OpMovePanel)

	w, err := pnlA.Window()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, winA)

	lib.Fail("panel_window", 1)
	_, err = pnlA.Window()
	expectOperation(t, err, curses.OpPanelWindow)

	lib.Fail("panel_hidden", 1)
	_, err = pnlA.Hidden()
	expectOperation(t, err, curses.OpPanelHidden)

	for _, f := range []struct {
		call string
		op   curses.Operation
		fn   func() error
	}{
		{"top_panel", curses.OpTopPanel, pnlA.Top},
		{"bottom_panel", curses.OpBottomPanel, pnlA.Bottom},
		{"hide_panel", curses.OpHidePanel, pnlA.Hide},
		{"show_panel", curses.OpShowPanel, pnlA.Show},
	} {
		lib.Fail(f.call, 1)
		expectOperation(t, f.fn(), f.op)
	}

	pnlA.Release()
	pnlB.Release()
	winA.Release()
	winB.Release()
}

func TestPanelReplace(t *testing.T) {
	crs, lib := newSession(t)

	winA, pnl := newPanel(t, crs, newSize(t, 1, 10), curses.Location{})
	test.ExpectSuccess(t, winA.AddString("first"))

	winB, err := crs.NewWindowAt(newSize(t, 1, 10), curses.Location{Line: 2})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, winB.AddString("second"))

	test.ExpectSuccess(t, pnl.Replace(winB))
	w, err := pnl.Window()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, winB)

	test.ExpectSuccess(t, crs.Refresh())
	test.ExpectEquality(t, lib.Contents()[0], "")
	test.ExpectEquality(t, lib.Contents()[2], "second")

	// the first window is no longer wrapped by the panel
	winA.Release()

	lib.Fail("replace_panel", 1)
	expectOperation(t, pnl.Replace(winB), curses.OpReplacePanel)

	lib.Fail("new_panel", 1)
	_, err = crs.NewPanel(winB)
	expectOperation(t, err, curses.OpNewPanel)

	pnl.Release()
	winB.Release()
}

func TestReleaseOrder(t *testing.T) {
	crs, _ := newSession(t)

	win, pnl := newPanel(t, crs, newSize(t, 2, 2), curses.Location{})

	r := test.ExpectPanic(t, win.Release)
	test.ExpectSuccess(t, curated.Is(r.(error), curses.WindowInPanel))

	r = test.ExpectPanic(t, crs.End)
	test.ExpectSuccess(t, curated.Is(r.(error), curses.LiveResources))
	test.ExpectEquality(t, r.(error).Error(), "curses: session ended with 1 window(s) and 1 panel(s) still live")

	pnl.Release()
	win.Release()
}

func TestReleaseTwice(t *testing.T) {
	crs, _ := newSession(t)

	win, pnl := newPanel(t, crs, newSize(t, 2, 2), curses.Location{})
	pnl.Release()
	pnl.Release()
	win.Release()
	win.Release()

	r := test.ExpectPanic(t, func() { _ = win.AddString("x") })
	test.ExpectSuccess(t, curated.Is(r.(error), curses.UseAfterRelease))

	r = test.ExpectPanic(t, func() { _ = pnl.Top() })
	test.ExpectSuccess(t, curated.Is(r.(error), curses.UseAfterRelease))

	crs.End()
	crs.End()

	r = test.ExpectPanic(t, crs.Beep)
	test.ExpectSuccess(t, curated.Is(r.(error), curses.UseAfterRelease))
}

func TestFatalWindowRelease(t *testing.T) {
	crs, lib := newSession(t)

	win, err := crs.NewWindow()
	test.DemandSuccess(t, err)

	lib.Fail("delwin", 1)
	r := test.ExpectPanic(t, win.Release)
	err, ok := r.(error)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, curated.Is(err, curses.ReleaseFailure))
	test.ExpectSuccess(t, curated.Has(err, curses.CursesError))
	test.ExpectEquality(t, err.Error(), "curses: cannot release resource: curses: during call to `delwin()`")

	// the failed session no longer blocks a new session
	other, err := curses.New(simulation.New(24, 80), nil)
	test.DemandSuccess(t, err)
	other.End()
}

func TestFatalPanelRelease(t *testing.T) {
	crs, lib := newSession(t)

	_, pnl := newPanel(t, crs, newSize(t, 2, 2), curses.Location{})

	lib.Fail("del_panel", 1)
	r := test.ExpectPanic(t, pnl.Release)
	test.ExpectSuccess(t, curated.Is(r.(error), curses.ReleaseFailure))
}

func TestFatalEnd(t *testing.T) {
	for _, call := range []string{"delwin", "endwin"} {
		lib := simulation.New(24, 80)
		crs, err := curses.New(lib, nil)
		test.DemandSuccess(t, err)

		lib.Fail(call, 1)
		r := test.ExpectPanic(t, crs.End, call)
		test.ExpectSuccess(t, curated.Is(r.(error), curses.ReleaseFailure), call)
	}
}

func TestLogging(t *testing.T) {
	found := func(detail string) bool {
		return logged("curses", detail)
	}

	logger.Clear()
	crs, err := curses.New(simulation.New(24, 80), nil)
	test.DemandSuccess(t, err)
	crs.End()
	test.ExpectSuccess(t, found("session started (24x80)"))
	test.ExpectSuccess(t, found("session ended"))

	prefs := curses.DefaultPreferences()
	test.ExpectSuccess(t, prefs.Logging.Set(false))

	logger.Clear()
	crs, err = curses.New(simulation.New(24, 80), prefs)
	test.DemandSuccess(t, err)
	crs.End()
	test.ExpectFailure(t, found("session started (24x80)"))
	test.ExpectFailure(t, found("session ended"))
}
