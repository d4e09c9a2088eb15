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
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/curst/curses"
	"github.com/jetsetilly/curst/curses/primitive/simulation"
	"github.com/jetsetilly/curst/modalflag"
	"github.com/jetsetilly/curst/test"
	"github.com/jetsetilly/curst/version"
)

// chdir changes the working directory for the duration of the test. it stands
// in for testing.T.Chdir, which is not available before go1.24
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return launch(md, nil, w), w.String()
}

func TestKeysMode(t *testing.T) {
	v, out := run(t, "keys", "27", "0x41", "-1", "Enter", "Space")
	test.ExpectEquality(t, v, exitHelp)
	test.ExpectEquality(t, out, "27 -> Esc\n65 -> A\n-1 -> Unknown(-1)\nEnter -> 10\nSpace -> 32\n")

	v, out = run(t, "keys", "nonsense")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in KEYS mode"))

	v, _ = run(t, "keys")
	test.ExpectEquality(t, v, exitMode)
}

func TestParseErrors(t *testing.T) {
	v, _ := run(t, "-nosuchflag")
	test.ExpectEquality(t, v, exitParse)

	v, _ = run(t, "demo", "-nosuchflag")
	test.ExpectEquality(t, v, exitMode)

	v, out := run(t, "-help")
	test.ExpectEquality(t, v, exitHelp)
	test.ExpectSuccess(t, strings.Contains(out, "DEMO"))
}

func TestUnusedPreferences(t *testing.T) {
	_, out := run(t, "-prefs", "curses.window.lines::3; bogus::1", "keys", "65")
	test.ExpectEquality(t, out, "65 -> A\n* unused preferences: bogus::1; curses.window.lines::3\n")
}

func TestInfoMode(t *testing.T) {
	v, out := run(t, "info", "-sim")
	test.ExpectEquality(t, v, exitHelp)
	test.ExpectSuccess(t, strings.HasPrefix(out, version.String()+"\n"))
	test.ExpectSuccess(t, strings.HasSuffix(out, "name: simulation\n"+
		"description: tcell simulation screen\n"+
		"curses: curst simulation 1.0\n"+
		"screen: 24x80\n"))
}

func TestDemoMode(t *testing.T) {
	// preferences are looked for in the working directory
	chdir(t, t.TempDir())

	// the default window is ten lines. the status line is the last line of
	// the screen
	blank := strings.Repeat("\n", 10)

	v, out := run(t, "demo", "-sim", "-lines", "12", "-columns", "40", "-input", "ab\bc\n")
	test.ExpectEquality(t, v, exitHelp)
	test.ExpectEquality(t, out, "ac\n"+blank+"5: input: Enter\n")

	// the quit key ends the demo before the rest of the input is read
	v, out = run(t, "demo", "-sim", "-lines", "12", "-columns", "40", "-input", "xyq\tz")
	test.ExpectEquality(t, v, exitHelp)
	test.ExpectEquality(t, out, "xy\n"+blank+"2: input: y\n")

	v, _ = run(t, "demo", "-sim", "-quit", "Unknown")
	test.ExpectEquality(t, v, exitMode)
}

func TestDemoPreferences(t *testing.T) {
	chdir(t, t.TempDir())

	// a window of one line cannot hold a newline. the demo wraps back to the
	// top left corner
	v, out := run(t, "-prefs", "curses.window.lines::1; curses.window.columns::5",
		"demo", "-sim", "-lines", "3", "-columns", "20", "-input", "ab\ncd")
	test.ExpectEquality(t, v, exitHelp)
	test.ExpectEquality(t, out, "cd\n\n5: input: d\n")
}

// the session ends however the function leaves
func TestWithSession(t *testing.T) {
	lib := simulation.New(24, 80)

	failed := errors.New("failed")
	err := withSession(lib, curses.DefaultPreferences(), func(crs *curses.Curses) error {
		test.ExpectSuccess(t, lib.Initialised())
		return failed
	})
	test.ExpectEquality(t, err, failed)
	test.ExpectFailure(t, lib.Initialised())

	test.ExpectPanic(t, func() {
		_ = withSession(lib, curses.DefaultPreferences(), func(crs *curses.Curses) error {
			panic("demo")
		})
	})
	test.ExpectFailure(t, lib.Initialised())

	// a new session can be started because the previous one was ended
	crs, err := curses.New(lib, curses.DefaultPreferences())
	test.DemandSuccess(t, err)
	crs.End()
}
