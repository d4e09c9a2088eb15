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
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/curst/curses"
	"github.com/jetsetilly/curst/curses/primitive"
	"github.com/jetsetilly/curst/curses/primitive/ncurses"
	"github.com/jetsetilly/curst/curses/primitive/simulation"
	"github.com/jetsetilly/curst/easyterm"
	"github.com/jetsetilly/curst/logger"
	"github.com/jetsetilly/curst/modalflag"
	"github.com/jetsetilly/curst/paths"
	"github.com/jetsetilly/curst/prefs"
	"github.com/jetsetilly/curst/statsview"
	"github.com/jetsetilly/curst/version"
)

// exit values
const (
	exitHelp  = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	// ctrl-c ends the demo loop gracefully. the terminal is not left in
	// curses mode
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	os.Exit(launch(md, intChan, os.Stdout))
}

// launch parses the top level of the command line and runs the selected mode.
// returns the value to use with os.Exit()
func launch(md *modalflag.Modes, intChan <-chan os.Signal, output io.Writer) int {
	md.NewMode()
	md.AddSubModes("DEMO", "KEYS", "INFO")
	md.AdditionalHelp("DEMO opens a window and shows the keys that are pressed\n" +
		"KEYS decodes the curses input codes (or key names) given as arguments\n" +
		"INFO describes the terminal and the curses library")

	cmdPrefs := md.AddString("prefs", "", "preferences for this run: \"key::value; key::value\"")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitHelp
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(output)
			defer stop()
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	switch md.Mode() {
	case "DEMO":
		err = demoMode(md, intChan, output)
	case "KEYS":
		err = keysMode(md, output)
	case "INFO":
		err = infoMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitHelp
}

// the curses library to use for a mode. the simulation library is used if sim
// is true, in which case the simulation is also returned
func openLibrary(sim bool, lines int, columns int) (primitive.Library, *simulation.Library, error) {
	if sim {
		lib := simulation.New(lines, columns)
		return lib, lib, nil
	}
	lib, err := ncurses.New()
	return lib, nil, err
}

func demoMode(md *modalflag.Modes, intChan <-chan os.Signal, output io.Writer) error {
	md.NewMode()

	sim := md.AddBool("sim", false, "use the simulated terminal")
	simLines := md.AddInt("lines", 24, "lines in the simulated terminal")
	simColumns := md.AddInt("columns", 80, "columns in the simulated terminal")
	input := md.AddString("input", "", "input for the simulated terminal")
	quit := md.AddString("quit", "q", "key that ends the demo")
	poll := md.AddDuration("poll", 100*time.Millisecond, "how long to wait for input before checking for ctrl-c")
	saveLog := md.AddBool("log", false, "write the log to a file when the demo ends")
	savePrefs := md.AddBool("save", false, "save preferences when the demo ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	quitKey, ok := curses.KeyByName(*quit)
	if !ok {
		return fmt.Errorf("cannot use %q as the quit key", *quit)
	}

	pref, err := curses.NewPreferences()
	if err != nil {
		return err
	}

	lib, simLib, err := openLibrary(*sim, *simLines, *simColumns)
	if err != nil {
		return err
	}

	wait := curses.WaitFor(*poll)
	if simLib != nil {
		// the simulation never blocks. the demo ends when the input runs out
		simLib.Inject(*input)
		wait = curses.NoWait
	}

	var termName string
	var screen []string

	err = withSession(lib, pref, func(crs *curses.Curses) error {
		d, err := newDemo(crs, quitKey)
		if err != nil {
			return err
		}
		defer d.release()

		err = d.run(intChan, wait, simLib != nil)

		if n, err := crs.Name(); err == nil {
			termName = n
		}

		// the simulated screen is not available after the session has ended
		if simLib != nil {
			screen = simLib.Contents()
		}

		return err
	})
	if err != nil {
		return err
	}

	for _, l := range screen {
		fmt.Fprintln(output, l)
	}

	if *saveLog {
		if err := writeLog(termName, output); err != nil {
			return err
		}
	}

	if *savePrefs {
		return pref.Save()
	}

	return nil
}

// write the central log to a uniquely named file in the logs resource
// directory
func writeLog(termName string, output io.Writer) error {
	pth, err := paths.ResourcePath("logs", paths.UniqueFilename("curst", termName))
	if err != nil {
		return err
	}

	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Write(f)
	fmt.Fprintf(output, "log written to %s\n", pth)

	return nil
}

func keysMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments are curses input codes (eg. 27 or 0x1b) or key names (eg. Esc)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()
	if len(args) == 0 {
		return fmt.Errorf("no codes or key names for %s mode", md)
	}

	for _, a := range args {
		line, err := describeKey(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, line)
	}

	return nil
}

// describe the argument as either an input code or a key name
func describeKey(arg string) (string, error) {
	if code, err := strconv.ParseInt(arg, 0, 32); err == nil {
		k := curses.DecodeKey(int32(code))
		return fmt.Sprintf("%d -> %s", code, curses.KeyName(k)), nil
	}

	k, ok := curses.KeyByName(arg)
	if !ok {
		return "", fmt.Errorf("%q is not an input code or a key name", arg)
	}

	if k.Kind == curses.KindPrintable {
		return fmt.Sprintf("%s -> %d", curses.KeyName(k), k.Rune), nil
	}
	if code, ok := kindCodes[k.Kind]; ok {
		return fmt.Sprintf("%s -> %d", curses.KeyName(k), code), nil
	}

	return "", fmt.Errorf("%q has no input code", arg)
}

// input codes for the named control keys
var kindCodes = map[curses.KeyKind]int32{
	curses.KindBackspace: 0x08,
	curses.KindTab:       0x09,
	curses.KindEnter:     0x0a,
	curses.KindEsc:       0x1b,
}

func infoMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	sim := md.AddBool("sim", false, "describe the simulated terminal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.String())

	if geom, err := easyterm.GeometryOf(os.Stdout); err == nil {
		fmt.Fprintf(output, "terminal: %s\n", geom)
	}

	lib, _, err := openLibrary(*sim, 24, 80)
	if err != nil {
		return err
	}

	info, err := describeSession(lib)
	if err != nil {
		return err
	}

	// printed after the session has ended so that the output is not lost
	// when curses leaves the alternate screen
	fmt.Fprint(output, info)

	return nil
}

// describeSession starts a session with the library and returns a description
// of the terminal and the library
func describeSession(lib primitive.Library) (string, error) {
	var s strings.Builder
	err := withSession(lib, curses.DefaultPreferences(), func(crs *curses.Curses) error {
		return describe(crs, &s)
	})
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

func describe(crs *curses.Curses, s *strings.Builder) error {
	for _, v := range []struct {
		label string
		fn    func() (string, error)
	}{
		{"name", crs.Name},
		{"description", crs.Description},
		{"curses", crs.Version},
	} {
		t, err := v.fn()
		if err != nil {
			return err
		}
		fmt.Fprintf(s, "%s: %s\n", v.label, t)
	}

	size, err := crs.ScreenSize()
	if err != nil {
		return err
	}
	fmt.Fprintf(s, "screen: %s\n", size)

	return nil
}

// withSession runs fn with a new curses session. The session is ended when fn
// returns or panics.
func withSession(lib primitive.Library, pref *curses.Preferences, fn func(crs *curses.Curses) error) error {
	crs, err := curses.New(lib, pref)
	if err != nil {
		return err
	}
	defer crs.End()
	return fn(crs)
}
