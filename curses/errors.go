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

import "github.com/jetsetilly/curst/curated"

// Patterns for the recoverable errors returned by the package. Errors can be
// identified with curated.Is().
const (
	// a call into the curses library returned a failure value. the value for
	// the pattern is the Operation that failed
	CursesError = "curses: during call to `%v()`"

	// text returned by the curses library was not valid UTF-8
	InvalidCursesString = "invalid string from curses: %v"

	// text given to the package contains a nul byte. the value for the
	// pattern is the position of the first nul byte
	InvalidUserString = "invalid string from user: nul byte found in provided data at position: %d"

	// a number could not be converted without loss
	InvalidNumberConversion = "invalid conversion: %d out of range"

	// a number that must be positive is zero
	InvalidZero = "number cannot be `0`"

	// New() has been called while another session is active
	AlreadyActive = "curses: session already active"
)

// Patterns for the values given to panic(). These indicate a programming
// error or a curses library that can no longer be trusted and are not
// recoverable.
const (
	// a window or panel could not be released. the value for the pattern is
	// a CursesError
	ReleaseFailure = "curses: cannot release resource: %v"

	// a session, window or panel has been used after it was released
	UseAfterRelease = "curses: %v used after release"

	// a window has been released while panels still wrap it
	WindowInPanel = "curses: window released while wrapped by %d panel(s)"

	// the session has been ended while windows or panels are still live
	LiveResources = "curses: session ended with %d window(s) and %d panel(s) still live"
)

// Operation is the name of a function in the curses library.
type Operation string

// List of operations that can fail.
const (
	OpInitscr       Operation = "initscr"
	OpEndwin        Operation = "endwin"
	OpResizeTerm    Operation = "resize_term"
	OpDoupdate      Operation = "doupdate"
	OpEcho          Operation = "echo"
	OpNoecho        Operation = "noecho"
	OpLongname      Operation = "longname"
	OpTermname      Operation = "termname"
	OpCursesVersion Operation = "curses_version"
	OpNewwin        Operation = "newwin"
	OpDelwin        Operation = "delwin"
	OpWmove         Operation = "wmove"
	OpWaddstr       Operation = "waddstr"
	OpWclrtoeol     Operation = "wclrtoeol"
	OpWdelch        Operation = "wdelch"
	OpNewPanel      Operation = "new_panel"
	OpDelPanel      Operation = "del_panel"
	OpPanelWindow   Operation = "panel_window"
	OpTopPanel      Operation = "top_panel"
	OpBottomPanel   Operation = "bottom_panel"
	OpHidePanel     Operation = "hide_panel"
	OpShowPanel     Operation = "show_panel"
	OpPanelHidden   Operation = "panel_hidden"
	OpMovePanel     Operation = "move_panel"
	OpReplacePanel  Operation = "replace_panel"
)

// FailedOperation returns the Operation of a CursesError. The boolean is
// false if the error is not a CursesError.
func FailedOperation(err error) (Operation, bool) {
	if !curated.Is(err, CursesError) {
		return "", false
	}
	v := curated.Values(err)
	if len(v) != 1 {
		return "", false
	}
	op, ok := v[0].(Operation)
	return op, ok
}
