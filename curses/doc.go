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

// Package curses is a safe interface to a curses library and its panel
// extension.
//
// The library itself is reached through the primitive.Library interface. The
// ncurses package provides the real library and the simulation package
// provides an implementation for testing. A session is started with New():
//
//	lib, err := ncurses.New()
//	if err != nil {
//		return err
//	}
//	crs, err := curses.New(lib, nil)
//	if err != nil {
//		return err
//	}
//	defer crs.End()
//
// Only one session can be active at any one time. The session, and every
// Window and Panel created from it, must only be used from the goroutine that
// called New(). Building with the assertions tag adds a check for this.
//
// # Errors
//
// Every call that can fail returns an error. The errors are curated errors
// (see the curated package) and can be identified with curated.Is() and the
// patterns listed in this package. The Operation of a CursesError can be
// found with FailedOperation().
//
// # Resources
//
// Windows and panels must be released with their Release() function. A Panel
// must be released before the Window it wraps and all windows and panels must
// be released before End() is called. Breaking these rules is a programming
// error and causes a panic.
//
// If the curses library fails to release a window or panel then the state of
// the library can no longer be trusted. The package logs the failure, returns
// the terminal to a usable state if the library supports it, and panics with
// a ReleaseFailure.
package curses
