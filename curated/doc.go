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

// Package curated creates errors from a fixed pattern and a list of values.
// The pattern identifies the error and the values carry the detail. The curses
// package keeps its error patterns as constants and callers test for them with
// Is() and Has() rather than by comparing messages.
//
//	err := curated.Errorf(curses.CursesError, curses.OpNewwin)
//
//	if curated.Is(err, curses.CursesError) {
//		op := curated.Values(err)[0].(curses.Operation)
//	}
//
// Is() matches the outermost pattern only. Has() searches the whole chain, so
// a failure wrapped as curses.ReleaseFailure still satisfies
// Has(err, curses.CursesError).
//
// Error() removes adjacent duplicate parts from the message. Parts are
// separated by ": ", so wrapping "curses: x" with the pattern "curses: %v"
// still prints "curses: x".
//
// Unwrap() returns the first value that is itself an error. This lets
// errors.Is() and errors.As() see through a curated error to, for example, the
// os error behind a preferences file failure.
package curated
