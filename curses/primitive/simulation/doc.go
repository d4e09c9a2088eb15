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

// Package simulation is an implementation of primitive.Library written in Go.
// The physical display is a tcell SimulationScreen and input is supplied by
// the Inject functions.
//
// The simulation follows the behaviour of ncurses closely enough for the
// curses package to be tested without a terminal. It is also used by the demo
// program when the -sim flag is given.
//
// Failures can be forced with the Fail() function. For example, the following
// causes the next call to delwin to return ERR:
//
//	lib.Fail("delwin", 1)
//
// Like a real curses library, a Library is not safe for concurrent use. The
// exception is the Inject family of functions, which may be called from any
// goroutine.
package simulation
