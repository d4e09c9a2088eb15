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

// Package ncurses is the cgo binding to the ncurses library and its panel
// extension. It implements primitive.Library.
//
// ncurses defines several entry points (getmaxx, getcury, etc.) as macros.
// These are wrapped in static inline functions so that every method of the
// binding is still exactly one call into the library.
//
// Building without cgo is possible but New() will always return an error
// satisfying curated.Is(err, ncurses.NotAvailable).
package ncurses

// Patterns for curated errors returned by New().
const (
	NotAvailable = "ncurses: not available: %v"
	NotATerminal = "ncurses: %v is not a terminal"
)
