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

//go:build !unix

package easyterm

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewTerminal is not supported on this platform.
func NewTerminal(_, _ *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("easyterm: not supported on this platform")
}

// Restore does nothing on this platform.
func (pt *Terminal) Restore() error {
	return nil
}

// Geometry is not supported on this platform.
func (pt *Terminal) Geometry() (Geometry, error) {
	return Geometry{}, fmt.Errorf("easyterm: not supported on this platform")
}

// GeometryOf returns the current dimensions of the terminal connected to the
// file.
func GeometryOf(f *os.File) (Geometry, error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return Geometry{}, fmt.Errorf("easyterm: %w", err)
	}
	return Geometry{Rows: uint16(h), Columns: uint16(w)}, nil
}
