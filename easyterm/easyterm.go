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

//go:build unix

package easyterm

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// escape sequences written by Restore(). leave the alternate screen and make
// the cursor visible.
const restoreSequence = "\x1b[?1049l\x1b[?25h"

// Terminal records the attributes of a posix terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	// attributes at the time of creation
	canAttr unix.Termios

	// Restore() can be called from the fatal path at any time
	mu sync.Mutex
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewTerminal captures the current attributes of the input terminal. Both
// files must be connected to a terminal.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if !IsTerminal(input) {
		return nil, fmt.Errorf("easyterm: input is not a terminal")
	}
	if !IsTerminal(output) {
		return nil, fmt.Errorf("easyterm: output is not a terminal")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	return pt, nil
}

// Restore the attributes captured by NewTerminal() and flush any pending
// input.
func (pt *Terminal) Restore() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	_, err := io.WriteString(pt.output, restoreSequence)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	return nil
}

// Geometry returns the current dimensions of the output terminal.
func (pt *Terminal) Geometry() (Geometry, error) {
	return GeometryOf(pt.output)
}

// GeometryOf returns the current dimensions of the terminal connected to the
// file.
func GeometryOf(f *os.File) (Geometry, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, fmt.Errorf("easyterm: error updating terminal geometry information: %w", err)
	}
	return Geometry{
		Rows:    ws.Row,
		Columns: ws.Col,
		X:       ws.Xpixel,
		Y:       ws.Ypixel,
	}, nil
}
