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

package prefs

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/curst/test"
)

// file that records what is written and fails on close or on write
type file struct {
	strings.Builder
	writeErr error
	closeErr error
	closed   bool
}

func (f *file) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.Builder.Write(p)
}

func (f *file) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWrite(t *testing.T) {
	f := &file{}
	test.ExpectSuccess(t, write(f, []string{"a"}, map[string]string{"a": "1"}))
	test.ExpectSuccess(t, f.closed)
	test.ExpectEquality(t, f.String(), WarningBoilerPlate+"\na :: 1\n")
}

// a failure to close the file means the preferences may not have been saved
func TestWriteCloseError(t *testing.T) {
	closeErr := errors.New("disk full")
	f := &file{closeErr: closeErr}

	err := write(f, []string{"a"}, map[string]string{"a": "1"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, closeErr))
	test.ExpectSuccess(t, f.closed)
}

func TestWriteError(t *testing.T) {
	writeErr := errors.New("io error")
	f := &file{writeErr: writeErr}

	err := write(f, []string{"a"}, map[string]string{"a": "1"})
	test.ExpectSuccess(t, errors.Is(err, writeErr))
	test.ExpectSuccess(t, f.closed)
}
