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

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/curses/primitive"
)

// result translates the return code of a call. any value other than OK is a
// failure, including positive values.
func result(code int32, op Operation) error {
	if code == primitive.OK {
		return nil
	}
	return curated.Errorf(CursesError, op)
}

func windowHandle(h primitive.Window, op Operation) (primitive.Window, error) {
	if h == nil {
		return nil, curated.Errorf(CursesError, op)
	}
	return h, nil
}

func panelHandle(h primitive.Panel, op Operation) (primitive.Panel, error) {
	if h == nil {
		return nil, curated.Errorf(CursesError, op)
	}
	return h, nil
}

// text translates a string returned by the library. nil is the NULL pointer.
func text(b []byte, op Operation) (string, error) {
	if b == nil {
		return "", curated.Errorf(CursesError, op)
	}
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			return "", curated.Errorf(InvalidCursesString, fmt.Sprintf("invalid UTF-8 at byte %d", i))
		}
		i += n
	}
	return string(b), nil
}

// userString prepares a string for the library. the library would see a nul
// byte as the end of the string.
func userString(s string) ([]byte, error) {
	b := []byte(s)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return nil, curated.Errorf(InvalidUserString, i)
	}
	return b, nil
}

// nonZero converts a count returned by the library. negative values (which
// includes ERR) and zero are errors.
func nonZero(v int32) (uint32, error) {
	if v < 0 {
		return 0, curated.Errorf(InvalidNumberConversion, v)
	}
	if v == 0 {
		return 0, curated.Errorf(InvalidZero)
	}
	return uint32(v), nil
}

// nonNegative converts a position returned by the library.
func nonNegative(v int32) (uint32, error) {
	if v < 0 {
		return 0, curated.Errorf(InvalidNumberConversion, v)
	}
	return uint32(v), nil
}

// toInt converts a value for use as an argument to the library. values that
// do not fit are never truncated.
func toInt(v uint32) (int32, error) {
	if v > math.MaxInt32 {
		return 0, curated.Errorf(InvalidNumberConversion, v)
	}
	return int32(v), nil
}
