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
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// names of keys that are not printable. the printable space is also named
// because it is otherwise invisible.
var keyNames = map[KeyKind]string{
	KindBackspace: "Backspace",
	KindEsc:       "Esc",
	KindTab:       "Tab",
	KindEnter:     "Enter",
}

const spaceName = "Space"

// control characters that decode as printable keys are named by their code.
// the character itself would be invisible or would affect the output
const (
	ctrlPrefix = "Ctrl("
	ctrlSuffix = ")"
)

// KeyName returns a name for the key suitable for display. Printable keys are
// named by the rune itself, except for control characters which are named by
// their code, eg. Ctrl(0x07).
func KeyName(k Key) string {
	switch k.Kind {
	case KindPrintable:
		if k.Rune == ' ' {
			return spaceName
		}
		if unicode.IsControl(k.Rune) {
			return fmt.Sprintf("%s0x%02x%s", ctrlPrefix, k.Rune, ctrlSuffix)
		}
		return string(k.Rune)
	case KindUnknown:
		return fmt.Sprintf("Unknown(%d)", k.Code)
	}
	if n, ok := keyNames[k.Kind]; ok {
		return n
	}
	return fmt.Sprintf("KeyKind(%d)", k.Kind)
}

// KeyByName is the inverse of KeyName. Names of non-printable keys are case
// insensitive. Unknown keys cannot be named.
func KeyByName(name string) (Key, bool) {
	for kind, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key{Kind: kind}, true
		}
	}
	if strings.EqualFold(spaceName, name) {
		return PrintableKey(' '), true
	}
	if k, ok := ctrlKeyByName(name); ok {
		return k, true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r != utf8.RuneError && !unicode.IsControl(r) {
			k := DecodeKey(int32(r))
			if k.Kind == KindPrintable {
				return k, true
			}
		}
	}
	return Key{}, false
}

// ctrlKeyByName parses the name given to control characters by KeyName()
func ctrlKeyByName(name string) (Key, bool) {
	if len(name) <= len(ctrlPrefix)+len(ctrlSuffix) {
		return Key{}, false
	}
	if !strings.EqualFold(name[:len(ctrlPrefix)], ctrlPrefix) || !strings.HasSuffix(name, ctrlSuffix) {
		return Key{}, false
	}
	code, err := strconv.ParseInt(name[len(ctrlPrefix):len(name)-len(ctrlSuffix)], 0, 32)
	if err != nil {
		return Key{}, false
	}
	k := DecodeKey(int32(code))
	if k.Kind != KindPrintable || !unicode.IsControl(k.Rune) {
		return Key{}, false
	}
	return k, true
}
