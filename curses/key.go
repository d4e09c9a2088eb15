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
	"unicode/utf8"

	"github.com/jetsetilly/curst/curses/primitive"
)

// KeyKind classifies a Key.
type KeyKind int

// List of valid KeyKind values.
const (
	KindPrintable KeyKind = iota
	KindBackspace
	KindEsc
	KindTab
	KindEnter
	KindUnknown
)

// Key is a decoded input code. Rune is only meaningful for KindPrintable and
// Code is only meaningful for KindUnknown. Keys are comparable.
type Key struct {
	Kind KeyKind
	Rune rune
	Code int32
}

// PrintableKey returns the Key for the rune.
func PrintableKey(r rune) Key {
	return Key{Kind: KindPrintable, Rune: r}
}

// UnknownKey returns the Key for a code that cannot be decoded.
func UnknownKey(code int32) Key {
	return Key{Kind: KindUnknown, Code: code}
}

func (k Key) String() string {
	return KeyName(k)
}

// control codes with their own KeyKind.
const (
	codeBackspace = 0x08
	codeTab       = 0x09
	codeLineFeed  = 0x0a
	codeEscape    = 0x1b
)

// DecodeKey converts an input code from the curses library into a Key. The
// function is total: every code results in a Key.
//
// Negative codes and codes that are not valid unicode code points are
// KindUnknown. Only the exact control codes for backspace, escape, tab and
// line feed are recognised. Every other code point is KindPrintable, even if
// it is not a printable character.
func DecodeKey(code int32) Key {
	if code < 0 || !utf8.ValidRune(rune(code)) {
		return UnknownKey(code)
	}

	switch code {
	case codeBackspace:
		return Key{Kind: KindBackspace}
	case codeEscape:
		return Key{Kind: KindEsc}
	case codeTab:
		return Key{Kind: KindTab}
	case codeLineFeed:
		return Key{Kind: KindEnter}
	}

	return PrintableKey(rune(code))
}

// readKey decodes the result of wgetch. ERR means there is no input.
func readKey(code int32) (Key, bool) {
	if code == primitive.ERR {
		return Key{}, false
	}
	return DecodeKey(code), true
}

// Input is a single item of input read from a Window.
type Input struct {
	key Key
}

// Key returns the decoded key of the input.
func (in Input) Key() Key {
	return in.key
}

func (in Input) String() string {
	return fmt.Sprintf("input: %s", in.key)
}
