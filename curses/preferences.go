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
	"math"

	"github.com/jetsetilly/curst/curated"
	"github.com/jetsetilly/curst/paths"
	"github.com/jetsetilly/curst/prefs"
)

// name of the preferences file in the resource directory.
const prefsFile = "preferences"

// Preferences for the curses session. Preferences can be given on the command
// line with prefs.PushCommandLineStack() before NewPreferences() is called.
type Preferences struct {
	dsk *prefs.Disk

	// size and origin of windows created with Curses.NewWindow()
	Lines   prefs.Int
	Columns prefs.Int
	Line    prefs.Int
	Column  prefs.Int

	// whether session events are logged
	Logging prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// DefaultPreferences returns preferences with the default values that are
// never loaded from or saved to disk.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file if it exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, fmt.Errorf("curses: preferences: %w", err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := DefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("curses: preferences: %w", err)
	}

	for key, v := range map[string]any{
		"curses.window.lines":   &p.Lines,
		"curses.window.columns": &p.Columns,
		"curses.window.line":    &p.Line,
		"curses.window.column":  &p.Column,
		"curses.logging":        &p.Logging,
	} {
		var err error
		switch v := v.(type) {
		case *prefs.Int:
			err = p.dsk.Add(key, v)
		case *prefs.Bool:
			err = p.dsk.Add(key, v)
		}
		if err != nil {
			return nil, fmt.Errorf("curses: preferences: %w", err)
		}
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, fmt.Errorf("curses: preferences: %w", err)
	}

	return p, nil
}

// the window size must be positive and the origin must not be negative
func (p *Preferences) setHooks() {
	positive := func(v prefs.Value) error {
		n := v.(int)
		if n == 0 {
			return curated.Errorf(InvalidZero)
		}
		if n < 0 || n > math.MaxInt32 {
			return curated.Errorf(InvalidNumberConversion, n)
		}
		return nil
	}
	notNegative := func(v prefs.Value) error {
		n := v.(int)
		if n < 0 || n > math.MaxInt32 {
			return curated.Errorf(InvalidNumberConversion, n)
		}
		return nil
	}
	p.Lines.SetHookPre(positive)
	p.Columns.SetHookPre(positive)
	p.Line.SetHookPre(notNegative)
	p.Column.SetHookPre(notNegative)
}

// SetDefaults reverts all preferences to their default values. The default
// window is 10 lines by 30 columns in the top left corner of the screen.
func (p *Preferences) SetDefaults() {
	_ = p.Lines.Set(10)
	_ = p.Columns.Set(30)
	_ = p.Line.Set(0)
	_ = p.Column.Set(0)
	_ = p.Logging.Set(true)
}

// Load preferences from disk. Does nothing for DefaultPreferences().
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk. Does nothing for DefaultPreferences().
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}

// window returns the size and origin for Curses.NewWindow()
func (p *Preferences) window() (Size, Location, error) {
	size, err := NewSize(uint32(p.Lines.Get().(int)), uint32(p.Columns.Get().(int)))
	if err != nil {
		return Size{}, Location{}, err
	}
	origin := Location{
		Line:   uint32(p.Line.Get().(int)),
		Column: uint32(p.Column.Get().(int)),
	}
	return size, origin, nil
}
