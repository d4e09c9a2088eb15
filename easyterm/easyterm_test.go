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

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/curst/easyterm"
	"github.com/jetsetilly/curst/test"
)

func TestGeometryString(t *testing.T) {
	g := easyterm.Geometry{Rows: 24, Columns: 80}
	test.ExpectEquality(t, g.String(), "24 lines x 80 columns")

	g.X = 640
	g.Y = 480
	test.ExpectEquality(t, g.String(), "24 lines x 80 columns (640x480 pixels)")
}

// a regular file is never a terminal
func TestNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "notaterminal"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, easyterm.IsTerminal(f))
	test.ExpectFailure(t, easyterm.IsTerminal(nil))

	_, err = easyterm.NewTerminal(f, f)
	test.ExpectFailure(t, err)

	_, err = easyterm.GeometryOf(f)
	test.ExpectFailure(t, err)
}
