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

package simulation

import (
	"slices"
	"unsafe"

	"github.com/jetsetilly/curst/curses/primitive"
)

func (lib *Library) panelHandle(p *panel) primitive.Panel {
	return primitive.Panel(unsafe.Pointer(p))
}

// find the panel in the stack. returns -1 if the handle is not a live panel
func (lib *Library) find(p primitive.Panel) int {
	return slices.IndexFunc(lib.panels, func(q *panel) bool {
		return lib.panelHandle(q) == p
	})
}

// move the panel at index i to the top of the stack
func (lib *Library) raise(i int) {
	p := lib.panels[i]
	lib.panels = append(slices.Delete(lib.panels, i, i+1), p)
}

// compose the virtual screen from stdscr and the visible panels, bottom to top
func (lib *Library) compose() {
	lines := lib.stdscr.lines
	columns := lib.stdscr.columns

	lib.virtual = make([][]rune, lines)
	for y := range lib.virtual {
		lib.virtual[y] = make([]rune, columns)
		copy(lib.virtual[y], lib.stdscr.cells[y])
	}

	for _, p := range lib.panels {
		if p.hidden {
			continue
		}
		w := p.win
		for y := int32(0); y < w.lines && w.line+y < lines; y++ {
			for x := int32(0); x < w.columns && w.column+x < columns; x++ {
				lib.virtual[w.line+y][w.column+x] = w.cells[y][x]
			}
		}
	}
}

func (lib *Library) NewPanel(w primitive.Window) primitive.Panel {
	win, ok := lib.windows[w]
	if lib.fail("new_panel") || !ok {
		return nil
	}
	p := &panel{win: win}
	win.panels++
	lib.panels = append(lib.panels, p)
	return lib.panelHandle(p)
}

func (lib *Library) DelPanel(p primitive.Panel) int32 {
	i := lib.find(p)
	if lib.fail("del_panel") || i < 0 {
		return primitive.ERR
	}
	lib.panels[i].win.panels--
	lib.panels = slices.Delete(lib.panels, i, i+1)
	return primitive.OK
}

func (lib *Library) PanelWindow(p primitive.Panel) primitive.Window {
	i := lib.find(p)
	if lib.fail("panel_window") || i < 0 {
		return nil
	}
	return lib.handle(lib.panels[i].win)
}

func (lib *Library) UpdatePanels() {
	if lib.fail("update_panels") || !lib.initialised {
		return
	}
	lib.compose()
}

func (lib *Library) TopPanel(p primitive.Panel) int32 {
	i := lib.find(p)
	if lib.fail("top_panel") || i < 0 {
		return primitive.ERR
	}
	lib.panels[i].hidden = false
	lib.raise(i)
	return primitive.OK
}

func (lib *Library) BottomPanel(p primitive.Panel) int32 {
	i := lib.find(p)
	if lib.fail("bottom_panel") || i < 0 {
		return primitive.ERR
	}
	q := lib.panels[i]
	q.hidden = false
	lib.panels = slices.Insert(slices.Delete(lib.panels, i, i+1), 0, q)
	return primitive.OK
}

func (lib *Library) HidePanel(p primitive.Panel) int32 {
	i := lib.find(p)
	if lib.fail("hide_panel") || i < 0 {
		return primitive.ERR
	}
	lib.panels[i].hidden = true
	return primitive.OK
}

func (lib *Library) ShowPanel(p primitive.Panel) int32 {
	i := lib.find(p)
	if lib.fail("show_panel") || i < 0 {
		return primitive.ERR
	}
	lib.panels[i].hidden = false
	lib.raise(i)
	return primitive.OK
}

func (lib *Library) PanelHidden(p primitive.Panel) int32 {
	i := lib.find(p)
	if lib.fail("panel_hidden") || i < 0 {
		return primitive.ERR
	}
	if lib.panels[i].hidden {
		return primitive.True
	}
	return primitive.False
}

func (lib *Library) MovePanel(p primitive.Panel, line int32, column int32) int32 {
	i := lib.find(p)
	if lib.fail("move_panel") || i < 0 {
		return primitive.ERR
	}
	w := lib.panels[i].win
	if line < 0 || column < 0 || line+w.lines > lib.stdscr.lines || column+w.columns > lib.stdscr.columns {
		return primitive.ERR
	}
	w.line = line
	w.column = column
	return primitive.OK
}

func (lib *Library) ReplacePanel(p primitive.Panel, w primitive.Window) int32 {
	i := lib.find(p)
	win, ok := lib.windows[w]
	if lib.fail("replace_panel") || i < 0 || !ok {
		return primitive.ERR
	}
	lib.panels[i].win.panels--
	lib.panels[i].win = win
	win.panels++
	return primitive.OK
}
