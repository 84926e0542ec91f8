// internal/termui/view.go
package termui

import (
	"go-reef-defense/internal/config"
	"go-reef-defense/pkg/geom"
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Viewport maps the fixed world onto a terminal grid of Cols×Rows cells,
// leaving the top rows for the HUD.
type Viewport struct {
	Cols, Rows int
}

func (v Viewport) fieldRows() int {
	return max(v.Rows-hudRows, 1)
}

// ToCell returns the cell holding world point p.
func (v Viewport) ToCell(p geom.Vec2) (col, row int) {
	col = int(p.X * float64(v.Cols) / config.ScreenWidth)
	row = int(p.Y*float64(v.fieldRows())/config.ScreenHeight) + hudRows
	return col, row
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(col, row int) geom.Vec2 {
	cw := config.ScreenWidth / float64(max(v.Cols, 1))
	ch := config.ScreenHeight / float64(v.fieldRows())
	return geom.Vec2{
		X: (float64(col) + 0.5) * cw,
		Y: (float64(row-hudRows) + 0.5) * ch,
	}
}

// Visible reports whether the cell lies on the playfield.
func (v Viewport) Visible(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= hudRows && row < v.Rows
}
