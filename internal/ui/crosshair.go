// internal/ui/crosshair.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-reef-defense/pkg/geom"
)

// Crosshair trails the pointer, closing a fixed fraction of the gap each frame.
type Crosshair struct {
	Pos        geom.Vec2
	Smoothness float64
	Size       float32
	Color      color.RGBA
}

func NewCrosshair(start geom.Vec2, smoothness float64, size float32, clr color.RGBA) *Crosshair {
	return &Crosshair{Pos: start, Smoothness: smoothness, Size: size, Color: clr}
}

func (c *Crosshair) Update(pointer geom.Vec2) {
	c.Pos = c.Pos.Lerp(pointer, c.Smoothness)
}

func (c *Crosshair) Draw(screen *ebiten.Image) {
	x, y := float32(c.Pos.X), float32(c.Pos.Y)
	half := c.Size / 2
	vector.StrokeCircle(screen, x, y, half*0.6, 2, c.Color, true)
	vector.StrokeLine(screen, x-half, y, x-half*0.3, y, 2, c.Color, true)
	vector.StrokeLine(screen, x+half*0.3, y, x+half, y, 2, c.Color, true)
	vector.StrokeLine(screen, x, y-half, x, y-half*0.3, 2, c.Color, true)
	vector.StrokeLine(screen, x, y+half*0.3, x, y+half, 2, c.Color, true)
}
