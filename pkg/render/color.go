// pkg/render/color.go
package render

import "image/color"

// Palette holds the colours used when a sprite image is missing and for the
// HUD. Every field has a placeholder meaning, so a zero Palette renders black.
type Palette struct {
	Background color.RGBA
	Turtle     color.RGBA
	Crab       color.RGBA
	Plastic    color.RGBA
	Boss       color.RGBA
	TurtleShot color.RGBA
	CrabShot   color.RGBA
	Crosshair  color.RGBA
	Text       color.RGBA
	Coin       color.RGBA
	Heart      color.RGBA
	Panel      color.RGBA
	Overlay    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// BrightenColor adds amount to every colour channel, saturating at 255.
// Used for the damage blink of enemies.
func BrightenColor(c color.RGBA, amount uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(amount) > 255 {
			return 255
		}
		return v + amount
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
