// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reef-defense/pkg/geom"
	"go-reef-defense/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      geom.Rect
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
}

// NewButton создает новую кнопку, центрированную в (cx, cy).
func NewButton(cx, cy, w, h float64, label string) *Button {
	return &Button{
		Rect:      geom.RectAround(geom.Vec2{X: cx, Y: cy}, w, h),
		Text:      label,
		TextColor: color.RGBA{240, 240, 240, 255},
		BgColor:   color.RGBA{20, 70, 120, 255},
	}
}

// Hovered reports whether pointer is over the button.
func (b *Button) Hovered(pointer geom.Vec2) bool {
	return b.Rect.Contains(pointer)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, pointer geom.Vec2) {
	bg := b.BgColor
	if b.Hovered(pointer) {
		bg = render.BrightenColor(bg, 40)
	}
	vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), bg, false)
	vector.StrokeRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), 2, render.DarkenColor(bg), false)

	x := int(b.Rect.X + (b.Rect.W-float64(TextWidth(face, b.Text)))/2)
	y := int(b.Rect.Y+b.Rect.H/2) + LineHeight(face)/3
	text.Draw(screen, b.Text, face, x, y, b.TextColor)
}
