// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-reef-defense/pkg/utils"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны, центрированный по X.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        color.RGBA{120, 190, 255, 255},
		BossColor:    color.RGBA{230, 40, 40, 255},
		OutlineColor: color.RGBA{255, 255, 255, 255},
	}
}

// Label is the text drawn for wave n.
func (i *WaveIndicator) Label(n int) string {
	return utils.ToRoman(n)
}

// Draw отрисовывает индикатор на экране. Boss waves are drawn in red.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave int, boss bool) {
	if wave <= 0 {
		return
	}
	label := i.Label(wave)
	clr := i.Color
	if boss {
		clr = i.BossColor
	}

	x := i.X - TextWidth(face, label)/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, clr)
}
