// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье одного актёра рядом с его именем.
type PlayerHealthIndicator struct {
	X, Y  float32
	Name  string
	Full  color.RGBA
	Empty color.RGBA
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, name string, full color.RGBA) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:     x,
		Y:     y,
		Name:  name,
		Full:  full,
		Empty: color.RGBA{40, 40, 40, 255},
	}
}

// Draw рисует имя и ряд кружков: заполненные по текущему здоровью, пустые до максимума.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, textColor color.Color, health, maxHealth int) {
	text.Draw(screen, i.Name, face, int(i.X), int(i.Y), textColor)

	startX := i.X + float32(TextWidth(face, i.Name)) + 10
	cy := i.Y - HealthCircleRadius + 2
	for j := 0; j < maxHealth; j++ {
		clr := i.Empty
		if j < health {
			clr = i.Full
		}
		cx := startX + float32(j)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, clr, true)
	}
}
