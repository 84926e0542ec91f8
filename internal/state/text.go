// internal/state/text.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/ui"
)

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, clr color.Color) {
	x := (config.ScreenWidth - ui.TextWidth(face, s)) / 2
	text.Draw(screen, s, face, x, y, clr)
}
