// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reef-defense/internal/defs"
)

// ShopPanel is the intermission shop. It slides down from above the screen
// when opened and back up when closed.
type ShopPanel struct {
	X, Y            float64
	W, H            float64
	ShownY, HiddenY float64
	Speed           float64
	RowHeight       int
	Open            bool

	Panel, Text, Coin, Dim color.RGBA
}

// NewShopPanel creates a closed panel centred horizontally on a screen of the
// given width.
func NewShopPanel(screenW, screenH, w, h, speed float64) *ShopPanel {
	return &ShopPanel{
		X:         (screenW - w) / 2,
		Y:         -h,
		W:         w,
		H:         h,
		ShownY:    (screenH - h) / 2,
		HiddenY:   -h,
		Speed:     speed,
		RowHeight: 36,
		Panel:     color.RGBA{30, 30, 30, 200},
		Text:      color.RGBA{240, 240, 240, 255},
		Coin:      color.RGBA{255, 215, 0, 255},
		Dim:       color.RGBA{120, 120, 120, 255},
	}
}

func (p *ShopPanel) Toggle() { p.Open = !p.Open }

// Update moves the panel Speed pixels toward its resting position.
func (p *ShopPanel) Update() {
	target := p.HiddenY
	if p.Open {
		target = p.ShownY
	}
	switch {
	case p.Y < target:
		p.Y = min(p.Y+p.Speed, target)
	case p.Y > target:
		p.Y = max(p.Y-p.Speed, target)
	}
}

// Settled reports whether the panel has stopped moving.
func (p *ShopPanel) Settled() bool {
	if p.Open {
		return p.Y == p.ShownY
	}
	return p.Y == p.HiddenY
}

// Visible reports whether any part of the panel is on screen.
func (p *ShopPanel) Visible() bool { return p.Y+p.H > 0 }

// ItemLine is the text shown for one catalogue entry.
func ItemLine(index int, it defs.ItemDefinition, owned bool) string {
	line := fmt.Sprintf("%d. %-16s %3d", index+1, it.Name, it.Price)
	if owned {
		line += "  owned"
	}
	return line
}

// Draw renders the catalogue; owned is queried per item and coins greys out
// what cannot be afforded.
func (p *ShopPanel) Draw(screen *ebiten.Image, face font.Face, coins int, owned func(id string) bool) {
	if !p.Visible() {
		return
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Panel, false)

	lh := LineHeight(face)
	x := int(p.X) + 24
	y := int(p.Y) + 24 + lh
	text.Draw(screen, "SHOP", face, x, y, p.Text)
	coinsLabel := fmt.Sprintf("coins: %d", coins)
	text.Draw(screen, coinsLabel, face, int(p.X+p.W)-24-TextWidth(face, coinsLabel), y, p.Coin)

	y += lh + 16
	for i, it := range defs.ItemLibrary {
		isOwned := it.OneTime && owned(it.ID)
		clr := p.Text
		if isOwned || coins < it.Price {
			clr = p.Dim
		}
		text.Draw(screen, ItemLine(i, it, isOwned), face, x, y, clr)
		y += p.RowHeight
	}
	text.Draw(screen, "1-6 buy   P/Esc close   Enter next wave", face, x, int(p.Y+p.H)-16, p.Dim)
}
