package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"go-reef-defense/internal/defs"
	"go-reef-defense/pkg/geom"
)

func TestShopPanelSlidesAndSettles(t *testing.T) {
	p := NewShopPanel(800, 600, 560, 340, 15)
	assert.False(t, p.Visible())
	assert.True(t, p.Settled())

	p.Toggle()
	frames := 0
	for !p.Settled() {
		p.Update()
		frames++
		assert.LessOrEqual(t, frames, 100)
	}
	assert.Equal(t, p.ShownY, p.Y)
	assert.Equal(t, 32, frames) // 470 px at 15 px per frame

	p.Update()
	assert.Equal(t, p.ShownY, p.Y)

	p.Toggle()
	for !p.Settled() {
		p.Update()
	}
	assert.Equal(t, p.HiddenY, p.Y)
	assert.False(t, p.Visible())
}

func TestCrosshairConverges(t *testing.T) {
	c := NewCrosshair(geom.Vec2{}, 0.1, 40, color.RGBA{255, 255, 255, 255})
	target := geom.Vec2{X: 100, Y: 50}

	c.Update(target)
	assert.InDelta(t, 10.0, c.Pos.X, 1e-9)
	assert.InDelta(t, 5.0, c.Pos.Y, 1e-9)

	for i := 0; i < 200; i++ {
		c.Update(target)
	}
	assert.InDelta(t, 0.0, c.Pos.Dist(target), 0.01)
}

func TestItemLine(t *testing.T) {
	it := defs.ItemDefinition{Name: "Kelp Wrap", Price: 3}
	assert.Equal(t, "6. Kelp Wrap          3", ItemLine(5, it, false))
	assert.Contains(t, ItemLine(0, it, true), "owned")
}

func TestLoadFaceFallsBack(t *testing.T) {
	face := LoadFace("does/not/exist.ttf", 16)
	assert.Equal(t, basicfont.Face7x13, face)
	assert.Greater(t, TextWidth(face, "coins 3"), 0)
	assert.Equal(t, "coins 12", CoinsLabel(12))
}

func TestWaveLabel(t *testing.T) {
	w := NewWaveIndicator(400, 30)
	assert.Equal(t, "IX", w.Label(9))
}
