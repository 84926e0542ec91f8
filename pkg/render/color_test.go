package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, got)
}

func TestBrightenColorSaturates(t *testing.T) {
	got := BrightenColor(color.RGBA{220, 10, 0, 128}, 60)
	assert.Equal(t, color.RGBA{255, 70, 60, 128}, got)
}
