// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"go-reef-defense/pkg/render"
)

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	TicksPerSecond = 60
	FrameStep      = time.Second / TicksPerSecond

	WindowTitle = "Reef Defense"

	ImagesDir = "assets/images"
	FontPath  = "assets/fonts/reef.ttf"
	FontSize  = 16

	// Enemies enter just past the right edge, inside this vertical band.
	SpawnMinY = 50
	SpawnMaxY = 550

	// Boss minions land within this many pixels of the boss on each axis.
	MinionSpread = 80.0

	// Fraction of the remaining turn the turtle makes toward its heading each frame.
	TurnSmoothness = 0.3

	CrosshairSize       = 40
	CrosshairSmoothness = 0.1

	ShopPanelWidth     = 560
	ShopPanelHeight    = 340
	ShopAnimationSpeed = 15
	ShopRowHeight      = 40

	BlinkBrightness = 60
)

var DefaultPalette = render.Palette{
	Background: color.RGBA{0, 0, 50, 255},
	Turtle:     color.RGBA{60, 180, 90, 255},
	Crab:       color.RGBA{230, 90, 60, 255},
	Plastic:    color.RGBA{200, 220, 235, 255},
	Boss:       color.RGBA{150, 170, 200, 255},
	TurtleShot: color.RGBA{240, 240, 240, 255},
	CrabShot:   color.RGBA{250, 160, 80, 255},
	Crosshair:  color.RGBA{255, 255, 255, 200},
	Text:       color.RGBA{240, 240, 240, 255},
	Coin:       color.RGBA{255, 215, 0, 255},
	Heart:      color.RGBA{220, 40, 60, 255},
	Panel:      color.RGBA{30, 30, 30, 200},
	Overlay:    color.RGBA{0, 0, 0, 160},
}
