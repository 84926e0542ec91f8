// internal/state/context.go
package state

import (
	"golang.org/x/image/font"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/interfaces"
	"go-reef-defense/internal/render"
	"go-reef-defense/internal/ui"
	"go-reef-defense/pkg/geom"
	pkgrender "go-reef-defense/pkg/render"
)

// Context is what every screen shares: the running game and the drawing kit.
type Context struct {
	Game      interfaces.Game
	Face      font.Face
	TitleFace font.Face
	Renderer  *render.RenderSystem
	HUD       *ui.HUD
	Crosshair *ui.Crosshair
	Palette   pkgrender.Palette
}

func NewContext(game interfaces.Game, face, titleFace font.Face, renderer *render.RenderSystem) *Context {
	palette := config.DefaultPalette
	center := geom.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	return &Context{
		Game:      game,
		Face:      face,
		TitleFace: titleFace,
		Renderer:  renderer,
		HUD:       ui.NewHUD(config.ScreenWidth, palette),
		Crosshair: ui.NewCrosshair(center, config.CrosshairSmoothness, config.CrosshairSize, palette.Crosshair),
		Palette:   palette,
	}
}
