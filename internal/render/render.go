// internal/render/render.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-reef-defense/internal/assets"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/types"
	"go-reef-defense/pkg/render"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs    *entity.ECS
	images *assets.ImageManager
}

func NewRenderSystem(ecs *entity.ECS, images *assets.ImageManager) *RenderSystem {
	return &RenderSystem{ecs: ecs, images: images}
}

// Draw paints the world: enemies first, then shots, then the actors on top.
// Blinking enemies are skipped on their hidden frames.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.ecs.EnemyIDs() {
		if !s.ecs.Enemies[id].Visible {
			continue
		}
		s.drawEntity(screen, id, false)
	}

	for _, id := range s.ecs.ProjectileIDs() {
		s.drawEntity(screen, id, false)
	}

	for _, id := range s.ecs.ActorIDs() {
		flash, ok := s.ecs.HitFlashes[id]
		s.drawEntity(screen, id, ok && flash.Active(s.ecs.Clock))
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id types.EntityID, bright bool) {
	tr, hasTr := s.ecs.Transforms[id]
	rd, hasRd := s.ecs.Renderables[id]
	if !hasTr || !hasRd {
		return
	}

	clr := rd.Color
	if bright {
		clr = render.BrightenColor(clr, config.BlinkBrightness)
	}

	img := s.images.Get(rd.Sprite, int(tr.Size), rd.Color)
	if rd.Round && !s.images.Loaded(rd.Sprite) {
		vector.DrawFilledCircle(screen, float32(tr.Pos.X), float32(tr.Pos.Y), float32(tr.Size/2), clr, true)
		return
	}
	drawSprite(screen, img, tr.Pos.X, tr.Pos.Y, tr.Size, tr.Angle, bright)
}

// drawSprite scales img to a size×size square centred on (x, y) and rotates
// it by angle.
func drawSprite(screen, img *ebiten.Image, x, y, size, angle float64, bright bool) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/h)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	if bright {
		k := float32(1 + float64(config.BlinkBrightness)/255)
		op.ColorScale.Scale(k, k, k, 1)
	}
	screen.DrawImage(img, op)
}

// Overlay dims the whole screen, used under pause and game-over text.
func Overlay(screen *ebiten.Image, c color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), c, false)
}
