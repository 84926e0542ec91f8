// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/entity"
	"go-reef-defense/pkg/render"
)

// HUD draws health, coins, the wave number and the boss bar over the world.
type HUD struct {
	palette render.Palette
	wave    *WaveIndicator
	health  map[defs.ActorKind]*PlayerHealthIndicator
	screenW int
}

func NewHUD(screenW int, palette render.Palette) *HUD {
	return &HUD{
		palette: palette,
		wave:    NewWaveIndicator(screenW/2, 30),
		health: map[defs.ActorKind]*PlayerHealthIndicator{
			defs.ActorTurtle: NewPlayerHealthIndicator(16, 24, "Turtle", palette.Heart),
			defs.ActorCrab:   NewPlayerHealthIndicator(16, 48, "Crab", palette.Heart),
		},
		screenW: screenW,
	}
}

// CoinsLabel is the wallet text in the top right corner.
func CoinsLabel(coins int) string {
	return fmt.Sprintf("coins %d", coins)
}

func (h *HUD) Draw(screen *ebiten.Image, face font.Face, ecs *entity.ECS, bossWave bool) {
	for _, id := range ecs.ActorIDs() {
		ind := h.health[ecs.Actors[id].Kind]
		if ind == nil {
			continue
		}
		hp := ecs.Healths[id]
		ind.Draw(screen, face, h.palette.Text, hp.Value, hp.Max)
	}

	label := CoinsLabel(ecs.Wallet.Balance())
	text.Draw(screen, label, face, h.screenW-16-TextWidth(face, label), 24, h.palette.Coin)

	h.wave.Draw(screen, face, ecs.Wave.Number, bossWave)

	for id := range ecs.Bosses {
		hp, ok := ecs.Healths[id]
		if !ok || hp.Max == 0 {
			continue
		}
		const barW, barH = 300.0, 8.0
		x := float32(h.screenW)/2 - barW/2
		frac := float32(hp.Value) / float32(hp.Max)
		vector.DrawFilledRect(screen, x, 44, barW, barH, h.palette.Panel, false)
		vector.DrawFilledRect(screen, x, 44, barW*frac, barH, h.palette.Heart, false)
	}
}
