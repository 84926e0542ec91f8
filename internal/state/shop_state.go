// internal/state/shop_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/ui"
)

var itemKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// ShopState is the intermission between waves. The panel opens on entry;
// P/Esc folds it away, Enter starts the next wave.
type ShopState struct {
	sm    *StateMachine
	ctx   *Context
	panel *ui.ShopPanel
}

func NewShopState(sm *StateMachine, ctx *Context) *ShopState {
	panel := ui.NewShopPanel(config.ScreenWidth, config.ScreenHeight,
		config.ShopPanelWidth, config.ShopPanelHeight, config.ShopAnimationSpeed)
	panel.RowHeight = config.ShopRowHeight
	return &ShopState{sm: sm, ctx: ctx, panel: panel}
}

func (s *ShopState) Enter() {
	s.panel.Toggle()
}

func (s *ShopState) Update() {
	s.panel.Update()
	s.ctx.Crosshair.Update(pointer())

	if pausePressed() {
		s.panel.Toggle()
	}
	if s.panel.Open {
		for i, key := range itemKeys {
			if i >= len(defs.ItemLibrary) || !anyJustPressed(key) {
				continue
			}
			id := defs.ItemLibrary[i].ID
			if s.ctx.Game.Purchase(id) == 0 {
				log.Debug().Str("item", id).Msg("Purchase refused")
			}
		}
	}

	if confirmPressed() && s.ctx.Game.ContinueToNextWave() {
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
		return
	}
	if s.ctx.Game.Phase() == component.PhaseMenu {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	screen.Fill(s.ctx.Palette.Background)
	s.ctx.Renderer.Draw(screen)
	world := s.ctx.Game.World()
	s.ctx.HUD.Draw(screen, s.ctx.Face, world, false)
	if !s.panel.Visible() {
		drawCentered(screen, s.ctx.Face, "Wave cleared. P shop, Enter next wave", config.ScreenHeight-40, s.ctx.Palette.Text)
	}
	s.panel.Draw(screen, s.ctx.Face, world.Wallet.Balance(), s.ctx.Game.Owned)
	s.ctx.Crosshair.Draw(screen)
}

func (s *ShopState) Exit() {}
