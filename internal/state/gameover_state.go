// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/render"
	"go-reef-defense/pkg/utils"
)

// GameOverState shows the final wave. Enter restarts, Esc returns to the menu.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() {
	switch {
	case confirmPressed():
		s.ctx.Game.StartRun()
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
	case anyJustPressed(ebiten.KeyEscape):
		s.ctx.Game.ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(s.ctx.Palette.Background)
	s.ctx.Renderer.Draw(screen)
	render.Overlay(screen, s.ctx.Palette.Overlay)

	world := s.ctx.Game.World()
	drawCentered(screen, s.ctx.TitleFace, "GAME OVER", config.ScreenHeight/2-30, s.ctx.Palette.Heart)
	drawCentered(screen, s.ctx.Face, fmt.Sprintf("Wave %s   coins %d", utils.ToRoman(world.Wave.Number), world.Wallet.Balance()), config.ScreenHeight/2+10, s.ctx.Palette.Text)
	drawCentered(screen, s.ctx.Face, "Enter to play again, Esc for menu", config.ScreenHeight/2+40, s.ctx.Palette.Text)
}

func (s *GameOverState) Exit() {}
