// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState State
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState State) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if pausePressed() {
		s.ctx.Game.TogglePause()
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	render.Overlay(screen, s.ctx.Palette.Overlay)
	drawCentered(screen, s.ctx.TitleFace, "PAUSED", config.ScreenHeight/2, s.ctx.Palette.Text)
}

func (s *PauseState) Exit() {}
