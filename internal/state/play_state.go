// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-reef-defense/internal/component"
)

// PlayState runs waves. It hands over to the shop or the game-over screen as
// soon as the game changes phase.
type PlayState struct {
	sm  *StateMachine
	ctx *Context
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{sm: sm, ctx: ctx}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update() {
	if pausePressed() {
		p.ctx.Game.TogglePause()
		p.sm.SetState(NewPauseState(p.sm, p.ctx, p))
		return
	}

	in := pollInput()
	p.ctx.Crosshair.Update(in.Pointer)
	p.ctx.Game.Update(in)

	switch p.ctx.Game.Phase() {
	case component.PhaseIntermission:
		p.sm.SetState(NewShopState(p.sm, p.ctx))
	case component.PhaseGameOver:
		p.sm.SetState(NewGameOverState(p.sm, p.ctx))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(p.ctx.Palette.Background)
	p.ctx.Renderer.Draw(screen)
	p.ctx.HUD.Draw(screen, p.ctx.Face, p.ctx.Game.World(), p.ctx.Game.BossWave())
	p.ctx.Crosshair.Draw(screen)
}

func (p *PlayState) Exit() {}
