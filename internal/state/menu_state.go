// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/ui"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	start *ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		start: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+40, 200, 50, "Start"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if confirmPressed() || anyJustPressed(ebiten.KeySpace) || (clicked() && m.start.Hovered(pointer())) {
		m.ctx.Game.StartRun()
		m.sm.SetState(NewPlayState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(m.ctx.Palette.Background)
	drawCentered(screen, m.ctx.TitleFace, config.WindowTitle, config.ScreenHeight/2-60, m.ctx.Palette.Text)
	drawCentered(screen, m.ctx.Face, "Turtle: mouse + left click    Crab: WASD + Space", config.ScreenHeight/2-20, m.ctx.Palette.Text)
	m.start.Draw(screen, m.ctx.Face, pointer())
}

func (m *MenuState) Exit() {}
