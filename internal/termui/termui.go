// Package termui is a terminal front end for the game built on tcell.
package termui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/interfaces"
	"go-reef-defense/internal/types"
	"go-reef-defense/pkg/geom"
	"go-reef-defense/pkg/utils"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCoin   = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleHeart  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTurtle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCrab   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleBoss   = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleShot   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// UI drives a game from a terminal screen.
type UI struct {
	screen tcell.Screen
	game   interfaces.Game
	keys   KeyTracker
	view   Viewport

	pointer   geom.Vec2
	mouseDown bool
}

// New wraps an initialised screen. The caller owns the screen and calls Fini.
func New(screen tcell.Screen, game interfaces.Game) *UI {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	cols, rows := screen.Size()
	return &UI{
		screen:  screen,
		game:    game,
		view:    Viewport{Cols: cols, Rows: rows},
		pointer: geom.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
	}
}

// Run steps the game at the fixed frame rate until the player quits or ctx
// is cancelled.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.FrameStep)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !u.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			u.Step()
			u.Draw()
		}
	}
}

// Step runs one game frame with the current controls.
func (u *UI) Step() {
	if u.game.Phase() != component.PhasePlaying {
		u.keys.Release()
		return
	}
	u.game.Update(u.keys.State(u.pointer, u.mouseDown))
	u.keys.Tick()
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.view.Cols, u.view.Rows = ev.Size()
		u.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		u.pointer = u.view.ToWorld(col, row)
		u.mouseDown = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventKey:
		return u.handleKey(ev)
	}
	return true
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
		return false
	}

	enter := ev.Key() == tcell.KeyEnter
	esc := ev.Key() == tcell.KeyEscape
	pause := esc || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'))

	switch u.game.Phase() {
	case component.PhaseMenu:
		if enter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			u.game.StartRun()
		}
	case component.PhasePlaying:
		if pause {
			u.game.TogglePause()
			u.keys.Release()
			return true
		}
		u.keys.Press(ev)
	case component.PhaseIntermission:
		if enter {
			u.game.ContinueToNextWave()
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
			u.buy(int(ev.Rune() - '1'))
		}
	case component.PhaseGameOver:
		switch {
		case enter:
			u.game.StartRun()
		case esc:
			u.game.ReturnToMenu()
		}
	}
	return true
}

func (u *UI) buy(index int) {
	if index >= len(defs.ItemLibrary) {
		return
	}
	id := defs.ItemLibrary[index].ID
	if u.game.Purchase(id) == 0 {
		log.Debug().Str("item", id).Msg("Purchase refused")
	}
}

// Draw repaints the whole screen.
func (u *UI) Draw() {
	u.screen.Clear()
	world := u.game.World()

	switch u.game.Phase() {
	case component.PhaseMenu:
		u.drawCentered(u.view.Rows/2-1, config.WindowTitle, styleTurtle)
		u.drawCentered(u.view.Rows/2+1, "Enter to start. Crab: WASD + Space. Turtle: mouse or F. P pause, Q quit", styleDim)
	default:
		u.drawWorld()
		u.drawHUD()
	}

	switch {
	case u.game.Phase() == component.PhasePlaying && world.GameState.Paused:
		u.drawCentered(u.view.Rows/2, "PAUSED", styleText)
	case u.game.Phase() == component.PhaseIntermission:
		u.drawShop()
	case u.game.Phase() == component.PhaseGameOver:
		u.drawCentered(u.view.Rows/2-1, "GAME OVER", styleHeart)
		u.drawCentered(u.view.Rows/2+1, "Enter to play again, Esc for menu", styleDim)
	}

	u.screen.Show()
}

func (u *UI) drawWorld() {
	ecs := u.game.World()

	for _, id := range ecs.EnemyIDs() {
		enemy := ecs.Enemies[id]
		if !enemy.Visible {
			continue
		}
		if _, boss := ecs.Bosses[id]; boss {
			u.fill(id, 'B', styleBoss)
			continue
		}
		u.put(ecs.Transforms[id].Pos, 'o', styleEnemy)
	}

	for _, id := range ecs.ProjectileIDs() {
		u.put(ecs.Transforms[id].Pos, '*', styleShot)
	}

	for _, id := range ecs.ActorIDs() {
		r, style := 'T', styleTurtle
		if ecs.Actors[id].Kind == defs.ActorCrab {
			r, style = 'C', styleCrab
		}
		if flash, ok := ecs.HitFlashes[id]; ok && flash.Active(ecs.Clock) {
			style = style.Reverse(true)
		}
		u.put(ecs.Transforms[id].Pos, r, style)
	}
}

// fill covers every cell under the entity's sprite.
func (u *UI) fill(id types.EntityID, r rune, style tcell.Style) {
	tr := u.game.World().Transforms[id]
	if tr == nil {
		return
	}
	rect := tr.SpriteRect()
	c0, r0 := u.view.ToCell(geom.Vec2{X: rect.Left(), Y: rect.Top()})
	c1, r1 := u.view.ToCell(geom.Vec2{X: rect.Right(), Y: rect.Bottom()})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if u.view.Visible(col, row) {
				u.screen.SetContent(col, row, r, nil, style)
			}
		}
	}
}

func (u *UI) put(p geom.Vec2, r rune, style tcell.Style) {
	col, row := u.view.ToCell(p)
	if u.view.Visible(col, row) {
		u.screen.SetContent(col, row, r, nil, style)
	}
}

func (u *UI) drawHUD() {
	ecs := u.game.World()
	x := 0
	for _, id := range ecs.ActorIDs() {
		name := defs.ActorLibrary[ecs.Actors[id].Kind].Name
		x = u.drawText(x, 0, name+" ", styleText)
		hp := ecs.Healths[id]
		x = u.drawText(x, 0, strings.Repeat("♥", hp.Value), styleHeart)
		x = u.drawText(x, 0, strings.Repeat("·", max(hp.Max-hp.Value, 0))+"  ", styleDim)
	}

	wave := "Wave " + utils.ToRoman(ecs.Wave.Number)
	waveStyle := styleText
	if u.game.BossWave() {
		waveStyle = styleHeart
	}
	u.drawText((u.view.Cols-len(wave))/2, 0, wave, waveStyle)

	coins := fmt.Sprintf("coins %d", ecs.Wallet.Balance())
	u.drawText(u.view.Cols-len(coins), 0, coins, styleCoin)
}

func (u *UI) drawShop() {
	coins := u.game.World().Wallet.Balance()
	row := max(u.view.Rows/2-len(defs.ItemLibrary)/2-2, hudRows)
	u.drawCentered(row, fmt.Sprintf("SHOP  coins %d", coins), styleCoin)
	row += 2
	for i, it := range defs.ItemLibrary {
		owned := it.OneTime && u.game.Owned(it.ID)
		line := fmt.Sprintf("%d. %-16s %3d", i+1, it.Name, it.Price)
		style := styleText
		if owned {
			line += "  owned"
		}
		if owned || coins < it.Price {
			style = styleDim
		}
		u.drawCentered(row, line, style)
		row++
	}
	u.drawCentered(row+1, "1-9 buy, Enter next wave", styleDim)
}

func (u *UI) drawCentered(row int, s string, style tcell.Style) {
	u.drawText((u.view.Cols-len([]rune(s)))/2, row, s, style)
}

// drawText writes s from (col, row) and returns the column after it.
func (u *UI) drawText(col, row int, s string, style tcell.Style) int {
	for _, r := range s {
		if col >= 0 && col < u.view.Cols {
			u.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
	return col
}
