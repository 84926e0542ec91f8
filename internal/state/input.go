// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-reef-defense/internal/input"
	"go-reef-defense/pkg/geom"
)

// pollInput reads the keyboard and mouse into a frame snapshot.
// Crab: WASD or arrows, Space fires. Turtle: follows the mouse, left button fires.
func pollInput() input.State {
	x, y := ebiten.CursorPosition()
	return input.State{
		Pointer:    geom.Vec2{X: float64(x), Y: float64(y)},
		Up:         anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:       anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:       anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:      anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		TurtleFire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		CrabFire:   ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func pausePressed() bool { return anyJustPressed(ebiten.KeyP, ebiten.KeyEscape) }

func confirmPressed() bool { return anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) }

func pointer() geom.Vec2 {
	x, y := ebiten.CursorPosition()
	return geom.Vec2{X: float64(x), Y: float64(y)}
}

func clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
