// internal/termui/keys.go
package termui

import (
	"github.com/gdamore/tcell/v2"

	"go-reef-defense/internal/input"
	"go-reef-defense/pkg/geom"
)

// HoldFrames is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key releases.
const HoldFrames = 12

type control int

const (
	ctrlUp control = iota
	ctrlDown
	ctrlLeft
	ctrlRight
	ctrlCrabFire
	ctrlTurtleFire
	ctrlCount
)

// KeyTracker turns key presses into held controls that decay frame by frame.
type KeyTracker struct {
	held [ctrlCount]int
}

// Press registers a key event; it reports false for keys that are not
// movement or fire controls.
func (k *KeyTracker) Press(ev *tcell.EventKey) bool {
	c, ok := controlFor(ev)
	if !ok {
		return false
	}
	k.held[c] = HoldFrames
	return true
}

// Tick ages every held control by one frame.
func (k *KeyTracker) Tick() {
	for i := range k.held {
		if k.held[i] > 0 {
			k.held[i]--
		}
	}
}

// Release drops every held control, used when leaving the playing phase.
func (k *KeyTracker) Release() {
	k.held = [ctrlCount]int{}
}

// State builds the frame input from held controls plus the mouse.
func (k *KeyTracker) State(pointer geom.Vec2, mouseDown bool) input.State {
	return input.State{
		Pointer:    pointer,
		Up:         k.held[ctrlUp] > 0,
		Down:       k.held[ctrlDown] > 0,
		Left:       k.held[ctrlLeft] > 0,
		Right:      k.held[ctrlRight] > 0,
		CrabFire:   k.held[ctrlCrabFire] > 0,
		TurtleFire: mouseDown || k.held[ctrlTurtleFire] > 0,
	}
}

func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ctrlUp, true
	case tcell.KeyDown:
		return ctrlDown, true
	case tcell.KeyLeft:
		return ctrlLeft, true
	case tcell.KeyRight:
		return ctrlRight, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'w', 'W':
		return ctrlUp, true
	case 's', 'S':
		return ctrlDown, true
	case 'a', 'A':
		return ctrlLeft, true
	case 'd', 'D':
		return ctrlRight, true
	case ' ':
		return ctrlCrabFire, true
	case 'f', 'F':
		return ctrlTurtleFire, true
	}
	return 0, false
}
