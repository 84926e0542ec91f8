// Package input holds the device-independent snapshot the front ends fill in
// once per frame.
package input

import "go-reef-defense/pkg/geom"

// State is one frame of player input.
type State struct {
	Pointer geom.Vec2 // mouse position in screen coordinates

	Up, Down, Left, Right bool // crab movement

	TurtleFire bool
	CrabFire   bool
}

// CrabAxis returns the crab's movement direction as -1/0/1 per axis.
func (s State) CrabAxis() (dx, dy float64) {
	if s.Left {
		dx--
	}
	if s.Right {
		dx++
	}
	if s.Up {
		dy--
	}
	if s.Down {
		dy++
	}
	return dx, dy
}
