// internal/component/player.go
package component

import "go-reef-defense/internal/defs"

// Actor marks one of the two player characters.
type Actor struct {
	Kind         defs.ActorKind
	Speed        float64
	StopDistance float64
}
