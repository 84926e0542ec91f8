// internal/interfaces/game.go
package interfaces

import (
	"go-reef-defense/internal/component"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/input"
)

// Game is the surface the front ends drive.
type Game interface {
	Update(in input.State)
	StartRun()
	ContinueToNextWave() bool
	TogglePause() bool
	ReturnToMenu()
	Purchase(itemID string) int
	Owned(itemID string) bool
	BossWave() bool
	Phase() component.Phase
	World() *entity.ECS
}
