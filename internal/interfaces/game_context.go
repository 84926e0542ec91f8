// internal/interfaces/game_context.go
package interfaces

// GameContext is what the phase machine needs from the game to move between
// phases.
type GameContext interface {
	ResetRun()
	StartWave()
	ClearProjectiles()
}
