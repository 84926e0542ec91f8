// internal/component/game_state.go
package component

import "time"

// Phase is the stage of the game loop.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseIntermission
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseIntermission:
		return "intermission"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase  Phase
	Paused bool
}

// Wave holds the wave director's counters.
type Wave struct {
	Number       int
	Target       int // spawn quota for this wave
	Spawned      int // quota units spawned so far
	TotalSpawned int
	LastSpawnAt  time.Duration
	HasSpawned   bool
	BossSpawned  bool
	StartedAt    time.Duration
}

// QuotaFilled reports whether every quota unit of the wave has spawned.
func (w *Wave) QuotaFilled() bool {
	return w.Spawned >= w.Target
}
