// internal/component/enemy.go
package component

import (
	"time"

	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/types"
)

// EnemyState is the lifecycle stage of an enemy.
type EnemyState int

const (
	EnemySpawned EnemyState = iota
	EnemyMoving
	EnemyDamaged
	EnemyDead
	EnemyOffScreen
)

func (s EnemyState) String() string {
	switch s {
	case EnemySpawned:
		return "spawned"
	case EnemyMoving:
		return "moving"
	case EnemyDamaged:
		return "damaged"
	case EnemyDead:
		return "dead"
	case EnemyOffScreen:
		return "offscreen"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID  defs.EnemyKind
	Target types.EntityID // actor chosen at spawn, never changes
	Speed  float64
	Reward int
	State  EnemyState
	// Minion is set for plastic spawned by a boss; it does not count toward
	// the wave quota.
	Minion bool

	BlinkStartedAt time.Duration
	Visible        bool
}

// Alive reports whether the enemy still takes part in the wave.
func (e *Enemy) Alive() bool {
	return e.State != EnemyDead && e.State != EnemyOffScreen
}

// Boss adds the minion spawner to an Enemy.
type Boss struct {
	SpawnInterval  time.Duration
	NextSpawnAt    time.Duration
	MinionsSpawned int
}
