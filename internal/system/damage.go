// internal/system/damage.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/types"
)

// ApplyDamage наносит урон врагу. A lethal hit removes the enemy, dispatches
// EnemyKilled with its reward and returns true. A non-lethal hit starts the
// blink window.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID types.EntityID, amount int, by types.EntityID) bool {
	enemy, isEnemy := ecs.Enemies[enemyID]
	health, hasHealth := ecs.Healths[enemyID]
	if !isEnemy || !hasHealth || !enemy.Alive() {
		return false
	}

	if health.Damage(amount) {
		killEnemy(ecs, dispatcher, enemyID, event.CauseProjectile, by)
		return true
	}

	enemy.State = component.EnemyDamaged
	enemy.BlinkStartedAt = ecs.Clock
	enemy.Visible = false
	dispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.EnemyDamagedData{
		EnemyID: enemyID,
		Amount:  amount,
		Health:  health.Value,
	}})
	return false
}

// killEnemy marks the enemy dead, removes it and pays out its reward.
func killEnemy(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID types.EntityID, cause event.KillCause, by types.EntityID) {
	enemy := ecs.Enemies[enemyID]
	enemy.State = component.EnemyDead
	ecs.RemoveEntity(enemyID)

	log.Debug().Uint64("enemy", uint64(enemyID)).Str("kind", string(enemy.DefID)).Str("cause", string(cause)).Msg("Enemy killed")
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		EnemyID: enemyID,
		Kind:    enemy.DefID,
		Reward:  enemy.Reward,
		Cause:   cause,
		By:      by,
	}})
}
