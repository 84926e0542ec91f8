package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/event"
	"go-reef-defense/pkg/geom"
)

func TestApplyDamageBlinksThenKills(t *testing.T) {
	w := newWorld(t)
	id := w.placeEnemy(geom.Vec2{X: 600, Y: 100}, 20, w.turtle)
	w.ecs.Clock = 1234

	assert.False(t, ApplyDamage(w.ecs, w.dispatcher, id, 10, w.turtle))
	e := w.ecs.Enemies[id]
	assert.Equal(t, component.EnemyDamaged, e.State)
	assert.Equal(t, w.ecs.Clock, e.BlinkStartedAt)
	assert.Equal(t, 10, w.ecs.Healths[id].Value)

	assert.True(t, ApplyDamage(w.ecs, w.dispatcher, id, 10, w.turtle))
	assert.NotContains(t, w.ecs.Enemies, id)
	assert.Equal(t, 1, w.ecs.Wallet.Balance())

	ev, ok := w.rec.last(event.EnemyKilled)
	require.True(t, ok)
	data := ev.Data.(event.EnemyKilledData)
	assert.Equal(t, 1, data.Reward)
	assert.Equal(t, event.CauseProjectile, data.Cause)

	// A removed enemy cannot be killed twice.
	assert.False(t, ApplyDamage(w.ecs, w.dispatcher, id, 10, w.turtle))
	assert.Equal(t, 1, w.rec.count(event.EnemyKilled))
}

func TestProjectileHitsFirstEnemyByID(t *testing.T) {
	w := newWorld(t)
	first := w.placeEnemy(geom.Vec2{X: 600, Y: 100}, 20, w.turtle)
	second := w.placeEnemy(geom.Vec2{X: 605, Y: 100}, 20, w.turtle)
	shot := w.placeShot(geom.Vec2{X: 602, Y: 100}, 100)

	w.combat.Resolve()

	assert.NotContains(t, w.ecs.Enemies, first)
	assert.Contains(t, w.ecs.Enemies, second)
	assert.Equal(t, 20, w.ecs.Healths[second].Value)
	assert.NotContains(t, w.ecs.Projectiles, shot)
}

func TestProjectileDamageAccumulates(t *testing.T) {
	w := newWorld(t)
	boss := w.placeEnemy(geom.Vec2{X: 600, Y: 100}, 250, w.turtle)
	w.ecs.Enemies[boss].Reward = 5

	w.placeShot(geom.Vec2{X: 600, Y: 100}, 100)
	w.placeShot(geom.Vec2{X: 600, Y: 100}, 100)
	w.combat.Resolve()
	assert.Equal(t, 50, w.ecs.Healths[boss].Value)
	assert.Empty(t, w.ecs.Projectiles)

	w.placeShot(geom.Vec2{X: 600, Y: 100}, 50)
	w.combat.Resolve()
	assert.NotContains(t, w.ecs.Enemies, boss)
	assert.Equal(t, 5, w.ecs.Wallet.Balance())
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	w := newWorld(t)
	enemy := w.placeEnemy(geom.Vec2{X: 600, Y: 100}, 20, w.turtle)
	// Enemy hitbox spans x 590..610, shot 610..630.
	shot := w.placeShot(geom.Vec2{X: 620, Y: 100}, 100)

	w.combat.Resolve()
	assert.Contains(t, w.ecs.Enemies, enemy)
	assert.Contains(t, w.ecs.Projectiles, shot)
}

func TestContactCostsOneHealthPerPass(t *testing.T) {
	w := newWorld(t)
	a := w.placeEnemy(geom.Vec2{X: 400, Y: 300}, 20, w.turtle)
	b := w.placeEnemy(geom.Vec2{X: 410, Y: 300}, 20, w.turtle)

	w.combat.Resolve()

	assert.NotContains(t, w.ecs.Enemies, a)
	assert.NotContains(t, w.ecs.Enemies, b)
	assert.Equal(t, 2, w.ecs.Healths[w.turtle].Value)
	assert.Equal(t, 3, w.ecs.Healths[w.crab].Value)
	assert.Equal(t, 2, w.ecs.Wallet.Balance())
	assert.Equal(t, 1, w.rec.count(event.ActorHit))
	assert.Contains(t, w.ecs.HitFlashes, w.turtle)

	ev, ok := w.rec.last(event.EnemyKilled)
	require.True(t, ok)
	assert.Equal(t, event.CauseContact, ev.Data.(event.EnemyKilledData).Cause)
	assert.Equal(t, w.turtle, ev.Data.(event.EnemyKilledData).By)
}

func TestEnemyTouchesOnlyFirstActor(t *testing.T) {
	w := newWorld(t)
	w.ecs.Transforms[w.crab].Pos = geom.Vec2{X: 420, Y: 300}
	w.placeEnemy(geom.Vec2{X: 410, Y: 300}, 20, w.crab)

	w.combat.Resolve()
	assert.Equal(t, 2, w.ecs.Healths[w.turtle].Value)
	assert.Equal(t, 3, w.ecs.Healths[w.crab].Value)
}

func TestProjectilesResolveBeforeContact(t *testing.T) {
	w := newWorld(t)
	enemy := w.placeEnemy(geom.Vec2{X: 400, Y: 300}, 20, w.turtle)
	w.placeShot(geom.Vec2{X: 400, Y: 300}, 100)

	w.combat.Resolve()
	assert.NotContains(t, w.ecs.Enemies, enemy)
	assert.Equal(t, 3, w.ecs.Healths[w.turtle].Value)
	ev, _ := w.rec.last(event.EnemyKilled)
	assert.Equal(t, event.CauseProjectile, ev.Data.(event.EnemyKilledData).Cause)
}

func TestGameOverDispatchedOnce(t *testing.T) {
	w := newWorld(t)
	NewStateSystem(w.ecs, &fakeContext{}, w.dispatcher)
	w.ecs.Healths[w.crab].Value = 1
	w.placeEnemy(geom.Vec2{X: 200, Y: 200}, 20, w.crab)

	assert.False(t, w.combat.CheckGameOver())
	w.combat.Resolve()
	assert.Equal(t, 0, w.ecs.Healths[w.crab].Value)

	assert.True(t, w.combat.CheckGameOver())
	assert.True(t, w.combat.CheckGameOver())
	assert.Equal(t, 1, w.rec.count(event.GameOver))
	assert.Equal(t, component.PhaseGameOver, w.ecs.GameState.Phase)
}

func TestHealthNeverNegative(t *testing.T) {
	w := newWorld(t)
	w.ecs.Healths[w.turtle].Value = 1
	for i := 0; i < 3; i++ {
		w.placeEnemy(geom.Vec2{X: 400, Y: 300}, 20, w.turtle)
		w.combat.Resolve()
	}
	assert.Equal(t, 0, w.ecs.Healths[w.turtle].Value)
}
