package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/input"
	"go-reef-defense/pkg/geom"
)

func TestTurtleFollowsPointer(t *testing.T) {
	w := newWorld(t)
	tr := w.ecs.Transforms[w.turtle]

	w.players.Update(input.State{Pointer: geom.Vec2{X: 500, Y: 300}})
	assert.InDelta(t, 405, tr.Pos.X, 1e-9)
	assert.InDelta(t, 0, tr.Angle, 1e-9)

	// Within the stop distance it stays put.
	w.players.Update(input.State{Pointer: geom.Vec2{X: 409, Y: 300}})
	assert.InDelta(t, 405, tr.Pos.X, 1e-9)
}

func TestTurtleTurnsGradually(t *testing.T) {
	w := newWorld(t)
	tr := w.ecs.Transforms[w.turtle]
	down := input.State{Pointer: geom.Vec2{X: 400, Y: 590}}

	w.players.Update(down)
	assert.InDelta(t, config.TurnSmoothness*math.Pi/2, tr.Angle, 1e-9)
	assert.InDelta(t, 305, tr.Pos.Y, 1e-9)

	for i := 0; i < 40; i++ {
		w.players.Update(down)
	}
	assert.InDelta(t, math.Pi/2, tr.Angle, 1e-3)
}

func TestCrabMovesAndClamps(t *testing.T) {
	w := newWorld(t)
	tr := w.ecs.Transforms[w.crab]
	hold := input.State{Pointer: w.ecs.Transforms[w.turtle].Pos, Left: true}

	w.players.Update(hold)
	assert.InDelta(t, 197, tr.Pos.X, 1e-9)

	for i := 0; i < 100; i++ {
		w.players.Update(hold)
	}
	assert.InDelta(t, 60, tr.Pos.X, 1e-9)
}

func TestFireRespectsCooldown(t *testing.T) {
	w := newWorld(t)
	fire := input.State{Pointer: geom.Vec2{X: 400, Y: 100}, TurtleFire: true}

	w.players.Update(fire)
	w.players.Update(fire)
	assert.Len(t, w.ecs.Projectiles, 1)

	w.advance(299 * time.Millisecond)
	w.players.Update(fire)
	assert.Len(t, w.ecs.Projectiles, 1)

	w.advance(time.Millisecond)
	w.players.Update(fire)
	assert.Len(t, w.ecs.Projectiles, 2)
	assert.Equal(t, 2, w.rec.count(event.ActorFired))

	for _, id := range w.ecs.ProjectileIDs() {
		vel := w.ecs.Velocities[id]
		assert.InDelta(t, 0, vel.X, 1e-9)
		assert.InDelta(t, -7, vel.Y, 1e-9)
		assert.Equal(t, 100, w.ecs.Projectiles[id].Damage)
	}
}

func TestCrabFiresAlongFacingWithMultiplier(t *testing.T) {
	w := newWorld(t)
	w.ecs.Weapons[w.crab].Multiplier = 2
	still := w.ecs.Transforms[w.turtle].Pos

	w.players.Update(input.State{Pointer: still, Left: true})
	w.advance(time.Second)
	w.players.Update(input.State{Pointer: still, CrabFire: true})

	ids := w.ecs.ProjectileIDs()
	require.Len(t, ids, 1)
	assert.InDelta(t, -7, w.ecs.Velocities[ids[0]].X, 1e-9)
	assert.Equal(t, 100, w.ecs.Projectiles[ids[0]].Damage)
	assert.Equal(t, w.crab, w.ecs.Projectiles[ids[0]].Owner)
}
