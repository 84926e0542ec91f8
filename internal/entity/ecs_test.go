package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/types"
)

func TestIDsAreSortedAndUnique(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{State: component.EnemyMoving}
	}
	got := ecs.EnemyIDs()
	assert.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestActorIDsOrder(t *testing.T) {
	ecs := NewECS()
	crab := ecs.NewEntity()
	ecs.Actors[crab] = &component.Actor{Kind: defs.ActorCrab}
	turtle := ecs.NewEntity()
	ecs.Actors[turtle] = &component.Actor{Kind: defs.ActorTurtle}

	assert.Equal(t, []types.EntityID{turtle, crab}, ecs.ActorIDs())
	_, ok := ecs.ActorByKind(defs.ActorCrab)
	assert.True(t, ok)
}

func TestLiveEnemiesAndClear(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	ecs.Enemies[a] = &component.Enemy{State: component.EnemyMoving}
	ecs.Transforms[a] = &component.Transform{}
	b := ecs.NewEntity()
	ecs.Enemies[b] = &component.Enemy{State: component.EnemyDead}
	p := ecs.NewEntity()
	ecs.Projectiles[p] = &component.Projectile{}

	assert.Equal(t, 1, ecs.LiveEnemies())

	ecs.ClearEnemies()
	assert.Empty(t, ecs.Enemies)
	assert.Empty(t, ecs.Transforms)
	assert.Len(t, ecs.Projectiles, 1)

	ecs.ClearProjectiles()
	assert.Empty(t, ecs.Projectiles)
}

func TestResetKeepsWallet(t *testing.T) {
	ecs := NewECS()
	w := ecs.Wallet
	w.Credit(9)
	ecs.Enemies[ecs.NewEntity()] = &component.Enemy{}
	ecs.Wave.Number = 4

	ecs.Reset()
	assert.Same(t, w, ecs.Wallet)
	assert.Equal(t, 0, w.Balance())
	assert.Empty(t, ecs.Enemies)
	assert.Equal(t, 1, ecs.Wave.Number)
	assert.Equal(t, types.EntityID(1), ecs.NewEntity())
}
