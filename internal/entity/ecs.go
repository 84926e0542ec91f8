// internal/entity/ecs.go
package entity

import (
	"sort"
	"time"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/economy"
	"go-reef-defense/internal/types"
)

// ECS is the whole session: component stores plus the clock, wave, phase and
// wallet every system reads each frame.
type ECS struct {
	Clock  time.Duration // frame clock, advanced only while playing
	NextID types.EntityID

	Transforms  map[types.EntityID]*component.Transform
	Velocities  map[types.EntityID]*component.Velocity
	Hitboxes    map[types.EntityID]*component.Hitbox
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Weapons     map[types.EntityID]*component.Weapon
	Actors      map[types.EntityID]*component.Actor
	Enemies     map[types.EntityID]*component.Enemy
	Bosses      map[types.EntityID]*component.Boss
	Projectiles map[types.EntityID]*component.Projectile
	HitFlashes  map[types.EntityID]*component.HitFlash

	Wave      *component.Wave
	GameState *component.GameState
	Wallet    *economy.Wallet
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Hitboxes:    make(map[types.EntityID]*component.Hitbox),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Weapons:     make(map[types.EntityID]*component.Weapon),
		Actors:      make(map[types.EntityID]*component.Actor),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bosses:      make(map[types.EntityID]*component.Boss),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		HitFlashes:  make(map[types.EntityID]*component.HitFlash),
		Wave:        &component.Wave{Number: 1},
		GameState:   &component.GameState{Phase: component.PhaseMenu},
		Wallet:      economy.NewWallet(),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops id from every store.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Weapons, id)
	delete(ecs.Actors, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Projectiles, id)
	delete(ecs.HitFlashes, id)
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyIDs returns every enemy ID in ascending order.
func (ecs *ECS) EnemyIDs() []types.EntityID { return sortedIDs(ecs.Enemies) }

// ProjectileIDs returns every projectile ID in ascending order.
func (ecs *ECS) ProjectileIDs() []types.EntityID { return sortedIDs(ecs.Projectiles) }

// ActorIDs returns actors in defs.ActorOrder.
func (ecs *ECS) ActorIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Actors))
	for _, kind := range defs.ActorOrder {
		if id, ok := ecs.ActorByKind(kind); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ActorByKind finds the actor of the given kind.
func (ecs *ECS) ActorByKind(kind defs.ActorKind) (types.EntityID, bool) {
	for _, id := range sortedIDs(ecs.Actors) {
		if ecs.Actors[id].Kind == kind {
			return id, true
		}
	}
	return 0, false
}

// LiveEnemies counts enemies still in play.
func (ecs *ECS) LiveEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// ClearEnemies removes every enemy.
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}

// ClearProjectiles removes every projectile.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}

// Reset clears every store for a new run. The wallet keeps its identity so
// event subscriptions stay valid; its balance goes back to zero.
func (ecs *ECS) Reset() {
	wallet := ecs.Wallet
	*ecs = *NewECS()
	wallet.Reset()
	ecs.Wallet = wallet
}
