package system

import (
	"testing"
	"time"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/types"
	"go-reef-defense/internal/utils"
	"go-reef-defense/pkg/geom"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

// world wires the rule systems the way the game does, without a front end.
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rec        *recorder
	tuning     config.Tuning

	spawner     *Spawner
	waves       *WaveSystem
	movement    *MovementSystem
	bosses      *BossSystem
	effects     *VisualEffectSystem
	projectiles *ProjectileSystem
	players     *PlayerSystem
	combat      *CombatSystem

	turtle, crab types.EntityID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
		tuning:     config.DefaultTuning(),
	}
	rng := utils.NewPRNGService(42)
	w.dispatcher.SubscribeAll(w.rec, event.AllTypes...)
	w.dispatcher.Subscribe(event.EnemyKilled, w.ecs.Wallet)

	w.spawner = NewSpawner(w.ecs, rng, w.tuning)
	w.waves = NewWaveSystem(w.ecs, w.dispatcher, w.spawner, w.tuning)
	w.movement = NewMovementSystem(w.ecs, w.dispatcher, rng, w.tuning)
	w.bosses = NewBossSystem(w.ecs, w.dispatcher, w.spawner)
	w.effects = NewVisualEffectSystem(w.ecs, w.tuning)
	w.projectiles = NewProjectileSystem(w.ecs, w.dispatcher)
	w.players = NewPlayerSystem(w.ecs, w.dispatcher, w.projectiles)
	w.combat = NewCombatSystem(w.ecs, w.dispatcher, w.tuning)

	w.turtle = w.spawner.SpawnActor(defs.ActorTurtle)
	w.crab = w.spawner.SpawnActor(defs.ActorCrab)
	w.ecs.GameState.Phase = component.PhasePlaying
	return w
}

// placeEnemy puts a plastic with the given health at pos, aimed at target.
func (w *world) placeEnemy(pos geom.Vec2, hp int, target types.EntityID) types.EntityID {
	def := defs.EnemyLibrary[defs.EnemyPlastic]
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Pos: pos, Size: def.Size}
	w.ecs.Hitboxes[id] = &component.Hitbox{W: def.Size * def.HitboxRatio, H: def.Size * def.HitboxRatio}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Enemies[id] = &component.Enemy{
		DefID:   defs.EnemyPlastic,
		Target:  target,
		Speed:   1,
		Reward:  def.Reward,
		State:   component.EnemyMoving,
		Visible: true,
	}
	return id
}

// placeShot puts a projectile with the given damage at pos, standing still.
func (w *world) placeShot(pos geom.Vec2, damage int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Pos: pos, Size: 20}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Hitboxes[id] = &component.Hitbox{W: 20, H: 20}
	w.ecs.Projectiles[id] = &component.Projectile{Owner: w.turtle, Damage: damage}
	return id
}

func (w *world) advance(d time.Duration) {
	w.ecs.Clock += d
}
