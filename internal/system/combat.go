// internal/system/combat.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/types"
)

// hitFlashDuration is how long an actor is tinted after contact damage.
const hitFlashDuration = config.FrameStep * 20

// CombatSystem разрешает столкновения снарядов, врагов и актёров.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	tuning          config.Tuning
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning config.Tuning) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher, tuning: tuning}
}

// Resolve runs one collision pass: projectiles against enemies first, then
// enemies against actors.
func (s *CombatSystem) Resolve() {
	s.resolveProjectiles()
	s.resolveContacts()
}

// resolveProjectiles lets each projectile, in ID order, hit the first live
// enemy it overlaps. The projectile is consumed by the hit.
func (s *CombatSystem) resolveProjectiles() {
	enemies := s.ecs.EnemyIDs()
	for _, pid := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[pid]
		prect := s.ecs.Hitboxes[pid].At(s.ecs.Transforms[pid].Pos)

		for _, eid := range enemies {
			enemy, ok := s.ecs.Enemies[eid]
			if !ok || !enemy.Alive() {
				continue
			}
			if !prect.Intersects(s.ecs.Hitboxes[eid].At(s.ecs.Transforms[eid].Pos)) {
				continue
			}
			ApplyDamage(s.ecs, s.eventDispatcher, eid, proj.Damage, proj.Owner)
			s.ecs.RemoveEntity(pid)
			break
		}
	}
}

// resolveContacts destroys every enemy touching an actor. An enemy touches at
// most one actor, and an actor loses at most ContactDamage per pass.
func (s *CombatSystem) resolveContacts() {
	actors := s.ecs.ActorIDs()
	hit := make(map[types.EntityID]bool, len(actors))

	for _, eid := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[eid]
		if !ok || !enemy.Alive() {
			continue
		}
		erect := s.ecs.Hitboxes[eid].At(s.ecs.Transforms[eid].Pos)

		for _, aid := range actors {
			if !erect.Intersects(s.ecs.Hitboxes[aid].At(s.ecs.Transforms[aid].Pos)) {
				continue
			}
			killEnemy(s.ecs, s.eventDispatcher, eid, event.CauseContact, aid)
			if !hit[aid] {
				hit[aid] = true
				s.damageActor(aid)
			}
			break
		}
	}
}

func (s *CombatSystem) damageActor(id types.EntityID) {
	health := s.ecs.Healths[id]
	health.Damage(s.tuning.ContactDamage)
	s.ecs.HitFlashes[id] = &component.HitFlash{StartedAt: s.ecs.Clock, Duration: hitFlashDuration}

	kind := s.ecs.Actors[id].Kind
	log.Debug().Str("actor", string(kind)).Int("health", health.Value).Msg("Actor hit")
	s.eventDispatcher.Dispatch(event.Event{Type: event.ActorHit, Data: event.ActorData{
		ActorID: id,
		Kind:    kind,
		Health:  health.Value,
	}})
}

// CheckGameOver dispatches GameOver once when any actor is out of health.
func (s *CombatSystem) CheckGameOver() bool {
	if s.ecs.GameState.Phase == component.PhaseGameOver {
		return true
	}
	for _, id := range s.ecs.ActorIDs() {
		if s.ecs.Healths[id].Value > 0 {
			continue
		}
		log.Info().Str("actor", string(s.ecs.Actors[id].Kind)).Int("wave", s.ecs.Wave.Number).Msg("Game over")
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.ActorData{
			ActorID: id,
			Kind:    s.ecs.Actors[id].Kind,
		}})
		return true
	}
	return false
}
