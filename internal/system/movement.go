// internal/system/movement.go
package system

import (
	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/utils"
	"go-reef-defense/pkg/geom"
)

// MovementSystem обновляет позиции врагов и убирает ушедших за экран.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	tuning          config.Tuning
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, tuning config.Tuning) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher, rng: rng, tuning: tuning}
}

func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		tr, ok := s.ecs.Transforms[id]
		if !ok || !enemy.Alive() {
			continue
		}

		// Пока мигает после попадания, враг стоит на месте.
		if enemy.State != component.EnemyDamaged {
			enemy.State = component.EnemyMoving
			s.step(enemy, tr)
		}

		if tr.SpriteRect().Right() < 0 {
			enemy.State = component.EnemyOffScreen
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyEscapedData{
				EnemyID: id,
				Kind:    enemy.DefID,
			}})
		}
	}
}

// step moves the enemy toward its target actor. Without a target it drifts
// left; with no usable direction it takes a random nudge.
func (s *MovementSystem) step(enemy *component.Enemy, tr *component.Transform) {
	var dir geom.Vec2
	if target, ok := s.ecs.Transforms[enemy.Target]; ok && s.ecs.Actors[enemy.Target] != nil {
		dir = target.Pos.Sub(tr.Pos)
	} else {
		dir = geom.Vec2{X: -1}
	}

	n, ok := dir.Normalize()
	if !ok {
		tr.Pos = tr.Pos.Add(s.rng.UnitVector().Scale(s.tuning.NudgeScale))
		return
	}
	tr.Pos = tr.Pos.Add(n.Scale(enemy.Speed))
	tr.Angle = n.Angle()
}
