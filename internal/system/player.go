// internal/system/player.go
package system

import (
	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/input"
	"go-reef-defense/internal/types"
	iutils "go-reef-defense/internal/utils"
	"go-reef-defense/pkg/geom"
	"go-reef-defense/pkg/utils"
)

// PlayerSystem двигает черепаху и краба по вводу игрока и стреляет за них.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher, projectiles: projectiles}
}

func (s *PlayerSystem) Update(in input.State) {
	for _, id := range s.ecs.ActorIDs() {
		actor := s.ecs.Actors[id]
		tr := s.ecs.Transforms[id]
		switch actor.Kind {
		case defs.ActorTurtle:
			s.moveTurtle(actor, tr, in.Pointer)
			if in.TurtleFire {
				aim := tr.Angle
				if d, ok := in.Pointer.Sub(tr.Pos).Normalize(); ok {
					aim = d.Angle()
				}
				s.fire(id, tr, aim)
			}
		case defs.ActorCrab:
			s.moveCrab(actor, tr, in)
			if in.CrabFire {
				s.fire(id, tr, tr.Angle)
			}
		}
	}
}

// moveTurtle follows the pointer and stops within StopDistance of it. The
// body turns gradually; shots aim at the pointer, not along the facing.
func (s *PlayerSystem) moveTurtle(actor *component.Actor, tr *component.Transform, pointer geom.Vec2) {
	delta := pointer.Sub(tr.Pos)
	if delta.Len() <= actor.StopDistance {
		return
	}
	dir, ok := delta.Normalize()
	if !ok {
		return
	}
	tr.Pos = tr.Pos.Add(dir.Scale(actor.Speed))
	tr.Angle = iutils.LerpAngle(tr.Angle, dir.Angle(), config.TurnSmoothness)
	clampToScreen(tr)
}

// moveCrab steps each axis by Speed. Its facing snaps, since it fires along it.
func (s *PlayerSystem) moveCrab(actor *component.Actor, tr *component.Transform, in input.State) {
	dx, dy := in.CrabAxis()
	if dx == 0 && dy == 0 {
		return
	}
	step := geom.Vec2{X: dx * actor.Speed, Y: dy * actor.Speed}
	tr.Pos = tr.Pos.Add(step)
	tr.Angle = step.Angle()
	clampToScreen(tr)
}

func clampToScreen(tr *component.Transform) {
	half := tr.Size / 2
	tr.Pos.X = utils.Clamp(tr.Pos.X, half, config.ScreenWidth-half)
	tr.Pos.Y = utils.Clamp(tr.Pos.Y, half, config.ScreenHeight-half)
}

func (s *PlayerSystem) fire(id types.EntityID, tr *component.Transform, angle float64) {
	w := s.ecs.Weapons[id]
	if w == nil || !w.Ready(s.ecs.Clock) {
		return
	}
	w.NextFireAt = s.ecs.Clock + w.Cooldown

	actor := s.ecs.Actors[id]
	shot := defs.ActorLibrary[actor.Kind].Weapon.Visuals
	s.projectiles.Spawn(id, tr.Pos, angle, w, &component.Renderable{Sprite: shot.Sprite, Color: shot.Color, Round: true})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ActorFired, Data: event.ActorData{
		ActorID: id,
		Kind:    actor.Kind,
		Health:  s.ecs.Healths[id].Value,
	}})
}
