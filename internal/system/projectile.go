// internal/system/projectile.go
package system

import (
	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/types"
	"go-reef-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

var screen = geom.Rect{W: config.ScreenWidth, H: config.ScreenHeight}

// Spawn fires a projectile from pos along angle on behalf of owner.
func (s *ProjectileSystem) Spawn(owner types.EntityID, pos geom.Vec2, angle float64, w *component.Weapon, r *component.Renderable) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Pos: pos, Angle: angle, Size: w.ShotSize}
	s.ecs.Velocities[id] = &component.Velocity{Vec2: geom.FromAngle(angle).Scale(w.ShotSpeed)}
	s.ecs.Hitboxes[id] = &component.Hitbox{W: w.ShotSize, H: w.ShotSize}
	s.ecs.Projectiles[id] = &component.Projectile{Owner: owner, Damage: w.ShotDamage()}
	if r != nil {
		s.ecs.Renderables[id] = r
	}
	return id
}

// Update advances every projectile and drops those whose centre left the
// screen. They deal no damage after that.
func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		tr, hasTr := s.ecs.Transforms[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasTr || !hasVel {
			s.ecs.RemoveEntity(id)
			continue
		}
		tr.Pos = tr.Pos.Add(vel.Vec2)
		if !screen.Contains(tr.Pos) {
			s.ecs.RemoveEntity(id)
		}
	}
}
