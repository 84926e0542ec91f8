// internal/system/visual_effect.go
package system

import (
	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/entity"
)

// VisualEffectSystem управляет миганием раненых врагов и вспышками актёров.
type VisualEffectSystem struct {
	ecs    *entity.ECS
	tuning config.Tuning
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, tuning config.Tuning) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, tuning: tuning}
}

// Update toggles visibility of damaged enemies every frame and returns them
// to Moving once the blink window is over.
func (s *VisualEffectSystem) Update() {
	now := s.ecs.Clock
	for _, enemy := range s.ecs.Enemies {
		if enemy.State != component.EnemyDamaged {
			continue
		}
		if now-enemy.BlinkStartedAt >= s.tuning.BlinkDuration {
			enemy.State = component.EnemyMoving
			enemy.Visible = true
			continue
		}
		enemy.Visible = !enemy.Visible
	}

	for id, flash := range s.ecs.HitFlashes {
		if !flash.Active(now) {
			delete(s.ecs.HitFlashes, id)
		}
	}
}
