// internal/component/combat.go
package component

import (
	"time"

	"go-reef-defense/pkg/geom"
)

// Health хранит здоровье. Value never goes below zero.
type Health struct {
	Value int
	Max   int
}

// Damage subtracts amount and reports whether the entity is now at zero.
func (h *Health) Damage(amount int) bool {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value == 0
}

// Hitbox is a W×H collision rectangle centred on the entity.
type Hitbox struct {
	W, H float64
}

// At places the hitbox around pos.
func (h Hitbox) At(pos geom.Vec2) geom.Rect {
	return geom.RectAround(pos, h.W, h.H)
}

// Weapon описывает стрельбу актёра
type Weapon struct {
	Damage     int
	Multiplier float64
	Cooldown   time.Duration
	NextFireAt time.Duration
	ShotSpeed  float64
	ShotSize   float64
}

// ShotDamage is the damage one projectile deals after upgrades.
func (w Weapon) ShotDamage() int {
	return int(float64(w.Damage) * w.Multiplier)
}

// Ready reports whether the weapon may fire at clock now.
func (w Weapon) Ready(now time.Duration) bool {
	return now >= w.NextFireAt
}
