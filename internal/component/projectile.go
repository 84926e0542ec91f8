// internal/component/projectile.go
package component

import "go-reef-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Owner  types.EntityID
	Damage int
}
