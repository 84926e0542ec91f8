// internal/component/movement.go
package component

import "go-reef-defense/pkg/geom"

// Transform хранит позицию центра и направление взгляда
type Transform struct {
	Pos   geom.Vec2
	Angle float64 // radians
	Size  float64 // square sprite edge, px
}

// SpriteRect is the full sprite rectangle around Pos.
func (t Transform) SpriteRect() geom.Rect {
	return geom.RectAround(t.Pos, t.Size, t.Size)
}

// Velocity is the per-frame displacement.
type Velocity struct {
	geom.Vec2
}
