// internal/defs/types.go
package defs

import "image/color"

// ActorKind identifies one of the two player characters.
type ActorKind string

const (
	ActorTurtle ActorKind = "TURTLE"
	ActorCrab   ActorKind = "CRAB"
)

// ActorOrder is the order actors are resolved and drawn in.
var ActorOrder = []ActorKind{ActorTurtle, ActorCrab}

// EnemyKind separates ordinary plastic from the boss.
type EnemyKind string

const (
	EnemyPlastic EnemyKind = "PLASTIC"
	EnemyBoss    EnemyKind = "PLASTIC_BOSS"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Sprite string     `json:"sprite"`
	Color  color.RGBA `json:"color"`
}
