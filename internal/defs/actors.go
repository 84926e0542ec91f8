// internal/defs/actors.go
package defs

import (
	"image/color"
	"time"
)

// ActorDefinition holds the static data for a player character.
type ActorDefinition struct {
	Kind         ActorKind
	Name         string
	Size         float64 // sprite edge, px
	HitboxRatio  float64
	Speed        float64 // px per frame
	StartX       float64
	StartY       float64
	StopDistance float64
	Weapon       WeaponDefinition
	Visuals      Visuals
}

// WeaponDefinition describes the shots an actor fires.
type WeaponDefinition struct {
	Damage    int
	Cooldown  time.Duration
	ShotSpeed float64
	ShotSize  float64
	Visuals   Visuals
}

// ActorLibrary is keyed by ActorKind.
var ActorLibrary = map[ActorKind]ActorDefinition{
	ActorTurtle: {
		Kind:         ActorTurtle,
		Name:         "Turtle",
		Size:         100,
		HitboxRatio:  0.6,
		Speed:        5,
		StartX:       400,
		StartY:       300,
		StopDistance: 5,
		Weapon: WeaponDefinition{
			Damage:    100,
			Cooldown:  300 * time.Millisecond,
			ShotSpeed: 7,
			ShotSize:  20,
			Visuals:   Visuals{Sprite: "bullet.png", Color: color.RGBA{240, 240, 240, 255}},
		},
		Visuals: Visuals{Sprite: "turtle.png", Color: color.RGBA{60, 180, 90, 255}},
	},
	ActorCrab: {
		Kind:        ActorCrab,
		Name:        "Crab",
		Size:        120,
		HitboxRatio: 0.6,
		Speed:       3,
		StartX:      200,
		StartY:      200,
		Weapon: WeaponDefinition{
			Damage:    50,
			Cooldown:  450 * time.Millisecond,
			ShotSpeed: 7,
			ShotSize:  20,
			Visuals:   Visuals{Sprite: "crab_bullet.png", Color: color.RGBA{250, 160, 80, 255}},
		},
		Visuals: Visuals{Sprite: "crab.png", Color: color.RGBA{230, 90, 60, 255}},
	},
}
