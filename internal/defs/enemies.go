// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          EnemyKind
	Name        string
	Size        float64
	HitboxRatio float64
	// Health is BaseHealth + HealthPerWave*wave.
	BaseHealth    int
	HealthPerWave int
	// Speed is SpeedUnit * (1..SpeedSteps), chosen at spawn.
	SpeedUnit  float64
	SpeedSteps int
	Reward     int
	Visuals    Visuals
}

// HealthAt returns the starting health for an enemy spawned on the given wave.
func (d EnemyDefinition) HealthAt(wave int) int {
	return d.BaseHealth + d.HealthPerWave*wave
}

// EnemyLibrary is keyed by EnemyKind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyPlastic: {
		ID:          EnemyPlastic,
		Name:        "Plastic",
		Size:        40,
		HitboxRatio: 0.5,
		BaseHealth:  20,
		SpeedUnit:   0.5,
		SpeedSteps:  3,
		Reward:      1,
		Visuals:     Visuals{Sprite: "plastic.png", Color: color.RGBA{200, 220, 235, 255}},
	},
	EnemyBoss: {
		ID:            EnemyBoss,
		Name:          "Plastic Boss",
		Size:          120,
		HitboxRatio:   0.5,
		BaseHealth:    100,
		HealthPerWave: 50,
		SpeedUnit:     0.5,
		SpeedSteps:    1,
		Reward:        5,
		Visuals:       Visuals{Sprite: "boss.png", Color: color.RGBA{150, 170, 200, 255}},
	},
}
