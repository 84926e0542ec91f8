// internal/system/spawn.go
package system

import (
	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/types"
	"go-reef-defense/internal/utils"
	"go-reef-defense/pkg/geom"
)

// Spawner creates actors and enemies from their definitions.
type Spawner struct {
	ecs    *entity.ECS
	rng    *utils.PRNGService
	tuning config.Tuning
}

func NewSpawner(ecs *entity.ECS, rng *utils.PRNGService, tuning config.Tuning) *Spawner {
	return &Spawner{ecs: ecs, rng: rng, tuning: tuning}
}

// SpawnActor places an actor at its start position.
func (s *Spawner) SpawnActor(kind defs.ActorKind) types.EntityID {
	def := defs.ActorLibrary[kind]
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{
		Pos:  geom.Vec2{X: def.StartX, Y: def.StartY},
		Size: def.Size,
	}
	s.ecs.Hitboxes[id] = &component.Hitbox{W: def.Size * def.HitboxRatio, H: def.Size * def.HitboxRatio}
	s.ecs.Healths[id] = &component.Health{Value: s.tuning.ActorStartHealth, Max: s.tuning.ActorStartHealth}
	s.ecs.Weapons[id] = &component.Weapon{
		Damage:     def.Weapon.Damage,
		Multiplier: 1,
		Cooldown:   def.Weapon.Cooldown,
		ShotSpeed:  def.Weapon.ShotSpeed,
		ShotSize:   def.Weapon.ShotSize,
	}
	s.ecs.Actors[id] = &component.Actor{Kind: kind, Speed: def.Speed, StopDistance: def.StopDistance}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: def.Visuals.Sprite, Color: def.Visuals.Color}
	return id
}

// SpawnPlastic enters an ordinary enemy just past the right edge.
func (s *Spawner) SpawnPlastic(wave int) types.EntityID {
	def := defs.EnemyLibrary[defs.EnemyPlastic]
	pos := geom.Vec2{
		X: config.ScreenWidth + def.Size/2,
		Y: float64(s.rng.IntRange(config.SpawnMinY, config.SpawnMaxY)),
	}
	return s.spawnEnemy(def, pos, wave, false)
}

// SpawnMinion places a plastic within MinionSpread of origin on each axis.
func (s *Spawner) SpawnMinion(origin geom.Vec2, wave int) types.EntityID {
	def := defs.EnemyLibrary[defs.EnemyPlastic]
	pos := origin.Add(geom.Vec2{
		X: s.rng.FloatRange(-config.MinionSpread, config.MinionSpread),
		Y: s.rng.FloatRange(-config.MinionSpread, config.MinionSpread),
	})
	return s.spawnEnemy(def, pos, wave, true)
}

// SpawnBoss enters the boss at the right edge, vertically centred.
func (s *Spawner) SpawnBoss(wave int) types.EntityID {
	def := defs.EnemyLibrary[defs.EnemyBoss]
	pos := geom.Vec2{X: config.ScreenWidth + def.Size/2, Y: config.ScreenHeight / 2}
	id := s.spawnEnemy(def, pos, wave, false)
	s.ecs.Bosses[id] = &component.Boss{
		SpawnInterval: s.tuning.BossSpawnInterval,
		NextSpawnAt:   s.ecs.Clock + s.tuning.BossSpawnInterval,
	}
	return id
}

func (s *Spawner) spawnEnemy(def defs.EnemyDefinition, pos geom.Vec2, wave int, minion bool) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Pos: pos, Size: def.Size, Angle: geom.Vec2{X: -1}.Angle()}
	s.ecs.Hitboxes[id] = &component.Hitbox{W: def.Size * def.HitboxRatio, H: def.Size * def.HitboxRatio}
	hp := def.HealthAt(wave)
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:   def.ID,
		Target:  s.pickTarget(),
		Speed:   s.enemySpeed(def, wave),
		Reward:  def.Reward,
		State:   component.EnemySpawned,
		Minion:  minion,
		Visible: true,
	}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: def.Visuals.Sprite, Color: def.Visuals.Color, Round: true}
	return id
}

// enemySpeed is SpeedUnit * randint(1, SpeedSteps), scaled up each wave.
func (s *Spawner) enemySpeed(def defs.EnemyDefinition, wave int) float64 {
	steps := s.rng.IntRange(1, def.SpeedSteps)
	scale := 1 + s.tuning.SpeedScalePerWave*float64(wave-1)
	return def.SpeedUnit * float64(steps) * scale
}

func (s *Spawner) pickTarget() types.EntityID {
	actors := s.ecs.ActorIDs()
	i := s.rng.Choose(len(actors))
	if i < 0 {
		return 0
	}
	return actors[i]
}
