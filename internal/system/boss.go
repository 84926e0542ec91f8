// internal/system/boss.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
)

// BossSystem lets bosses release plastic on a timer.
type BossSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	spawner         *Spawner
}

func NewBossSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, spawner *Spawner) *BossSystem {
	return &BossSystem{ecs: ecs, eventDispatcher: eventDispatcher, spawner: spawner}
}

// MinionCount is how many plastics a boss with the given health releases.
func MinionCount(health int) int {
	return health%3 + 2
}

func (s *BossSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		boss, isBoss := s.ecs.Bosses[id]
		if !isBoss || !s.ecs.Enemies[id].Alive() {
			continue
		}
		if s.ecs.Clock < boss.NextSpawnAt {
			continue
		}

		origin := s.ecs.Transforms[id].Pos
		count := MinionCount(s.ecs.Healths[id].Value)
		for i := 0; i < count; i++ {
			s.spawner.SpawnMinion(origin, s.ecs.Wave.Number)
		}
		boss.MinionsSpawned += count
		boss.NextSpawnAt = s.ecs.Clock + boss.SpawnInterval

		log.Debug().Uint64("boss", uint64(id)).Int("count", count).Msg("Boss released minions")
		s.eventDispatcher.Dispatch(event.Event{Type: event.MinionsSpawned, Data: event.MinionsSpawnedData{
			BossID: id,
			Count:  count,
		}})
	}
}
