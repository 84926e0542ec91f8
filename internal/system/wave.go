// internal/system/wave.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
)

// WaveSystem decides when enemies enter and when a wave is over.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	spawner         *Spawner
	tuning          config.Tuning
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, spawner *Spawner, tuning config.Tuning) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		spawner:         spawner,
		tuning:          tuning,
	}
}

// TargetCount is the ordinary quota of wave w: BaseQuota + QuotaStep*(w-1).
func (s *WaveSystem) TargetCount(w int) int {
	return s.tuning.BaseQuota + s.tuning.QuotaStep*(w-1)
}

// IsBossWave reports whether wave w is a boss wave.
func (s *WaveSystem) IsBossWave(w int) bool {
	return w > 0 && w%s.tuning.BossInterval == 0
}

// Quota is the number of spawn units of wave w. A boss wave is one unit.
func (s *WaveSystem) Quota(w int) int {
	if s.IsBossWave(w) {
		return 1
	}
	return s.TargetCount(w)
}

// CumulativeQuota sums Quota over waves 1..w.
func (s *WaveSystem) CumulativeQuota(w int) int {
	total := 0
	for i := 1; i <= w; i++ {
		total += s.Quota(i)
	}
	return total
}

// BeginWave resets the per-wave counters for wave number and announces it.
func (s *WaveSystem) BeginWave(number int) {
	wave := s.ecs.Wave
	wave.Number = number
	wave.Target = s.Quota(number)
	wave.Spawned = 0
	wave.HasSpawned = false
	wave.BossSpawned = false
	wave.StartedAt = s.ecs.Clock

	boss := s.IsBossWave(number)
	log.Info().Int("wave", number).Int("target", wave.Target).Bool("boss", boss).Msg("Wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{
		Number: number,
		Target: wave.Target,
		Boss:   boss,
	}})
}

// Update spawns at most one quota unit per frame.
func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	now := s.ecs.Clock

	if s.IsBossWave(wave.Number) {
		if wave.BossSpawned {
			return
		}
		id := s.spawner.SpawnBoss(wave.Number)
		wave.BossSpawned = true
		wave.Target = 1
		wave.Spawned = 1
		s.markSpawned()

		hp := s.ecs.Healths[id].Value
		log.Info().Int("wave", wave.Number).Int("health", hp).Msg("Boss spawned")
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: event.EnemySpawnedData{
			EnemyID: id,
			Kind:    s.ecs.Enemies[id].DefID,
			Target:  s.ecs.Enemies[id].Target,
			Health:  hp,
		}})
		return
	}

	if wave.QuotaFilled() {
		return
	}
	if wave.HasSpawned && now-wave.LastSpawnAt < s.tuning.SpawnInterval {
		return
	}

	id := s.spawner.SpawnPlastic(wave.Number)
	wave.Spawned++
	s.markSpawned()
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{
		EnemyID: id,
		Kind:    s.ecs.Enemies[id].DefID,
		Target:  s.ecs.Enemies[id].Target,
		Health:  s.ecs.Healths[id].Value,
	}})
}

func (s *WaveSystem) markSpawned() {
	wave := s.ecs.Wave
	wave.TotalSpawned++
	wave.HasSpawned = true
	wave.LastSpawnAt = s.ecs.Clock
}

// CheckCompletion advances to the next wave once the quota is spawned and no
// enemy is left. It returns true on the frame the wave ends.
func (s *WaveSystem) CheckCompletion() bool {
	wave := s.ecs.Wave
	if wave.Spawned != wave.Target || s.ecs.LiveEnemies() > 0 {
		return false
	}

	finished := wave.Number
	wave.Number++
	wave.Spawned = 0
	wave.Target = s.Quota(wave.Number)
	wave.BossSpawned = false
	wave.HasSpawned = false

	log.Info().Int("wave", finished).Int("next", wave.Number).Int("coins", s.ecs.Wallet.Balance()).Msg("Wave cleared")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{
		Number: finished,
		Target: wave.Target,
		Boss:   s.IsBossWave(finished),
	}})
	return true
}
