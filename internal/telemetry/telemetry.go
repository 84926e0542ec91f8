// Package telemetry counts gameplay events, per wave and for the whole run,
// and mirrors them to OpenTelemetry counters.
package telemetry

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"go-reef-defense/internal/event"
)

const instrumentationName = "go-reef-defense/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Stats is a snapshot of the counters.
type Stats struct {
	Spawned   int
	Killed    int
	Escaped   int
	Coins     int
	ShotsHit  int
	Fired     int
	ActorHits int
	Purchases int
	Waves     int
}

// Tracker is an event listener that keeps Stats for the current wave and the
// whole run.
type Tracker struct {
	mu    sync.Mutex
	wave  Stats
	total Stats

	spawned   metric.Int64Counter
	killed    metric.Int64Counter
	escaped   metric.Int64Counter
	coins     metric.Int64Counter
	waves     metric.Int64Counter
	purchases metric.Int64Counter
}

// NewTracker registers the counters on the global meter provider.
func NewTracker() (*Tracker, error) {
	m := meter()
	t := &Tracker{}
	var err error

	if t.spawned, err = m.Int64Counter("reef.enemies.spawned",
		metric.WithDescription("Enemies spawned")); err != nil {
		return nil, err
	}
	if t.killed, err = m.Int64Counter("reef.enemies.killed",
		metric.WithDescription("Enemies killed")); err != nil {
		return nil, err
	}
	if t.escaped, err = m.Int64Counter("reef.enemies.escaped",
		metric.WithDescription("Enemies that left the screen")); err != nil {
		return nil, err
	}
	if t.coins, err = m.Int64Counter("reef.coins.earned",
		metric.WithDescription("Coins credited from kills")); err != nil {
		return nil, err
	}
	if t.waves, err = m.Int64Counter("reef.waves.cleared",
		metric.WithDescription("Waves cleared")); err != nil {
		return nil, err
	}
	if t.purchases, err = m.Int64Counter("reef.shop.purchases",
		metric.WithDescription("Shop items bought")); err != nil {
		return nil, err
	}
	return t, nil
}

// Subscribe hooks the tracker into every event type.
func (t *Tracker) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(t, event.AllTypes...)
}

func (t *Tracker) OnEvent(e event.Event) {
	ctx := context.Background()
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Type {
	case event.WaveStarted:
		t.wave = Stats{}
	case event.EnemySpawned, event.BossSpawned:
		t.bump(func(s *Stats) { s.Spawned++ })
		t.spawned.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(e.Type))))
	case event.MinionsSpawned:
		if data, ok := e.Data.(event.MinionsSpawnedData); ok {
			t.bump(func(s *Stats) { s.Spawned += data.Count })
			t.spawned.Add(ctx, int64(data.Count), metric.WithAttributes(attribute.String("type", string(e.Type))))
		}
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		t.bump(func(s *Stats) {
			s.Killed++
			s.Coins += data.Reward
			if data.Cause == event.CauseProjectile {
				s.ShotsHit++
			}
		})
		attrs := metric.WithAttributes(attribute.String("kind", string(data.Kind)), attribute.String("cause", string(data.Cause)))
		t.killed.Add(ctx, 1, attrs)
		t.coins.Add(ctx, int64(data.Reward), attrs)
	case event.EnemyEscaped:
		t.bump(func(s *Stats) { s.Escaped++ })
		t.escaped.Add(ctx, 1)
	case event.ActorFired:
		t.bump(func(s *Stats) { s.Fired++ })
	case event.ActorHit:
		t.bump(func(s *Stats) { s.ActorHits++ })
	case event.ItemPurchased:
		t.bump(func(s *Stats) { s.Purchases++ })
		if data, ok := e.Data.(event.ItemPurchasedData); ok {
			t.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("item", data.ItemID)))
		}
	case event.WaveEnded:
		t.total.Waves++
		t.waves.Add(ctx, 1)
		log.Info().
			Int("spawned", t.wave.Spawned).
			Int("killed", t.wave.Killed).
			Int("escaped", t.wave.Escaped).
			Int("coins", t.wave.Coins).
			Msg("Wave summary")
	case event.GameOver:
		log.Info().
			Int("waves", t.total.Waves).
			Int("killed", t.total.Killed).
			Int("coins", t.total.Coins).
			Int("fired", t.total.Fired).
			Msg("Run summary")
	}
}

func (t *Tracker) bump(f func(*Stats)) {
	f(&t.wave)
	f(&t.total)
}

// Wave returns the counters since the last WaveStarted.
func (t *Tracker) Wave() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wave
}

// Total returns the counters for the run.
func (t *Tracker) Total() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Reset clears every counter for a new run.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wave = Stats{}
	t.total = Stats{}
}
