// internal/app/game.go
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/economy"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/input"
	"go-reef-defense/internal/interfaces"
	"go-reef-defense/internal/system"
	"go-reef-defense/internal/telemetry"
	"go-reef-defense/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Shop            *economy.Shop
	Telemetry       *telemetry.Tracker
	Settings        config.Settings

	Spawner            *system.Spawner
	WaveSystem         *system.WaveSystem
	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	BossSystem         *system.BossSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
}

// NewGame wires every system around a fresh session. The game starts on the
// menu; call StartRun to play.
func NewGame(settings config.Settings) (*Game, error) {
	tracker, err := telemetry.NewTracker()
	if err != nil {
		return nil, fmt.Errorf("create telemetry: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	tuning := settings.Game

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Shop:            economy.NewShop(),
		Telemetry:       tracker,
		Settings:        settings,
	}
	g.Spawner = system.NewSpawner(ecs, rng, tuning)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g.Spawner, tuning)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, g.ProjectileSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher, rng, tuning)
	g.BossSystem = system.NewBossSystem(ecs, eventDispatcher, g.Spawner)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, tuning)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, tuning)

	// The wallet must see kills before anything that reports the balance.
	eventDispatcher.Subscribe(event.EnemyKilled, ecs.Wallet)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	tracker.Subscribe(eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.WaveStarted, event.WaveEnded, event.GameOver, event.ItemPurchased)

	log.Info().Int64("seed", rng.Seed()).Msg("Game created")
	return g, nil
}

// Subscribe registers an extra listener (audio, front ends) for every event.
func (g *Game) Subscribe(l event.Listener) {
	g.EventDispatcher.SubscribeAll(l, event.AllTypes...)
}

// Update runs one frame. Outside a running, unpaused wave it does nothing.
func (g *Game) Update(in input.State) {
	state := g.ECS.GameState
	if state.Phase != component.PhasePlaying || state.Paused {
		return
	}

	g.ECS.Clock += config.FrameStep

	g.PlayerSystem.Update(in)
	g.WaveSystem.Update()
	g.VisualEffectSystem.Update()
	g.MovementSystem.Update()
	g.BossSystem.Update()
	g.ProjectileSystem.Update()
	g.CombatSystem.Resolve()

	if g.CombatSystem.CheckGameOver() {
		return
	}
	g.WaveSystem.CheckCompletion()
}

func (g *Game) StartRun()                { g.StateSystem.StartRun() }
func (g *Game) ContinueToNextWave() bool { return g.StateSystem.ContinueToNextWave() }
func (g *Game) TogglePause() bool        { return g.StateSystem.TogglePause() }
func (g *Game) ReturnToMenu()            { g.StateSystem.ReturnToMenu() }
func (g *Game) Phase() component.Phase   { return g.StateSystem.Current() }
func (g *Game) World() *entity.ECS       { return g.ECS }

// Owned reports whether a one-time item was bought this run.
func (g *Game) Owned(itemID string) bool { return g.Shop.Owned(itemID) }

// BossWave reports whether the current wave is a boss wave.
func (g *Game) BossWave() bool { return g.WaveSystem.IsBossWave(g.ECS.Wave.Number) }

// Purchase buys itemID with the wallet's coins for the current actors and
// returns the amount paid, 0 when nothing was bought.
func (g *Game) Purchase(itemID string) int {
	targets := make(map[defs.ActorKind]economy.Target, len(g.ECS.Actors))
	for _, id := range g.ECS.ActorIDs() {
		targets[g.ECS.Actors[id].Kind] = economy.Target{
			Health: g.ECS.Healths[id],
			Weapon: g.ECS.Weapons[id],
		}
	}

	paid := g.Shop.Buy(g.ECS.Wallet, itemID, targets)
	if paid > 0 {
		g.EventDispatcher.Dispatch(event.Event{Type: event.ItemPurchased, Data: event.ItemPurchasedData{
			ItemID: itemID,
			Price:  paid,
			Coins:  g.ECS.Wallet.Balance(),
		}})
	}
	return paid
}

// ResetRun clears the session and places both actors at their start.
func (g *Game) ResetRun() {
	g.ECS.Reset()
	g.Shop.Reset()
	g.Telemetry.Reset()
	for _, kind := range defs.ActorOrder {
		g.Spawner.SpawnActor(kind)
	}
}

// StartWave begins the wave the session is currently on.
func (g *Game) StartWave() {
	g.WaveSystem.BeginWave(g.ECS.Wave.Number)
}

func (g *Game) ClearProjectiles() {
	g.ECS.ClearProjectiles()
}

var _ interfaces.Game = (*Game)(nil)

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok && data.Boss {
			log.Info().Int("wave", data.Number).Msg("Boss wave")
		}
	case event.WaveEnded:
		log.Info().Int("coins", l.game.ECS.Wallet.Balance()).Msg("Intermission")
	case event.GameOver:
		log.Info().
			Int("wave", l.game.ECS.Wave.Number).
			Int("spawned", l.game.ECS.Wave.TotalSpawned).
			Int("coins", l.game.ECS.Wallet.Balance()).
			Msg("Run ended")
	case event.ItemPurchased:
		if data, ok := e.Data.(event.ItemPurchasedData); ok {
			log.Info().Str("item", data.ItemID).Int("coins", data.Coins).Msg("Shop")
		}
	}
}
