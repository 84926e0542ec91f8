package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/input"
	"go-reef-defense/internal/system"
	"go-reef-defense/internal/types"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := config.DefaultSettings()
	s.Seed = 99
	s.Audio.Enabled = false
	g, err := NewGame(s)
	require.NoError(t, err)
	return g
}

// idle keeps the turtle where it is and fires nothing.
func idle(g *Game) input.State {
	id, _ := g.ECS.ActorByKind(defs.ActorTurtle)
	return input.State{Pointer: g.ECS.Transforms[id].Pos}
}

func killAll(g *Game) {
	for _, id := range g.ECS.EnemyIDs() {
		system.ApplyDamage(g.ECS, g.EventDispatcher, id, 10000, 0)
	}
}

func TestUpdateDoesNothingOnMenu(t *testing.T) {
	g := newTestGame(t)
	g.Update(input.State{})
	assert.Equal(t, time.Duration(0), g.ECS.Clock)
	assert.Equal(t, component.PhaseMenu, g.Phase())
}

func TestStartRunPlacesActors(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()

	assert.Equal(t, component.PhasePlaying, g.Phase())
	require.Len(t, g.ECS.Actors, 2)
	turtle, _ := g.ECS.ActorByKind(defs.ActorTurtle)
	assert.Equal(t, 400.0, g.ECS.Transforms[turtle].Pos.X)
	assert.Equal(t, 3, g.ECS.Healths[turtle].Value)
	assert.Equal(t, 1, g.ECS.Wave.Number)
	assert.Equal(t, 4, g.ECS.Wave.Target)
}

func TestFirstFrameSpawns(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()
	g.Update(idle(g))

	assert.Equal(t, config.FrameStep, g.ECS.Clock)
	assert.Len(t, g.ECS.Enemies, 1)
}

func TestWaveClearGoesToIntermissionAndBack(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()

	for g.ECS.Wave.Spawned < g.ECS.Wave.Target {
		g.Update(idle(g))
		killAll(g)
	}
	g.Update(idle(g))

	assert.Equal(t, component.PhaseIntermission, g.Phase())
	assert.Equal(t, 2, g.ECS.Wave.Number)
	assert.Equal(t, 7, g.ECS.Wave.Target)
	assert.Equal(t, 4, g.ECS.Wallet.Balance())
	assert.Equal(t, 4, g.Telemetry.Wave().Killed)

	clock := g.ECS.Clock
	g.Update(idle(g))
	assert.Equal(t, clock, g.ECS.Clock)

	require.True(t, g.ContinueToNextWave())
	assert.Equal(t, component.PhasePlaying, g.Phase())
	g.Update(idle(g))
	assert.Equal(t, 1, g.ECS.Wave.Spawned)
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()
	g.Update(idle(g))
	require.True(t, g.TogglePause())

	clock := g.ECS.Clock
	g.Update(idle(g))
	assert.Equal(t, clock, g.ECS.Clock)

	g.TogglePause()
	g.Update(idle(g))
	assert.Equal(t, clock+config.FrameStep, g.ECS.Clock)
}

func TestPurchaseUsesWallet(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()

	assert.Equal(t, 0, g.Purchase("turtle_venom"))

	g.ECS.Wallet.Credit(20)
	assert.Equal(t, 15, g.Purchase("turtle_venom"))
	assert.Equal(t, 5, g.ECS.Wallet.Balance())
	assert.Equal(t, 0, g.Purchase("turtle_venom"))

	turtle, _ := g.ECS.ActorByKind(defs.ActorTurtle)
	assert.Equal(t, 200, g.ECS.Weapons[turtle].ShotDamage())
	assert.Equal(t, 1, g.Telemetry.Total().Purchases)
}

func TestGameOverStopsPlay(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()
	crab, _ := g.ECS.ActorByKind(defs.ActorCrab)
	g.ECS.Healths[crab].Value = 0

	g.Update(idle(g))
	assert.Equal(t, component.PhaseGameOver, g.Phase())

	clock := g.ECS.Clock
	g.Update(idle(g))
	assert.Equal(t, clock, g.ECS.Clock)

	g.ReturnToMenu()
	g.ECS.Wallet.Credit(3)
	g.StartRun()
	assert.Equal(t, 0, g.ECS.Wallet.Balance())
	assert.Equal(t, 3, g.ECS.Healths[mustActor(t, g, defs.ActorCrab)].Value)
}

func mustActor(t *testing.T, g *Game, kind defs.ActorKind) types.EntityID {
	t.Helper()
	id, ok := g.ECS.ActorByKind(kind)
	require.True(t, ok)
	return id
}

func TestRewardInvariant(t *testing.T) {
	g := newTestGame(t)
	g.StartRun()

	// Let a few waves play out with enemies dying by shots; the wallet must
	// equal the sum of rewards of killed enemies.
	for frame := 0; frame < 600 && g.Phase() == component.PhasePlaying; frame++ {
		g.Update(idle(g))
		if frame%30 == 0 {
			killAll(g)
		}
	}
	assert.Equal(t, g.Telemetry.Total().Coins, g.ECS.Wallet.Balance())
}
