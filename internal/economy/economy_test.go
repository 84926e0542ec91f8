package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/event"
)

func newTargets() map[defs.ActorKind]Target {
	return map[defs.ActorKind]Target{
		defs.ActorTurtle: {
			Health: &component.Health{Value: 1, Max: 3},
			Weapon: &component.Weapon{Damage: 100, Multiplier: 1, Cooldown: 300 * time.Millisecond},
		},
		defs.ActorCrab: {
			Health: &component.Health{Value: 2, Max: 3},
			Weapon: &component.Weapon{Damage: 50, Multiplier: 1, Cooldown: 450 * time.Millisecond},
		},
	}
}

func TestWalletNeverNegative(t *testing.T) {
	w := NewWallet()
	w.Credit(3)
	assert.False(t, w.Debit(4))
	assert.Equal(t, 3, w.Balance())
	assert.False(t, w.Debit(-1))
	assert.True(t, w.Debit(3))
	assert.Equal(t, 0, w.Balance())
	w.Credit(-5)
	assert.Equal(t, 0, w.Balance())
}

func TestWalletCreditsKills(t *testing.T) {
	d := event.NewDispatcher()
	w := NewWallet()
	d.Subscribe(event.EnemyKilled, w)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Reward: 1}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Reward: 5}})
	d.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyEscapedData{}})
	assert.Equal(t, 6, w.Balance())
}

func TestPurchaseUnknownAndUnaffordable(t *testing.T) {
	s := NewShop()
	targets := newTargets()

	assert.Equal(t, 0, s.Purchase(100, "golden_anchor", targets))
	assert.Equal(t, 0, s.Purchase(4, "turtle_shell", targets))
	assert.Equal(t, 3, targets[defs.ActorTurtle].Health.Max)
}

func TestPurchaseMaxHealth(t *testing.T) {
	s := NewShop()
	targets := newTargets()

	assert.Equal(t, 5, s.Purchase(5, "turtle_shell", targets))
	assert.Equal(t, 4, targets[defs.ActorTurtle].Health.Max)
	assert.Equal(t, 2, targets[defs.ActorTurtle].Health.Value)
	assert.Equal(t, 3, targets[defs.ActorCrab].Health.Max)

	// Repeatable.
	assert.Equal(t, 5, s.Purchase(5, "turtle_shell", targets))
	assert.Equal(t, 5, targets[defs.ActorTurtle].Health.Max)
}

func TestPurchaseOneTimeChargesOnce(t *testing.T) {
	s := NewShop()
	targets := newTargets()

	require.Equal(t, 15, s.Purchase(100, "crab_pincers", targets))
	assert.Equal(t, 100, targets[defs.ActorCrab].Weapon.ShotDamage())
	assert.True(t, s.Owned("crab_pincers"))

	assert.Equal(t, 0, s.Purchase(100, "crab_pincers", targets))
	assert.Equal(t, 100, targets[defs.ActorCrab].Weapon.ShotDamage())

	s.Reset()
	assert.False(t, s.Owned("crab_pincers"))
}

func TestPurchaseCooldownAndHeal(t *testing.T) {
	s := NewShop()
	targets := newTargets()

	assert.Equal(t, 10, s.Purchase(10, "quick_flippers", targets))
	assert.Equal(t, 225*time.Millisecond, targets[defs.ActorTurtle].Weapon.Cooldown)

	assert.Equal(t, 3, s.Purchase(3, "kelp_wrap", targets))
	assert.Equal(t, 3, targets[defs.ActorTurtle].Health.Value)
	assert.Equal(t, 3, targets[defs.ActorCrab].Health.Value)
}

func TestBuyDebitsWallet(t *testing.T) {
	s := NewShop()
	w := NewWallet()
	w.Credit(7)

	assert.Equal(t, 5, s.Buy(w, "crab_shell", newTargets()))
	assert.Equal(t, 2, w.Balance())
	assert.Equal(t, 0, s.Buy(w, "crab_shell", newTargets()))
	assert.Equal(t, 2, w.Balance())
}
