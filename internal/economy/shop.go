// internal/economy/shop.go
package economy

import (
	"time"

	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/defs"
)

// Target is the part of an actor a shop item can change.
type Target struct {
	Health *component.Health
	Weapon *component.Weapon
}

// Shop applies catalogue items and remembers which one-time items are owned.
type Shop struct {
	owned map[string]bool
}

func NewShop() *Shop {
	return &Shop{owned: make(map[string]bool)}
}

// Owned reports whether a one-time item was already bought this run.
func (s *Shop) Owned(id string) bool { return s.owned[id] }

// Reset forgets owned items for a new run.
func (s *Shop) Reset() { s.owned = make(map[string]bool) }

// Purchase applies item id to its targets when balance covers the price and
// returns the amount to deduct. It returns 0 for unknown, unaffordable or
// already-owned one-time items and leaves the targets untouched.
func (s *Shop) Purchase(balance int, id string, targets map[defs.ActorKind]Target) int {
	item, ok := defs.FindItem(id)
	if !ok {
		log.Warn().Str("item", id).Msg("Unknown shop item")
		return 0
	}
	if item.OneTime && s.owned[id] {
		return 0
	}
	if balance < item.Price {
		return 0
	}

	for _, kind := range item.Targets {
		t, ok := targets[kind]
		if !ok {
			continue
		}
		apply(item, t)
	}
	if item.OneTime {
		s.owned[id] = true
	}
	log.Info().Str("item", id).Int("price", item.Price).Msg("Item purchased")
	return item.Price
}

// Buy runs Purchase against the wallet and debits it.
func (s *Shop) Buy(w *Wallet, id string, targets map[defs.ActorKind]Target) int {
	price := s.Purchase(w.Balance(), id, targets)
	if price > 0 {
		w.Debit(price)
	}
	return price
}

func apply(item defs.ItemDefinition, t Target) {
	switch item.Effect {
	case defs.EffectMaxHealth:
		if t.Health != nil {
			t.Health.Max += int(item.Amount)
			t.Health.Value += int(item.Amount)
		}
	case defs.EffectDamage:
		if t.Weapon != nil {
			t.Weapon.Multiplier *= item.Amount
		}
	case defs.EffectFireRate:
		if t.Weapon != nil {
			t.Weapon.Cooldown = time.Duration(float64(t.Weapon.Cooldown) * item.Amount)
		}
	case defs.EffectHeal:
		if t.Health != nil {
			t.Health.Value = t.Health.Max
		}
	}
}
