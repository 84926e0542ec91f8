// internal/economy/wallet.go
package economy

import (
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/event"
)

// Wallet holds the coin balance. The balance never goes negative.
type Wallet struct {
	coins int
}

func NewWallet() *Wallet {
	return &Wallet{}
}

// Balance returns the current coin count.
func (w *Wallet) Balance() int { return w.coins }

// Credit adds amount coins; non-positive amounts are ignored.
func (w *Wallet) Credit(amount int) {
	if amount <= 0 {
		return
	}
	w.coins += amount
}

// Debit removes amount coins if the balance covers it.
func (w *Wallet) Debit(amount int) bool {
	if amount < 0 || amount > w.coins {
		return false
	}
	w.coins -= amount
	return true
}

// Reset empties the wallet for a new run.
func (w *Wallet) Reset() { w.coins = 0 }

// OnEvent credits the reward of every killed enemy.
func (w *Wallet) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}
	w.Credit(data.Reward)
	log.Debug().Int("reward", data.Reward).Int("coins", w.coins).Str("cause", string(data.Cause)).Msg("Coins credited")
}
