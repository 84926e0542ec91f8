package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	seen []EventType
}

func (r *recorder) OnEvent(e Event) { r.seen = append(r.seen, e.Type) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	first := &orderListener{name: "first", out: &order}
	second := &orderListener{name: "second", out: &order}
	d.Subscribe(EnemyKilled, first)
	d.Subscribe(EnemyKilled, second)

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Equal(t, []string{"first", "second"}, order)
}

type orderListener struct {
	name string
	out  *[]string
}

func (o *orderListener) OnEvent(Event) { *o.out = append(*o.out, o.name) }

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, WaveStarted, WaveEnded)
	d.Unsubscribe(WaveStarted, r)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: WaveEnded})
	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, []EventType{WaveEnded}, r.seen)
}
