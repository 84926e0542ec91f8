package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/event"
)

type fakeContext struct {
	resets, waves, clears int
}

func (f *fakeContext) ResetRun()         { f.resets++ }
func (f *fakeContext) StartWave()        { f.waves++ }
func (f *fakeContext) ClearProjectiles() { f.clears++ }

func TestPhaseMachine(t *testing.T) {
	w := newWorld(t)
	ctx := &fakeContext{}
	ss := NewStateSystem(w.ecs, ctx, w.dispatcher)
	w.ecs.GameState.Phase = component.PhaseMenu

	assert.False(t, ss.ContinueToNextWave())

	ss.StartRun()
	assert.Equal(t, component.PhasePlaying, ss.Current())
	assert.Equal(t, 1, ctx.resets)
	assert.Equal(t, 1, ctx.waves)

	assert.True(t, ss.TogglePause())
	assert.False(t, ss.TogglePause())

	w.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: 1}})
	assert.Equal(t, component.PhaseIntermission, ss.Current())
	assert.Equal(t, 1, ctx.clears)
	assert.False(t, ss.TogglePause())

	assert.True(t, ss.ContinueToNextWave())
	assert.Equal(t, component.PhasePlaying, ss.Current())
	assert.Equal(t, 2, ctx.waves)

	w.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	assert.Equal(t, component.PhaseGameOver, ss.Current())

	ss.ReturnToMenu()
	assert.Equal(t, component.PhaseMenu, ss.Current())
}
