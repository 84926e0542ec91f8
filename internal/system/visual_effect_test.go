package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/config"
	"go-reef-defense/pkg/geom"
)

func TestBlinkTogglesAndEnds(t *testing.T) {
	w := newWorld(t)
	id := w.placeEnemy(geom.Vec2{X: 600, Y: 300}, 20, w.turtle)
	ApplyDamage(w.ecs, w.dispatcher, id, 5, w.turtle)
	e := w.ecs.Enemies[id]
	assert.False(t, e.Visible)

	w.advance(config.FrameStep)
	w.effects.Update()
	assert.True(t, e.Visible)
	w.advance(config.FrameStep)
	w.effects.Update()
	assert.False(t, e.Visible)
	assert.Equal(t, component.EnemyDamaged, e.State)

	w.ecs.Clock = e.BlinkStartedAt + 500*time.Millisecond
	w.effects.Update()
	assert.True(t, e.Visible)
	assert.Equal(t, component.EnemyMoving, e.State)
}

func TestHitFlashExpires(t *testing.T) {
	w := newWorld(t)
	w.ecs.HitFlashes[w.turtle] = &component.HitFlash{StartedAt: 0, Duration: 100 * time.Millisecond}

	w.advance(50 * time.Millisecond)
	w.effects.Update()
	assert.Contains(t, w.ecs.HitFlashes, w.turtle)

	w.advance(50 * time.Millisecond)
	w.effects.Update()
	assert.NotContains(t, w.ecs.HitFlashes, w.turtle)
}
