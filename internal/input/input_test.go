package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrabAxis(t *testing.T) {
	dx, dy := State{Left: true, Down: true}.CrabAxis()
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, 1.0, dy)

	dx, dy = State{Left: true, Right: true}.CrabAxis()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
