package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	v, ok := Vec2{3, 4}.Normalize()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, 0.8, v.Y, 1e-9)

	_, ok = Vec2{}.Normalize()
	assert.False(t, ok, "zero vector has no direction")
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
}

func TestRectIntersects(t *testing.T) {
	a := RectAround(Vec2{100, 100}, 20, 20)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", RectAround(Vec2{110, 110}, 20, 20), true},
		{"contained", RectAround(Vec2{100, 100}, 4, 4), true},
		{"touching edge", RectAround(Vec2{120, 100}, 20, 20), false},
		{"apart", RectAround(Vec2{200, 200}, 20, 20), false},
		{"empty", Rect{X: 100, Y: 100}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(a))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := RectAround(Vec2{50, 40}, 20, 10)
	assert.Equal(t, 40.0, r.Left())
	assert.Equal(t, 60.0, r.Right())
	assert.Equal(t, 35.0, r.Top())
	assert.Equal(t, 45.0, r.Bottom())
	assert.Equal(t, Vec2{50, 40}, r.Center())
	assert.True(t, r.Contains(Vec2{60, 45}))
	assert.False(t, r.Contains(Vec2{61, 45}))
}
