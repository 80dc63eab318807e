package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproach(t *testing.T) {
	cases := []struct {
		name            string
		v, target, step float64
		want            float64
	}{
		{"down", 10, 0, 3, 7},
		{"up", -10, 0, 3, -7},
		{"no_overshoot_down", 2, 0, 3, 0},
		{"no_overshoot_up", -2, 0, 3, 0},
		{"at_target", 0, 0, 3, 0},
		{"negative_step", 10, 0, -3, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Approach(c.v, c.target, c.step))
		})
	}
}

func TestClampSignLerp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))

	assert.Equal(t, 1.0, Sign(0.001))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))

	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.True(t, AlmostZero(0.05, 0.1))
	assert.False(t, AlmostZero(-0.2, 0.1))
}

func TestRectOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}), "touching is not intersecting")
	assert.Equal(t, 25.0, a.OverlapArea(Rect{X: 5, Y: 5, Width: 10, Height: 10}))
	assert.Equal(t, 0.0, a.OverlapArea(Rect{X: 10, Y: 0, Width: 10, Height: 10}))
	assert.Equal(t, 100.0, a.OverlapArea(Rect{X: -5, Y: -5, Width: 20, Height: 20}))

	assert.True(t, Rect{Width: 0, Height: 3}.Empty())
	assert.Equal(t, 10.0, a.Right())
	assert.Equal(t, 10.0, a.Bottom())
}
