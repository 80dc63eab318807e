package main

import (
	"testing"

	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateLandsAndRisesWithHold(t *testing.T) {
	spec := &prefabs.PlayerSpec{
		Collider: prefabs.ColliderSpec{Width: 16, Height: 16},
		Body:     prefabs.DefaultBodySpec(),
	}

	tap := simulate(spec, 1, false)
	full := simulate(spec, 19, false)
	require.Positive(t, tap.peak)
	assert.Greater(t, full.peak, tap.peak)
	assert.Greater(t, full.airtime, tap.airtime)
	assert.Less(t, full.airtime, 2.0, "the jump lands")
	assert.Zero(t, full.distance)

	running := simulate(spec, 19, true)
	assert.Greater(t, running.distance, 0.0)
	assert.InDelta(t, full.peak, running.peak, 1e-9)
}
