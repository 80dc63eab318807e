package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stateClips = []string{"idle", "walk", "run", "jump", "crouch", "fall", "skid", "push"}

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	require.NoError(t, spec.Validate(stateClips...))

	assert.Equal(t, "player", spec.Name)
	assert.Equal(t, DefaultBodySpec(), spec.Body, "DefaultBodySpec must mirror player.yaml")
	assert.Equal(t, 16.0, spec.Collider.Width)
	assert.NotEmpty(t, spec.Audio)
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	require.NoError(t, err)
	assert.Equal(t, "goomba", spec.Name)
	assert.Zero(t, spec.Body.JumpPower)
	assert.Contains(t, spec.Animation.Clips, "walk")
}

func TestBodySpecJumpAtFallCap(t *testing.T) {
	s := DefaultBodySpec()
	s.JumpPower = s.MaxFallSpeed
	assert.NoError(t, s.Validate())
}

func TestLoadAcceptsDirPrefix(t *testing.T) {
	plain, err := Load("player.yaml")
	require.NoError(t, err)
	prefixed, err := Load("prefabs/player.yaml")
	require.NoError(t, err)
	assert.Equal(t, plain, prefixed)
	assert.Equal(t, "enemy.yaml", relName("./prefabs/enemy.yaml"))
}

func TestLoadSpecMissing(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("missing.yaml")
	assert.Error(t, err)
}

func TestBodySpecValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BodySpec)
	}{
		{"zero_mass", func(s *BodySpec) { s.Mass = 0 }},
		{"negative_gravity", func(s *BodySpec) { s.Gravity = -1 }},
		{"zero_walk", func(s *BodySpec) { s.WalkSpeed = 0 }},
		{"run_below_walk", func(s *BodySpec) { s.RunSpeed = s.WalkSpeed - 1 }},
		{"zero_fall", func(s *BodySpec) { s.MaxFallSpeed = 0 }},
		{"skid_above_one", func(s *BodySpec) { s.SkidFactor = 1.5 }},
		{"negative_friction", func(s *BodySpec) { s.Friction = -0.1 }},
		{"jump_above_fall_cap", func(s *BodySpec) { s.JumpPower = s.MaxFallSpeed + 1 }},
		{"jump_without_duration", func(s *BodySpec) { s.JumpMaxDuration = 0 }},
	}
	require.NoError(t, DefaultBodySpec().Validate())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := DefaultBodySpec()
			c.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSpec)
		})
	}
}

func TestPlayerSpecValidate(t *testing.T) {
	base := func() *PlayerSpec {
		return &PlayerSpec{
			Name:     "p",
			Collider: ColliderSpec{Width: 16, Height: 16},
			Body:     DefaultBodySpec(),
			Animation: AnimationSpec{Clips: map[string]ClipSpec{
				"idle": {Color: "red", Frames: 1},
				"walk": {Color: "red", Frames: 2, Interval: 0.1},
			}},
		}
	}
	require.NoError(t, base().Validate("idle", "walk"))

	var nilSpec *PlayerSpec
	assert.ErrorIs(t, nilSpec.Validate(), ErrInvalidSpec)

	missing := base()
	assert.ErrorIs(t, missing.Validate("idle", "push"), ErrInvalidSpec)

	noFrames := base()
	noFrames.Animation.Clips["idle"] = ClipSpec{Color: "red"}
	assert.ErrorIs(t, noFrames.Validate("idle"), ErrInvalidSpec)

	flat := base()
	flat.Collider.Height = 0
	assert.ErrorIs(t, flat.Validate(), ErrInvalidSpec)

	badBody := base()
	badBody.Body.Mass = 0
	assert.ErrorIs(t, badBody.Validate(), ErrInvalidSpec)
}
