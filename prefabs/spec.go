package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BodySpec holds the kinematic tuning of a physics body. Velocities are in
// world pixels per second, accelerations in pixels per second squared.
type BodySpec struct {
	Gravity         float64 `yaml:"gravity"`
	Mass            float64 `yaml:"mass"`
	Acceleration    float64 `yaml:"acceleration"`
	Friction        float64 `yaml:"friction"`
	Deceleration    float64 `yaml:"deceleration"`
	SkidFactor      float64 `yaml:"skid_factor"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	RunSpeed        float64 `yaml:"run_speed"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	JumpPower       float64 `yaml:"jump_power"`
	JumpMaxDuration float64 `yaml:"jump_max_duration"`
}

// Validate rejects tunings that would break the body invariants.
func (s BodySpec) Validate() error {
	switch {
	case s.Mass <= 0:
		return fmt.Errorf("%w: mass must be positive, got %g", ErrInvalidSpec, s.Mass)
	case s.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative, got %g", ErrInvalidSpec, s.Gravity)
	case s.WalkSpeed <= 0:
		return fmt.Errorf("%w: walk_speed must be positive, got %g", ErrInvalidSpec, s.WalkSpeed)
	case s.RunSpeed < s.WalkSpeed:
		return fmt.Errorf("%w: run_speed %g is below walk_speed %g", ErrInvalidSpec, s.RunSpeed, s.WalkSpeed)
	case s.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: max_fall_speed must be positive, got %g", ErrInvalidSpec, s.MaxFallSpeed)
	case s.JumpPower > s.MaxFallSpeed:
		return fmt.Errorf("%w: jump_power %g exceeds max_fall_speed %g, which caps vertical speed", ErrInvalidSpec, s.JumpPower, s.MaxFallSpeed)
	case s.SkidFactor < 0 || s.SkidFactor > 1:
		return fmt.Errorf("%w: skid_factor must be in [0,1], got %g", ErrInvalidSpec, s.SkidFactor)
	case s.Acceleration < 0 || s.Deceleration < 0 || s.Friction < 0:
		return fmt.Errorf("%w: acceleration, deceleration and friction must not be negative", ErrInvalidSpec)
	case s.JumpPower > 0 && s.JumpMaxDuration <= 0:
		return fmt.Errorf("%w: jump_max_duration must be positive when jump_power is set", ErrInvalidSpec)
	}
	return nil
}

// DefaultBodySpec mirrors prefabs/player.yaml so code that runs without the
// prefab files still gets a playable tuning.
func DefaultBodySpec() BodySpec {
	return BodySpec{
		Gravity:         1400,
		Mass:            1,
		Acceleration:    400,
		Friction:        1.5,
		Deceleration:    500,
		SkidFactor:      0.85,
		WalkSpeed:       90,
		RunSpeed:        150,
		MaxFallSpeed:    400,
		JumpPower:       320,
		JumpMaxDuration: 0.3,
	}
}

// ClipSpec describes how a named animation clip is presented. Color is a
// colornames key used by the debug renderer.
type ClipSpec struct {
	Color    string  `yaml:"color"`
	Frames   int     `yaml:"frames"`
	Interval float64 `yaml:"interval"`
}

type AnimationSpec struct {
	Clips map[string]ClipSpec `yaml:"clips"`
}

type AudioSpec struct {
	Event     string  `yaml:"event"`
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
}

type PlayerSpec struct {
	Name        string        `yaml:"name"`
	IdleEpsilon float64       `yaml:"idle_epsilon"`
	Transform   TransformSpec `yaml:"transform"`
	Collider    ColliderSpec  `yaml:"collider"`
	Body        BodySpec      `yaml:"body"`
	Animation   AnimationSpec `yaml:"animation"`
	Audio       []AudioSpec   `yaml:"audio"`
}

// Validate checks the body tuning and that every required clip is mapped.
func (s *PlayerSpec) Validate(requiredClips ...string) error {
	if s == nil {
		return fmt.Errorf("%w: nil player spec", ErrInvalidSpec)
	}
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("%w: collider must have area, got %gx%g", ErrInvalidSpec, s.Collider.Width, s.Collider.Height)
	}
	if err := s.Body.Validate(); err != nil {
		return fmt.Errorf("player %s: %w", s.Name, err)
	}
	for _, name := range requiredClips {
		clip, ok := s.Animation.Clips[name]
		if !ok {
			return fmt.Errorf("%w: player %s has no %q clip", ErrInvalidSpec, s.Name, name)
		}
		if clip.Frames <= 0 {
			return fmt.Errorf("%w: clip %q needs at least one frame", ErrInvalidSpec, name)
		}
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name      string        `yaml:"name"`
	Collider  ColliderSpec  `yaml:"collider"`
	Body      BodySpec      `yaml:"body"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Body.Validate(); err != nil {
		return nil, fmt.Errorf("enemy %s: %w", spec.Name, err)
	}
	return &spec, nil
}
