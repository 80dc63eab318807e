package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// Body integrates the kinematics of one entity and owns the entity's
// Transform. Force.X is the movement intent (-1 left, 0 none, +1 right),
// not a newtonian force. World y grows downward, so gravity is positive and
// jumping drives Velocity.Y negative.
type Body struct {
	Transform *Transform

	Velocity    cp.Vector
	MaxVelocity cp.Vector
	Force       cp.Vector

	OnGround     bool
	CanJump      bool
	JumpDuration float64

	JumpMaxDuration float64
	JumpPower       float64
	Gravity         float64
	Mass            float64
	Acceleration    float64
	Friction        float64
	Deceleration    float64
	SkidFactor      float64
	WalkSpeed       float64
	RunSpeed        float64

	jumpRequested bool
	jumpStarted   bool
	skidded       bool
}

func NewBody(t *Transform, spec prefabs.BodySpec) *Body {
	if t == nil {
		t = NewTransform(0, 0, 0, 0)
	}
	b := &Body{Transform: t}
	b.Apply(spec)
	return b
}

// Apply copies tuning from spec, keeping the current motion state. The
// walk preset becomes the active horizontal limit.
func (b *Body) Apply(spec prefabs.BodySpec) {
	b.Gravity = spec.Gravity
	b.Mass = spec.Mass
	b.Acceleration = spec.Acceleration
	b.Friction = spec.Friction
	b.Deceleration = spec.Deceleration
	b.SkidFactor = spec.SkidFactor
	b.WalkSpeed = spec.WalkSpeed
	b.RunSpeed = spec.RunSpeed
	b.JumpPower = spec.JumpPower
	b.JumpMaxDuration = spec.JumpMaxDuration
	b.MaxVelocity = cp.Vector{X: spec.WalkSpeed, Y: spec.MaxFallSpeed}
	b.clampVelocity()
}

// SetForce sets the movement intent. x is clamped to [-1,1]; y keeps only
// its sign.
func (b *Body) SetForce(x, y float64) {
	b.Force = cp.Vector{X: common.Clamp(x, -1, 1), Y: common.Sign(y)}
}

func (b *Body) Walk() { b.MaxVelocity.X = b.WalkSpeed }
func (b *Body) Run() { b.MaxVelocity.X = b.RunSpeed }

// Jump requests the jump impulse for the next Update. It must be called on
// every step the button is held.
func (b *Body) Jump() { b.jumpRequested = true }

// ReleaseJump ends the current jump hold.
func (b *Body) ReleaseJump() {
	b.jumpRequested = false
	b.CanJump = false
}

// JumpStarted reports whether the last Update launched a jump from the ground.
func (b *Body) JumpStarted() bool { return b.jumpStarted }

// Skidded reports whether the last Update damped a direction reversal.
func (b *Body) Skidded() bool { return b.skidded }

func (b *Body) VelXAlmostZero(eps float64) bool {
	return common.AlmostZero(b.Velocity.X, eps)
}

// Update advances velocity by dt seconds. The phases run in a fixed order:
// gravity, horizontal movement, jump. OnGround is cleared at the end and has
// to be re-asserted by a bottom collision before the next step.
func (b *Body) Update(dt float64) {
	b.applyGravity(dt)
	b.applyMovement(dt)
	b.applyJump(dt)
	b.clampVelocity()
	b.OnGround = false
}

// Integrate moves the transform by velocity*dt.
func (b *Body) Integrate(dt float64) {
	b.Transform.Translate(b.Velocity.X*dt, b.Velocity.Y*dt)
}

func (b *Body) applyGravity(dt float64) {
	b.Velocity.Y += b.Gravity * b.Mass * dt
	b.Velocity.Y = common.Clamp(b.Velocity.Y, -b.MaxVelocity.Y, b.MaxVelocity.Y)
}

func (b *Body) applyMovement(dt float64) {
	b.skidded = false
	fx := b.Force.X
	if fx == 0 {
		b.Velocity.X = common.Approach(b.Velocity.X, 0, b.Deceleration*dt)
		return
	}

	// reversing while still carrying speed: bleed it off before pushing back
	if b.Velocity.X != 0 && common.Sign(fx) != common.Sign(b.Velocity.X) {
		b.Velocity.X *= b.SkidFactor
		b.skidded = true
	}
	b.Velocity.X += fx * b.Acceleration * dt
	b.Velocity.X -= b.Friction * b.Velocity.X * dt
	b.Velocity.X = common.Clamp(b.Velocity.X, -b.MaxVelocity.X, b.MaxVelocity.X)
}

func (b *Body) applyJump(dt float64) {
	b.jumpStarted = false
	requested := b.jumpRequested
	b.jumpRequested = false

	if !requested {
		b.CanJump = false
		return
	}

	if b.OnGround {
		if b.JumpPower <= 0 {
			return
		}
		b.JumpDuration = 0
		b.CanJump = true
		b.Velocity.Y = -b.JumpPower
		b.jumpStarted = true
		return
	}

	if !b.CanJump {
		return
	}
	if b.JumpDuration >= b.JumpMaxDuration || b.Velocity.Y > 0 {
		b.CanJump = false
		return
	}

	// the hold impulse decays linearly to zero over JumpMaxDuration
	sustain := -b.JumpPower * (1 - b.JumpDuration/b.JumpMaxDuration)
	b.Velocity.Y = math.Min(b.Velocity.Y, sustain)
	b.JumpDuration += dt
}

func (b *Body) clampVelocity() {
	b.Velocity.X = common.Clamp(b.Velocity.X, -b.MaxVelocity.X, b.MaxVelocity.X)
	b.Velocity.Y = common.Clamp(b.Velocity.Y, -b.MaxVelocity.Y, b.MaxVelocity.Y)
}

// CollideWith resolves the body's transform against a static box. The
// transform is snapped flush to the reported side and the velocity on that
// axis is zeroed. A bottom hit is the only way OnGround becomes true; a top
// hit ends the current jump hold.
func (b *Body) CollideWith(other *Transform) (Side, bool) {
	side, ok := Resolve(b.Transform, other)
	if !ok {
		return side, false
	}

	t := b.Transform
	switch side {
	case SideLeft:
		t.SetPositionX(other.Right())
		b.Velocity.X = 0
	case SideRight:
		t.SetPositionX(other.X() - t.W())
		b.Velocity.X = 0
	case SideTop:
		t.SetPositionY(other.Bottom())
		b.Velocity.Y = 0
		b.CanJump = false
	case SideBottom:
		t.SetPositionY(other.Y() - t.H())
		b.Velocity.Y = 0
		b.OnGround = true
	}
	return side, true
}
