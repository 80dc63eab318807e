package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
)

const defaultIdleEpsilon = 0.1

// Player is the controllable character. It owns its transform, body and
// input exclusively; the Stage feeds it other boxes through CollideWith.
//
// A frame is driven in three phases: Update integrates input and physics,
// CollideWith is called once per candidate box, and OnPhysics derives the
// discrete state from the corrected physics.
type Player struct {
	index  int
	body   *Body
	input  *Input
	events *EventQueue

	state       PlayerState
	dir         Direction
	spawn       cp.Vector
	idleEpsilon float64

	// groundedAtStart is OnGround as it stood before Update cleared it.
	groundedAtStart bool
	// pushing is set when a push was resolved during the current frame.
	pushing     bool
	wasGrounded bool
}

// NewPlayer builds a player from its prefab at the prefab's spawn point.
// events may be nil.
func NewPlayer(index int, spec *prefabs.PlayerSpec, keys KeyMap, events *EventQueue) *Player {
	if spec == nil {
		spec = &prefabs.PlayerSpec{
			Collider: prefabs.ColliderSpec{Width: 16, Height: 16},
			Body:     prefabs.DefaultBodySpec(),
		}
	}
	t := NewTransform(spec.Transform.X, spec.Transform.Y, spec.Collider.Width, spec.Collider.Height)
	if spec.Transform.ScaleX > 0 && spec.Transform.ScaleY > 0 {
		t.SetScale(spec.Transform.ScaleX, spec.Transform.ScaleY)
	}
	p := &Player{
		index:       index,
		body:        NewBody(t, spec.Body),
		input:       NewInput(keys),
		events:      events,
		state:       StateJump,
		dir:         DirRight,
		spawn:       t.Position(),
		idleEpsilon: spec.IdleEpsilon,
	}
	if p.idleEpsilon <= 0 {
		p.idleEpsilon = defaultIdleEpsilon
	}
	return p
}

// Apply swaps in new tuning without touching the motion state.
func (p *Player) Apply(spec *prefabs.PlayerSpec) {
	if spec == nil {
		return
	}
	p.body.Apply(spec.Body)
	p.body.Transform.SetSize(spec.Collider.Width, spec.Collider.Height)
	if spec.IdleEpsilon > 0 {
		p.idleEpsilon = spec.IdleEpsilon
	}
}

func (p *Player) Index() int { return p.index }
func (p *Player) Transform() *Transform { return p.body.Transform }
func (p *Player) Body() *Body { return p.body }
func (p *Player) Input() *Input { return p.input }
func (p *Player) State() PlayerState { return p.state }
func (p *Player) Direction() Direction { return p.dir }
func (p *Player) Clip() string { return p.state.Clip() }
func (p *Player) FacingFlipped() bool { return p.body.Transform.IsFlipX() }
func (p *Player) Spawn() cp.Vector { return p.spawn }
func (p *Player) SetSpawn(x, y float64) { p.spawn = cp.Vector{X: x, Y: y} }
func (p *Player) HandleKey(k Key, on bool) { p.input.KeyboardEvent(k, on) }
func (p *Player) ResetInput() { p.input.Reset() }

// Update applies the held input and integrates one step of physics.
func (p *Player) Update(dt float64) {
	p.pushing = false
	p.groundedAtStart = p.body.OnGround
	in := p.input

	if in.Crouch && p.body.OnGround {
		p.stop()
		p.state = StateCrouch
	} else {
		if in.Left {
			p.moveLeft()
		}
		if in.Right {
			p.moveRight()
		}
		if !in.Left && !in.Right {
			p.stop()
		}
	}
	p.body.Transform.SetFlipX(p.dir == DirLeft)

	moving := in.Left || in.Right
	if in.Run && moving && p.body.OnGround && !p.state.in(StatePush, StateSkid, StateCrouch) {
		p.body.Run()
		p.state = StateRun
	} else {
		p.body.Walk()
	}

	if in.Jump {
		p.jump()
	} else {
		p.body.ReleaseJump()
	}

	p.body.Update(dt)
	if p.body.JumpStarted() {
		p.emit(EventJumpStarted)
	}
	p.body.Integrate(dt)
}

func (p *Player) moveLeft() {
	p.dir = DirLeft
	p.body.SetForce(-1, 0)
	if p.state.in(StateWalk, StateRun, StateIdle, StateSkid) {
		p.state = StateWalk
		if p.body.Velocity.X > 0 {
			p.state = StateSkid
		}
	}
}

func (p *Player) moveRight() {
	p.dir = DirRight
	p.body.SetForce(1, 0)
	if p.state.in(StateWalk, StateRun, StateIdle, StateSkid) {
		p.state = StateWalk
		if p.body.Velocity.X < 0 {
			p.state = StateSkid
		}
	}
}

func (p *Player) stop() {
	p.body.SetForce(0, 0)
}

// jump always enters the jump state, even mid-air, so the jump clip keeps
// playing while the button is held. Whether it launches is up to the body.
func (p *Player) jump() {
	p.state = StateJump
	p.body.Jump()
}

// CollideWith resolves the player against one box. A horizontal hit on the
// facing side while grounded and still holding toward it becomes a push.
func (p *Player) CollideWith(other *Transform) (Side, bool) {
	side, ok := p.body.CollideWith(other)
	if !ok {
		return side, false
	}
	switch side {
	case SideRight:
		p.horizontalContact(p.input.Right, DirRight)
	case SideLeft:
		p.horizontalContact(p.input.Left, DirLeft)
	}
	return side, true
}

func (p *Player) horizontalContact(holding bool, dir Direction) {
	grounded := p.groundedAtStart || p.body.OnGround
	if !grounded || p.state.in(StateJump, StateFall) {
		return
	}
	if holding && p.dir == dir {
		p.state = StatePush
		p.pushing = true
		return
	}
	p.state = StateIdle
}

// OnPhysics derives the state from the physics outcome of the frame. It must
// run after every CollideWith call of the frame.
func (p *Player) OnPhysics() {
	b := p.body
	switch {
	case b.Velocity.Y > 0 && !b.OnGround:
		p.state = StateFall
	case b.OnGround && (!p.state.in(StateWalk, StateRun, StateSkid, StatePush) ||
		(p.state.in(StateWalk, StateRun, StateSkid) && b.VelXAlmostZero(p.idleEpsilon))):
		p.state = StateIdle
	case b.OnGround && p.state == StatePush && !p.pushing:
		p.state = StateIdle
	}

	if b.OnGround && p.state == StateIdle && p.input.Crouch {
		p.state = StateCrouch
	}

	if b.OnGround && !p.wasGrounded {
		p.emit(EventLanded)
	}
	p.wasGrounded = b.OnGround
}

// RespawnIfOverflow teleports the player back to its spawn point once it has
// fallen below maxY. Reports whether it did.
func (p *Player) RespawnIfOverflow(maxY float64) bool {
	t := p.body.Transform
	if t.Y() <= maxY {
		return false
	}
	t.SetPosition(p.spawn.X, p.spawn.Y)
	p.body.Velocity.Y = 0
	p.body.OnGround = false
	p.wasGrounded = false
	p.emit(EventRespawned)
	return true
}

func (p *Player) emit(kind EventKind) {
	t := p.body.Transform
	p.events.Push(Event{Kind: kind, Source: p.index, X: t.CenterX(), Y: t.CenterY()})
}
