package obj

// PlayerState is the discrete behavior a player is in. Exactly one is
// active at a time; the animation layer picks its clip from it.
type PlayerState uint8

const (
	StateIdle PlayerState = iota
	StateWalk
	StateRun
	StateJump
	StateCrouch
	StateFall
	StateSkid
	StatePush
)

// PlayerStates lists every state, in declaration order.
var PlayerStates = []PlayerState{
	StateIdle, StateWalk, StateRun, StateJump,
	StateCrouch, StateFall, StateSkid, StatePush,
}

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateCrouch:
		return "crouch"
	case StateFall:
		return "fall"
	case StateSkid:
		return "skid"
	case StatePush:
		return "push"
	default:
		return "unknown"
	}
}

// Clip is the animation clip played for the state.
func (s PlayerState) Clip() string { return s.String() }

// ClipNames returns the clip of every state; a player prefab must map all of them.
func ClipNames() []string {
	names := make([]string, 0, len(PlayerStates))
	for _, s := range PlayerStates {
		names = append(names, s.Clip())
	}
	return names
}

func (s PlayerState) in(states ...PlayerState) bool {
	for _, o := range states {
		if s == o {
			return true
		}
	}
	return false
}

// Direction is the way a player faces.
type Direction int8

const (
	DirRight Direction = 1
	DirLeft  Direction = -1
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}
