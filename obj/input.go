package obj

// Key is a raw key code from the embedding input layer.
type Key int

// Action is a named intent a key can drive.
type Action uint8

const (
	ActionLeft Action = iota + 1
	ActionRight
	ActionJump
	ActionRun
	ActionCrouch
	ActionShoot
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionRun:
		return "run"
	case ActionCrouch:
		return "crouch"
	case ActionShoot:
		return "shoot"
	default:
		return "none"
	}
}

// KeyMap binds key codes to actions. Several keys may share an action.
type KeyMap map[Key]Action

// Input holds which intents are currently held for one controllable entity.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Run    bool
	Crouch bool
	Shoot  bool

	keys KeyMap
	held map[Key]bool
}

func NewInput(keys KeyMap) *Input {
	return &Input{keys: keys}
}

// KeyboardEvent records the key as held or released and sets the mapped flag
// to whether any key bound to that action is still held. It never toggles and
// never touches other flags; unmapped keys are ignored.
func (i *Input) KeyboardEvent(key Key, pressed bool) {
	if i == nil {
		return
	}
	action, ok := i.keys[key]
	if !ok {
		return
	}
	if pressed {
		if i.held == nil {
			i.held = make(map[Key]bool)
		}
		i.held[key] = true
	} else {
		delete(i.held, key)
	}
	i.Set(action, i.anyHeld(action))
}

func (i *Input) anyHeld(action Action) bool {
	for k := range i.held {
		if i.keys[k] == action {
			return true
		}
	}
	return false
}

// Set writes the flag for action directly.
func (i *Input) Set(action Action, held bool) {
	switch action {
	case ActionLeft:
		i.Left = held
	case ActionRight:
		i.Right = held
	case ActionJump:
		i.Jump = held
	case ActionRun:
		i.Run = held
	case ActionCrouch:
		i.Crouch = held
	case ActionShoot:
		i.Shoot = held
	}
}

// Held reports the flag for action.
func (i *Input) Held(action Action) bool {
	switch action {
	case ActionLeft:
		return i.Left
	case ActionRight:
		return i.Right
	case ActionJump:
		return i.Jump
	case ActionRun:
		return i.Run
	case ActionCrouch:
		return i.Crouch
	case ActionShoot:
		return i.Shoot
	default:
		return false
	}
}

// Reset releases every intent, e.g. when control passes to another player.
func (i *Input) Reset() {
	if i == nil {
		return
	}
	keys := i.keys
	*i = Input{keys: keys}
}
