package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/obj"
)

// Gamepad buttons share the key space above every keyboard key so a single
// KeyMap can bind both.
const gamepadKeyBase = 1 << 16

// PadKey returns the key code a standard gamepad button is reported as.
func PadKey(b ebiten.StandardGamepadButton) obj.Key {
	return obj.Key(gamepadKeyBase + int(b))
}

func key(k ebiten.Key) obj.Key { return obj.Key(k) }

// PlayerKeys binds WASD-style keys, the arrow keys and the first gamepad.
var PlayerKeys = obj.KeyMap{
	key(ebiten.KeyA):          obj.ActionLeft,
	key(ebiten.KeyArrowLeft):  obj.ActionLeft,
	key(ebiten.KeyD):          obj.ActionRight,
	key(ebiten.KeyArrowRight): obj.ActionRight,
	key(ebiten.KeySpace):      obj.ActionJump,
	key(ebiten.KeyArrowUp):    obj.ActionJump,
	key(ebiten.KeyShiftLeft):  obj.ActionRun,
	key(ebiten.KeyS):          obj.ActionCrouch,
	key(ebiten.KeyArrowDown):  obj.ActionCrouch,
	key(ebiten.KeyX):          obj.ActionShoot,

	PadKey(ebiten.StandardGamepadButtonLeftLeft):    obj.ActionLeft,
	PadKey(ebiten.StandardGamepadButtonLeftRight):   obj.ActionRight,
	PadKey(ebiten.StandardGamepadButtonLeftBottom):  obj.ActionCrouch,
	PadKey(ebiten.StandardGamepadButtonRightBottom): obj.ActionJump,
	PadKey(ebiten.StandardGamepadButtonRightLeft):   obj.ActionRun,
	PadKey(ebiten.StandardGamepadButtonRightRight):  obj.ActionShoot,
}

// Tables returns one key table per local player. Only the active player
// receives key events, so every player shares the same layout.
func Tables(n int) []obj.KeyMap {
	out := make([]obj.KeyMap, max(n, 1))
	for i := range out {
		out[i] = PlayerKeys
	}
	return out
}
