package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/obj"
)

// Handler receives one press or release.
type Handler func(k obj.Key, pressed bool)

// Poller turns ebiten's per-tick key state into press/release events.
type Poller struct {
	keys []ebiten.Key
	pads []ebiten.GamepadID
}

// Poll reports the keys and gamepad buttons that changed since the last
// tick. Releases are reported before presses.
func (p *Poller) Poll(h Handler) {
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		h(obj.Key(k), false)
	}
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		h(obj.Key(k), true)
	}

	p.pads = ebiten.AppendGamepadIDs(p.pads[:0])
	if len(p.pads) == 0 {
		return
	}
	id := p.pads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		switch {
		case inpututil.IsStandardGamepadButtonJustReleased(id, b):
			h(PadKey(b), false)
		case inpututil.IsStandardGamepadButtonJustPressed(id, b):
			h(PadKey(b), true)
		}
	}
}

// JustPressed reports a keyboard key press this tick. Used for keys outside
// any player's table, like pause.
func JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}
