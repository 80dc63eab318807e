package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardEventIsLevelSet(t *testing.T) {
	keys := KeyMap{1: ActionLeft, 2: ActionLeft, 3: ActionJump, 4: ActionRun}
	in := NewInput(keys)

	in.KeyboardEvent(1, true)
	in.KeyboardEvent(1, true)
	assert.True(t, in.Left, "repeated presses never toggle")
	assert.False(t, in.Jump)
	assert.False(t, in.Run)

	in.KeyboardEvent(2, true)
	assert.True(t, in.Left)
	in.KeyboardEvent(2, false)
	assert.True(t, in.Left, "key 1 is still held")
	in.KeyboardEvent(1, false)
	assert.False(t, in.Left, "released once no bound key is held")
	in.KeyboardEvent(1, false)
	assert.False(t, in.Left)

	in.KeyboardEvent(3, true)
	in.KeyboardEvent(4, true)
	in.KeyboardEvent(3, false)
	assert.False(t, in.Jump)
	assert.True(t, in.Run)
}

func TestKeyboardEventIgnoresUnmappedKeys(t *testing.T) {
	in := NewInput(KeyMap{1: ActionRight})
	in.Right = true

	in.KeyboardEvent(99, false)
	in.KeyboardEvent(-1, true)
	assert.Equal(t, Input{Right: true, keys: in.keys}, *in)
}

func TestInputReset(t *testing.T) {
	in := NewInput(testKeys)
	for _, k := range []Key{keyLeft, keyRight, keyJump, keyRun, keyCrouch} {
		in.KeyboardEvent(k, true)
	}
	in.Set(ActionShoot, true)
	for _, a := range []Action{ActionLeft, ActionRight, ActionJump, ActionRun, ActionCrouch, ActionShoot} {
		assert.True(t, in.Held(a), a.String())
	}

	in.Reset()
	for _, a := range []Action{ActionLeft, ActionRight, ActionJump, ActionRun, ActionCrouch, ActionShoot} {
		assert.False(t, in.Held(a), a.String())
	}

	in.KeyboardEvent(keyJump, true)
	assert.True(t, in.Jump, "reset keeps the key bindings")
	in.KeyboardEvent(keyLeft, true)
	in.KeyboardEvent(keyLeft, false)
	assert.False(t, in.Left, "reset forgets previously held keys")
}

func TestNilInputIsSafe(t *testing.T) {
	var in *Input
	assert.NotPanics(t, func() {
		in.KeyboardEvent(1, true)
		in.Reset()
	})
}
