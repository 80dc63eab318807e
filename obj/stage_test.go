package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageRespawnBoundary(t *testing.T) {
	const viewportH = 224
	s := NewStage(viewportH)
	p := NewPlayer(0, testPlayerSpec(32, 40), testKeys, s.Events)
	s.AddPlayer(p)
	line := s.RespawnLine()
	require.Equal(t, float64(viewportH+100), line)

	p.Transform().SetPosition(60, line-1)
	s.Step(testDT)
	assert.Greater(t, p.Transform().Y(), line-1, "just above the line keeps falling")
	assert.Empty(t, s.Events.Drain())

	for range 10 {
		s.Step(testDT)
	}
	assert.Equal(t, 32.0, p.Transform().X())
	assert.Less(t, p.Transform().Y(), line)
	assert.False(t, p.Body().OnGround)
	assert.Contains(t, eventKinds(s.Events.Drain()), EventRespawned)
}

func TestStageRespawnZeroesFallSpeed(t *testing.T) {
	s := NewStage(100)
	p := NewPlayer(0, testPlayerSpec(0, 0), testKeys, s.Events)
	s.AddPlayer(p)

	p.Transform().SetPosition(0, s.RespawnLine()+50)
	p.Body().Velocity.Y = 250
	s.Step(testDT)

	assert.Equal(t, 0.0, p.Transform().Y())
	assert.Equal(t, 0.0, p.Body().Velocity.Y)
	assert.False(t, p.Body().OnGround)
}

func TestStageHeadBumpBreaksBlock(t *testing.T) {
	block := NewBrick(BrickBlock, 0, 60, 16, 16)
	s, p := newGroundedStage(t, 0)
	s.AddBrick(block)
	s.Events.Drain()

	s.HandleKey(keyJump, true)
	var kinds []EventKind
	for range 10 {
		s.Step(testDT)
		kinds = append(kinds, eventKinds(s.Events.Drain())...)
		if block.Destroyed() {
			break
		}
	}

	require.True(t, block.Destroyed())
	assert.Equal(t, []EventKind{EventJumpStarted, EventBlockDestroyed}, kinds)
	assert.Empty(t, s.Bricks())
	assert.Equal(t, block.Transform().Bottom(), p.Transform().Y())
	assert.False(t, p.Body().CanJump)
}

func TestStageCoinBrickPaysOnce(t *testing.T) {
	coin := NewBrick(BrickCoin, 0, 60, 16, 16)
	s, _ := newGroundedStage(t, 0)
	s.AddBrick(coin)
	s.Events.Drain()

	collected := 0
	for range 3 {
		s.HandleKey(keyJump, true)
		for range 40 {
			s.Step(testDT)
			for _, e := range s.Events.Drain() {
				if e.Kind == EventCoinCollected {
					collected++
				}
			}
		}
		s.HandleKey(keyJump, false)
		for range 60 {
			s.Step(testDT)
		}
	}

	assert.Equal(t, 1, collected)
	assert.Equal(t, BrickGround, coin.Kind)
	assert.False(t, coin.Destroyed())
	assert.Len(t, s.Bricks(), 1)
}

func TestStageEnemyTurnsAtWalls(t *testing.T) {
	s := NewStage(1000)
	s.AddStatic(NewTransform(0, floorY, 400, 20))
	s.AddStatic(NewTransform(200, 0, 20, floorY))
	e := NewEnemy("goomba", 170, floorY-16, nil)
	s.AddEnemy(e)

	turned := false
	for range 120 {
		s.Step(testDT)
		if e.Direction() == DirLeft {
			turned = true
			break
		}
	}
	require.True(t, turned)
	assert.Equal(t, 184.0, e.Transform().X())
	assert.True(t, e.Body().OnGround)

	for range 30 {
		s.Step(testDT)
	}
	assert.Less(t, e.Transform().X(), 184.0)
	assert.Negative(t, e.Body().Velocity.X)
}

func TestStageDropsFallenEnemies(t *testing.T) {
	s := NewStage(100)
	e := NewEnemy("goomba", 0, s.RespawnLine()-1, nil)
	s.AddEnemy(e)

	for range 10 {
		s.Step(testDT)
	}
	assert.Empty(t, s.Enemies())
	assert.False(t, e.Alive())
}

func TestStagePlayersAreSolidToEachOther(t *testing.T) {
	s := NewStage(1000)
	s.AddStatic(NewTransform(-100, floorY, 400, 20))
	a := NewPlayer(0, testPlayerSpec(0, floorY-16), testKeys, s.Events)
	b := NewPlayer(1, testPlayerSpec(40, floorY-16), testKeys, s.Events)
	s.AddPlayer(a)
	s.AddPlayer(b)

	s.HandleKey(keyRight, true)
	for range 90 {
		s.Step(testDT)
	}
	assert.LessOrEqual(t, a.Transform().Right(), b.Transform().X()+contactSlop)
	assert.Equal(t, StatePush, a.State())
}

func TestStageResolvesBoxReachedBySnap(t *testing.T) {
	s := NewStage(1000)
	floor := NewTransform(-100, floorY, 400, 20)
	ledge := NewTransform(14, 60, 50, 27)
	s.AddStatic(floor)
	s.AddStatic(ledge)
	p := NewPlayer(0, testPlayerSpec(0, floorY-10), testKeys, s.Events)
	s.AddPlayer(p)
	require.Zero(t, p.Transform().Rect().OverlapArea(ledge.Rect()))

	s.Step(testDT)
	assert.Equal(t, floorY-16.0, p.Transform().Y(), "snapped onto the floor")
	assert.Equal(t, ledge.X()-16, p.Transform().X(), "then out of the ledge it was pushed into")
	assert.Zero(t, p.Transform().Rect().OverlapArea(ledge.Rect()))
	assert.True(t, p.Body().OnGround)
}

func TestStageHeldKeySurvivesSiblingRelease(t *testing.T) {
	s := NewStage(1000)
	s.AddStatic(NewTransform(-1000, floorY, 3000, 20))
	p := NewPlayer(0, testPlayerSpec(0, floorY-16), KeyMap{100: ActionLeft, 101: ActionLeft}, s.Events)
	s.AddPlayer(p)
	s.Step(testDT)

	s.HandleKey(101, true)
	s.HandleKey(100, true)
	s.HandleKey(100, false)
	stepN(s, 30)

	assert.True(t, p.Input().Left)
	assert.Less(t, p.Body().Velocity.X, 0.0)
	assert.Equal(t, StateWalk, p.State())

	s.HandleKey(101, false)
	assert.False(t, p.Input().Left)
}

func TestStageSwitchPlayer(t *testing.T) {
	s := NewStage(1000)
	assert.Nil(t, s.Active())
	assert.Nil(t, s.SwitchPlayer())

	a := NewPlayer(0, nil, testKeys, s.Events)
	b := NewPlayer(1, nil, testKeys, s.Events)
	s.AddPlayer(a)
	s.AddPlayer(b)
	require.Same(t, a, s.Active())

	s.HandleKey(keyRight, true)
	s.HandleKey(keyJump, true)
	assert.True(t, a.Input().Right)
	assert.False(t, b.Input().Right)

	require.Same(t, b, s.SwitchPlayer())
	assert.False(t, a.Input().Right, "switching releases held keys")
	assert.False(t, a.Input().Jump)

	s.HandleKey(keyLeft, true)
	assert.True(t, b.Input().Left)
	assert.False(t, a.Input().Left)

	require.Same(t, a, s.SwitchPlayer())
	assert.False(t, b.Input().Left)
}

func TestStageIgnoresEmptyStatics(t *testing.T) {
	s := NewStage(100)
	s.AddStatic(nil)
	s.AddStatic(NewTransform(0, 0, 0, 10))
	s.AddStatic(NewTransform(0, 0, 10, 10))
	assert.Len(t, s.Statics(), 1)
}
