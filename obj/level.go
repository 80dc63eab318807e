package obj

import (
	"fmt"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// Layers whose objects are plain solid geometry.
var solidLayers = []string{"ground", "solid_objects", "pipes"}

// playerSpacing separates players that share one spawn point.
const playerSpacing = 24

// StageConfig describes how a level is populated. One player is created per
// entry of Keys.
type StageConfig struct {
	ViewportHeight float64
	Player         *prefabs.PlayerSpec
	Enemy          *prefabs.EnemySpec
	Keys           []KeyMap
}

// BuildStage turns a parsed level into a ready-to-step Stage.
func BuildStage(lvl *levels.Level, cfg StageConfig) (*Stage, error) {
	if lvl == nil {
		return nil, fmt.Errorf("build stage: %w: nil level", levels.ErrInvalidLevel)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("build stage: %w", err)
	}

	s := NewStage(cfg.ViewportHeight)
	s.SetBounds(lvl.PixelSize())

	for _, o := range lvl.Objects(solidLayers...) {
		s.AddStatic(NewTransform(o.X, o.Y, o.Width, o.Height))
	}
	for _, o := range lvl.Objects("bricks") {
		kind, ok := brickKind(o)
		if !ok {
			s.AddStatic(NewTransform(o.X, o.Y, o.Width, o.Height))
			continue
		}
		s.AddBrick(NewBrick(kind, o.X, o.Y, o.Width, o.Height))
	}

	var spawn *levels.Object
	for _, o := range lvl.Objects() {
		switch objectName(o) {
		case "goomba":
			e := NewEnemy(o.Name, o.X, o.Y, cfg.Enemy)
			s.AddEnemy(e)
		case "spawn":
			spawn = &o
		}
	}

	for i, keys := range cfg.Keys {
		p := NewPlayer(i, cfg.Player, keys, s.Events)
		if spawn != nil {
			p.SetSpawn(spawn.X+float64(i*playerSpacing), spawn.Y)
		} else {
			sp := p.Spawn()
			p.SetSpawn(sp.X+float64(i*playerSpacing), sp.Y)
		}
		sp := p.Spawn()
		p.Transform().SetPosition(sp.X, sp.Y)
		s.AddPlayer(p)
	}
	return s, nil
}

// objectName prefers the Tiled class over the object's name.
func objectName(o levels.Object) string {
	if o.Type != "" {
		return o.Type
	}
	return o.Name
}

func brickKind(o levels.Object) (BrickKind, bool) {
	switch objectName(o) {
	case "brick":
		return BrickBlock, true
	case "coin":
		return BrickCoin, true
	case "mushroom":
		return BrickMushroom, true
	}
	return BrickGround, false
}
