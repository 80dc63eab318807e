package obj

import (
	"cmp"
	"slices"

	"github.com/milk9111/platformer/common"
)

// Stage owns everything in a running level and steps it one frame at a
// time. Within a frame every entity integrates before any collision is
// resolved, and every collision is resolved before player states are
// derived.
type Stage struct {
	Events *EventQueue

	statics []*Transform
	bricks  []*Brick
	enemies []*Enemy
	players []*Player
	active  int

	viewportH float64
	width     float64
	height    float64

	candidates []candidate
}

// candidate is one box a mover may collide with during a frame.
type candidate struct {
	box   *Transform
	brick *Brick
	enemy *Enemy
	area  float64
}

// NewStage returns an empty stage. viewportH sets the respawn boundary.
func NewStage(viewportH float64) *Stage {
	return &Stage{
		Events:    &EventQueue{},
		viewportH: viewportH,
	}
}

func (s *Stage) AddStatic(t *Transform) {
	if t == nil || t.Empty() {
		return
	}
	s.statics = append(s.statics, t)
}

func (s *Stage) AddBrick(b *Brick) { s.bricks = append(s.bricks, b) }
func (s *Stage) AddEnemy(e *Enemy) { s.enemies = append(s.enemies, e) }

// AddPlayer attaches p to the stage. The player must share the stage's
// event queue for its events to be seen.
func (s *Stage) AddPlayer(p *Player) { s.players = append(s.players, p) }

func (s *Stage) SetBounds(w, h float64) {
	s.width = w
	s.height = h
}

func (s *Stage) Bounds() (float64, float64) { return s.width, s.height }
func (s *Stage) Statics() []*Transform { return s.statics }
func (s *Stage) Bricks() []*Brick { return s.bricks }
func (s *Stage) Enemies() []*Enemy { return s.enemies }
func (s *Stage) Players() []*Player { return s.players }

// RespawnLine is the y below which players are sent back to spawn.
func (s *Stage) RespawnLine() float64 { return s.viewportH + common.RespawnMargin }

// Active returns the player currently receiving keyboard input, or nil.
func (s *Stage) Active() *Player {
	if len(s.players) == 0 {
		return nil
	}
	return s.players[s.active]
}

// SwitchPlayer hands control to the next player. All inputs are cleared so
// no key stays stuck on the player losing control.
func (s *Stage) SwitchPlayer() *Player {
	if len(s.players) == 0 {
		return nil
	}
	s.ResetInputs()
	s.active = (s.active + 1) % len(s.players)
	return s.players[s.active]
}

// ResetInputs releases every key on every player.
func (s *Stage) ResetInputs() {
	for _, p := range s.players {
		p.ResetInput()
	}
}

// HandleKey routes a key event to the active player.
func (s *Stage) HandleKey(k Key, pressed bool) {
	if p := s.Active(); p != nil {
		p.HandleKey(k, pressed)
	}
}

// Step advances the stage by dt seconds.
func (s *Stage) Step(dt float64) {
	for _, e := range s.enemies {
		e.Update(dt)
	}
	for _, p := range s.players {
		p.Update(dt)
	}

	for _, e := range s.enemies {
		s.collideEnemy(e)
	}
	for _, p := range s.players {
		s.collidePlayer(p)
	}

	for _, p := range s.players {
		p.OnPhysics()
	}

	line := s.RespawnLine()
	for _, p := range s.players {
		p.RespawnIfOverflow(line)
	}
	for _, e := range s.enemies {
		if e.Transform().Y() > line {
			e.Kill()
		}
	}
	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return !e.Alive() })
	s.bricks = slices.DeleteFunc(s.bricks, (*Brick).Destroyed)
}

func (s *Stage) collideEnemy(e *Enemy) {
	if !e.Alive() {
		return
	}
	self := e.Transform()
	s.gather(self, func(c candidate) bool { return c.enemy != e })
	for _, c := range s.candidates {
		e.CollideWith(c.box)
	}
}

func (s *Stage) collidePlayer(p *Player) {
	self := p.Transform()
	s.gather(self, nil)
	for _, other := range s.players {
		if other == p {
			continue
		}
		s.consider(self, candidate{box: other.Transform()})
	}
	s.sortCandidates()

	for _, c := range s.candidates {
		side, ok := p.CollideWith(c.box)
		if !ok || side != SideTop || c.brick == nil {
			continue
		}
		if kind, hit := c.brick.Hit(); hit {
			t := c.brick.Transform()
			s.Events.Push(Event{Kind: kind, Source: p.Index(), X: t.CenterX(), Y: t.CenterY()})
		}
	}
}

// gather collects the statics, live bricks and live enemies, ordered by
// current overlap with self so the box a mover rests on most is resolved
// first. Boxes that do not overlap yet stay in the list since an earlier snap
// may push self into them. keep filters candidates when non-nil.
func (s *Stage) gather(self *Transform, keep func(candidate) bool) {
	s.candidates = s.candidates[:0]
	add := func(c candidate) {
		if keep == nil || keep(c) {
			s.consider(self, c)
		}
	}
	for _, t := range s.statics {
		add(candidate{box: t})
	}
	for _, b := range s.bricks {
		if !b.Destroyed() {
			add(candidate{box: b.Transform(), brick: b})
		}
	}
	for _, e := range s.enemies {
		if e.Alive() {
			add(candidate{box: e.Transform(), enemy: e})
		}
	}
	s.sortCandidates()
}

func (s *Stage) consider(self *Transform, c candidate) {
	if c.box == self {
		return
	}
	c.area = self.Rect().OverlapArea(c.box.Rect())
	s.candidates = append(s.candidates, c)
}

func (s *Stage) sortCandidates() {
	slices.SortStableFunc(s.candidates, func(a, b candidate) int {
		return cmp.Compare(b.area, a.area)
	})
}
