package obj

import "github.com/milk9111/platformer/prefabs"

// Enemy is a walker that keeps moving in its facing direction and turns
// around whenever it runs into something sideways.
type Enemy struct {
	Name string

	body  *Body
	dir   Direction
	alive bool
}

func NewEnemy(name string, x, y float64, spec *prefabs.EnemySpec) *Enemy {
	var (
		w, h = 16.0, 16.0
		body = prefabs.DefaultBodySpec()
	)
	if spec != nil {
		w, h = spec.Collider.Width, spec.Collider.Height
		body = spec.Body
	}
	e := &Enemy{
		Name:  name,
		body:  NewBody(NewTransform(x, y, w, h), body),
		dir:   DirRight,
		alive: true,
	}
	e.body.SetForce(float64(e.dir), 0)
	return e
}

// Apply swaps in new tuning without touching the motion state.
func (e *Enemy) Apply(spec *prefabs.EnemySpec) {
	if spec == nil {
		return
	}
	e.body.Apply(spec.Body)
	e.body.Transform.SetSize(spec.Collider.Width, spec.Collider.Height)
}

func (e *Enemy) Transform() *Transform { return e.body.Transform }
func (e *Enemy) Body() *Body { return e.body }
func (e *Enemy) Direction() Direction { return e.dir }
func (e *Enemy) Alive() bool { return e.alive }
func (e *Enemy) Kill() { e.alive = false }

func (e *Enemy) Update(dt float64) {
	if !e.alive {
		return
	}
	e.body.SetForce(float64(e.dir), 0)
	e.body.Transform.SetFlipX(e.dir == DirLeft)
	e.body.Update(dt)
	e.body.Integrate(dt)
}

// CollideWith resolves the enemy against a box and turns it around on a
// sideways hit.
func (e *Enemy) CollideWith(other *Transform) (Side, bool) {
	side, ok := e.body.CollideWith(other)
	if !ok {
		return side, false
	}
	switch side {
	case SideRight:
		e.dir = DirLeft
	case SideLeft:
		e.dir = DirRight
	}
	return side, true
}
