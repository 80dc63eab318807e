package obj

// Side names the face of the moving box that penetrated the other box.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// contactSlop is the largest penetration still treated as plain contact.
// Snapping a box flush against another can leave an ulp of overlap behind.
const contactSlop = 1e-9

// Penetration holds how deep box a reaches into box b through each of its faces.
type Penetration struct {
	Left, Right, Top, Bottom float64
}

// Min returns the shallowest depth and its side. Ties resolve in the order
// Left, Right, Top, Bottom.
func (p Penetration) Min() (float64, Side) {
	depth, side := p.Left, SideLeft
	if p.Right < depth {
		depth, side = p.Right, SideRight
	}
	if p.Top < depth {
		depth, side = p.Top, SideTop
	}
	if p.Bottom < depth {
		depth, side = p.Bottom, SideBottom
	}
	return depth, side
}

// Depth returns the penetration through the given side.
func (p Penetration) Depth(s Side) float64 {
	switch s {
	case SideLeft:
		return p.Left
	case SideRight:
		return p.Right
	case SideTop:
		return p.Top
	default:
		return p.Bottom
	}
}

// Penetrate computes the four depths of a into b without testing overlap.
func Penetrate(a, b *Transform) Penetration {
	return Penetration{
		Left:   b.Right() - a.X(),
		Right:  a.Right() - b.X(),
		Top:    b.Bottom() - a.Y(),
		Bottom: a.Bottom() - b.Y(),
	}
}

// Resolve tests the moving box a against the static box b and reports the
// side of a to push out through. Boxes without area and boxes that merely
// touch do not collide. The test keeps no contact state between calls.
func Resolve(a, b *Transform) (Side, bool) {
	if a == nil || b == nil || a.Empty() || b.Empty() {
		return 0, false
	}
	if !a.BB().Intersects(b.BB()) {
		return 0, false
	}
	depth, side := Penetrate(a, b).Min()
	if depth <= contactSlop {
		return 0, false
	}
	return side, true
}
