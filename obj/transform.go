package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Transform is an axis-aligned box in world pixels. The effective extent is
// Size scaled by Scale; Position is the top-left corner.
type Transform struct {
	pos      cp.Vector
	size     cp.Vector
	scale    cp.Vector
	rotation float64
	flipX    bool
	flipY    bool
}

func NewTransform(x, y, w, h float64) *Transform {
	t := &Transform{
		pos:   cp.Vector{X: x, Y: y},
		scale: cp.Vector{X: 1, Y: 1},
	}
	t.SetSize(w, h)
	return t
}

func (t *Transform) X() float64 { return t.pos.X }
func (t *Transform) Y() float64 { return t.pos.Y }

// W and H return the scaled extent.
func (t *Transform) W() float64 { return t.size.X * t.scale.X }
func (t *Transform) H() float64 { return t.size.Y * t.scale.Y }

func (t *Transform) Right() float64 { return t.pos.X + t.W() }
func (t *Transform) Bottom() float64 { return t.pos.Y + t.H() }
func (t *Transform) CenterX() float64 { return t.pos.X + t.W()/2 }
func (t *Transform) CenterY() float64 { return t.pos.Y + t.H()/2 }

func (t *Transform) Position() cp.Vector { return t.pos }
func (t *Transform) Size() cp.Vector { return t.size }
func (t *Transform) Scale() cp.Vector { return t.scale }
func (t *Transform) Rotation() float64 { return t.rotation }
func (t *Transform) IsFlipX() bool { return t.flipX }
func (t *Transform) IsFlipY() bool { return t.flipY }

func (t *Transform) SetPosition(x, y float64) {
	t.pos = cp.Vector{X: x, Y: y}
}

func (t *Transform) SetPositionX(x float64) { t.pos.X = x }
func (t *Transform) SetPositionY(y float64) { t.pos.Y = y }

func (t *Transform) Translate(dx, dy float64) {
	t.pos = t.pos.Add(cp.Vector{X: dx, Y: dy})
}

// SetSize sets the unscaled size. Negative values are treated as zero.
func (t *Transform) SetSize(w, h float64) {
	t.size = cp.Vector{X: max(w, 0), Y: max(h, 0)}
}

// SetScale sets the scale factors. Negative factors are treated as zero;
// mirroring is expressed through the flip flags instead.
func (t *Transform) SetScale(sx, sy float64) {
	t.scale = cp.Vector{X: max(sx, 0), Y: max(sy, 0)}
}

func (t *Transform) Rotate(r float64) { t.rotation = r }
func (t *Transform) SetFlipX(v bool) { t.flipX = v }
func (t *Transform) SetFlipY(v bool) { t.flipY = v }

// Empty reports whether the box has no area.
func (t *Transform) Empty() bool { return t.W() <= 0 || t.H() <= 0 }

func (t *Transform) Rect() common.Rect {
	return common.Rect{X: t.pos.X, Y: t.pos.Y, Width: t.W(), Height: t.H()}
}

// BB returns the box as a chipmunk bounding box. World y grows downward, so
// the BB's "bottom" field holds the top edge; the overlap math is symmetric.
func (t *Transform) BB() cp.BB {
	return cp.BB{L: t.pos.X, B: t.pos.Y, R: t.Right(), T: t.Bottom()}
}
