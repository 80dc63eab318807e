package obj

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// Camera frames a viewport over the world, centered on a target and kept
// inside the world bounds.
type Camera struct {
	PosX float64
	PosY float64

	viewW float64
	viewH float64
	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH}
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// View returns the world-space rectangle currently framed.
func (c *Camera) View() common.Rect {
	return common.Rect{X: c.PosX, Y: c.PosY, Width: c.viewW, Height: c.viewH}
}

// Follow moves the view so target sits in its center, then clamps the view
// to the world bounds.
func (c *Camera) Follow(target *Transform) {
	if target == nil {
		return
	}
	tx := target.CenterX() - c.viewW/2
	ty := target.CenterY() - c.viewH/2
	if c.smooth > 0 {
		tx = common.Lerp(c.PosX, tx, c.smooth)
		ty = common.Lerp(c.PosY, ty, c.smooth)
	}
	c.PosX = clampAxis(tx, c.viewW, c.worldW)
	c.PosY = clampAxis(ty, c.viewH, c.worldH)
}

// clampAxis keeps [pos, pos+view] inside [0, world]. A world narrower than
// the view pins the view to the origin.
func clampAxis(pos, view, world float64) float64 {
	if world <= 0 {
		return pos
	}
	return math.Max(0, math.Min(pos, world-view))
}
