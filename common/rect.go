package common

// Rect is a plain axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64 { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports a strictly positive-area overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// OverlapArea returns the area shared by both rects, or 0.
func (r Rect) OverlapArea(other Rect) float64 {
	w := min(r.Right(), other.Right()) - max(r.X, other.X)
	h := min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
