package obj

// BrickKind selects how a brick reacts to being hit from below.
type BrickKind uint8

const (
	BrickBlock BrickKind = iota
	BrickCoin
	BrickMushroom
	BrickGround
)

func (k BrickKind) String() string {
	switch k {
	case BrickBlock:
		return "block"
	case BrickCoin:
		return "coin"
	case BrickMushroom:
		return "mushroom"
	default:
		return "ground"
	}
}

// Brick is a solid box that can be broken or emptied by a head bump.
type Brick struct {
	Kind BrickKind

	transform *Transform
	destroyed bool
}

func NewBrick(kind BrickKind, x, y, w, h float64) *Brick {
	return &Brick{Kind: kind, transform: NewTransform(x, y, w, h)}
}

func (b *Brick) Transform() *Transform { return b.transform }
func (b *Brick) Destroyed() bool { return b.destroyed }

// Hit reacts to a bump from below and reports the resulting effect, if any.
// Block bricks break; coin and mushroom bricks empty into plain ground.
func (b *Brick) Hit() (EventKind, bool) {
	if b.destroyed {
		return "", false
	}
	switch b.Kind {
	case BrickBlock:
		b.destroyed = true
		return EventBlockDestroyed, true
	case BrickCoin:
		b.Kind = BrickGround
		return EventCoinCollected, true
	case BrickMushroom:
		b.Kind = BrickGround
	}
	return "", false
}
