package common

const (
	// ViewportWidth/ViewportHeight are the logical world-space view size.
	ViewportWidth  = 352
	ViewportHeight = 224
	// WindowScale is the integer upscale from viewport to window pixels.
	WindowScale = 3

	// RespawnMargin is how far below the viewport an entity may fall
	// before it is teleported back to its spawn point.
	RespawnMargin = 100

	TileSize = 16

	// TPS is the fixed simulation rate; every tick advances the world by
	// one FixedDelta.
	TPS        = 60
	FixedDelta = 1.0 / TPS
)
