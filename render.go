package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// palette resolves prefab clip colors once per (re)load.
type palette struct {
	player map[string]color.Color
	enemy  map[string]color.Color
}

func newPalette(ps *prefabs.PlayerSpec, es *prefabs.EnemySpec) *palette {
	p := &palette{
		player: make(map[string]color.Color),
		enemy:  make(map[string]color.Color),
	}
	if ps != nil {
		for name, clip := range ps.Animation.Clips {
			p.player[name] = namedColor(clip.Color, colornames.Red)
		}
	}
	if es != nil {
		for name, clip := range es.Animation.Clips {
			p.enemy[name] = namedColor(clip.Color, colornames.Brown)
		}
	}
	return p
}

func namedColor(name string, fallback color.Color) color.Color {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return fallback
}

// shade darkens every other animation frame so clips read as motion
// without sprite sheets.
func shade(c color.Color, frame int) color.Color {
	if frame%2 == 0 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r * 3 / 4), G: uint16(g * 3 / 4), B: uint16(b * 3 / 4), A: uint16(a)}
}

func brickColor(k obj.BrickKind) color.Color {
	switch k {
	case obj.BrickBlock:
		return colornames.Peru
	case obj.BrickCoin, obj.BrickMushroom:
		return colornames.Gold
	default:
		return colornames.Saddlebrown
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	for _, t := range g.stage.Statics() {
		g.fillBox(screen, t, colornames.Sienna)
	}
	for _, b := range g.stage.Bricks() {
		g.fillBox(screen, b.Transform(), brickColor(b.Kind))
	}
	for _, e := range g.stage.Enemies() {
		clr, ok := g.palette.enemy["walk"]
		if !ok {
			clr = colornames.Brown
		}
		g.fillBox(screen, e.Transform(), shade(clr, g.enemyAnims[e].Frame()))
		g.drawFacing(screen, e.Transform())
	}
	for i, p := range g.stage.Players() {
		clr, ok := g.palette.player[p.Clip()]
		if !ok {
			clr = colornames.Red
		}
		g.fillBox(screen, p.Transform(), shade(clr, g.playerAnims[i].Frame()))
		g.drawFacing(screen, p.Transform())
	}
}

func (g *Game) fillBox(screen *ebiten.Image, t *obj.Transform, clr color.Color) {
	x := t.X() - g.camera.PosX
	y := t.Y() - g.camera.PosY
	vector.FillRect(screen, float32(x), float32(y), float32(t.W()), float32(t.H()), clr, false)
}

// drawFacing marks the side a box is facing with a small eye.
func (g *Game) drawFacing(screen *ebiten.Image, t *obj.Transform) {
	const eye = 3
	x := t.Right() - eye - 2
	if t.IsFlipX() {
		x = t.X() + 2
	}
	x -= g.camera.PosX
	y := t.Y() + 3 - g.camera.PosY
	vector.FillRect(screen, float32(x), float32(y), eye, eye, colornames.White, false)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	for _, t := range g.stage.Statics() {
		g.strokeBox(screen, t)
	}
	for _, p := range g.stage.Players() {
		g.strokeBox(screen, p.Transform())
	}

	p := g.stage.Active()
	if p == nil {
		return
	}
	b := p.Body()
	msg := fmt.Sprintf("FPS: %.1f  frame %d\nplayer %d  %s\nvel %.1f, %.1f  ground %t\njump %t  %.2fs",
		ebiten.ActualFPS(), g.frames,
		p.Index(), p.State(),
		b.Velocity.X, b.Velocity.Y, b.OnGround,
		b.CanJump, b.JumpDuration)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) strokeBox(screen *ebiten.Image, t *obj.Transform) {
	x := t.X() - g.camera.PosX
	y := t.Y() - g.camera.PosY
	vector.StrokeRect(screen, float32(x), float32(y), float32(t.W()), float32(t.H()), 1, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)
}
