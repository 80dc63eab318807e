package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sfx"
)

type Options struct {
	Level   string
	Debug   bool
	Players int
	Mute    bool
}

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	stage   *obj.Stage
	camera  *obj.Camera
	poller  input.Poller
	bank    *sfx.Bank
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	playerSpec  *prefabs.PlayerSpec
	enemySpec   *prefabs.EnemySpec
	palette     *palette
	playerAnims []*component.Animation
	enemyAnims  map[*obj.Enemy]*component.Animation
}

func NewGame(opts Options) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	if err := playerSpec.Validate(obj.ClipNames()...); err != nil {
		return nil, err
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}

	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	stage, err := obj.BuildStage(lvl, obj.StageConfig{
		ViewportHeight: common.ViewportHeight,
		Player:         playerSpec,
		Enemy:          enemySpec,
		Keys:           input.Tables(opts.Players),
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", opts.Level, err)
	}

	camera := obj.NewCamera(common.ViewportWidth, common.ViewportHeight)
	camera.SetWorldBounds(stage.Bounds())
	camera.SetSmooth(0.2)

	g := &Game{
		debug:      opts.Debug,
		stage:      stage,
		camera:     camera,
		playerSpec: playerSpec,
		enemySpec:  enemySpec,
		palette:    newPalette(playerSpec, enemySpec),
	}
	for range stage.Players() {
		g.playerAnims = append(g.playerAnims, component.NewAnimation(playerSpec.Animation, true))
	}
	g.enemyAnims = make(map[*obj.Enemy]*component.Animation, len(stage.Enemies()))
	for _, e := range stage.Enemies() {
		a := component.NewAnimation(enemySpec.Animation, true)
		a.Play("walk")
		g.enemyAnims[e] = a
	}
	g.bank = sfx.NewBank(audio.NewContext(sfx.SampleRate), playerSpec.Audio)
	g.bank.SetMuted(opts.Mute)
	g.pauseUI = NewPauseUI(g)

	if opts.Debug {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	log.Printf("loaded level %s: %d statics, %d bricks, %d enemies, %d players",
		opts.Level, len(stage.Statics()), len(stage.Bricks()), len(stage.Enemies()), len(stage.Players()))
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close prefab watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if input.JustPressed(ebiten.KeyEnter) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.frames++

	if input.JustPressed(ebiten.KeyF1) {
		p := g.stage.SwitchPlayer()
		if g.debug && p != nil {
			log.Printf("control switched to player %d", p.Index())
		}
	}
	g.poller.Poll(g.stage.HandleKey)
	g.reloadPrefabs()

	g.stage.Step(common.FixedDelta)

	events := g.stage.Events.Drain()
	if g.debug {
		for _, e := range events {
			log.Printf("event %s from %d at (%.1f, %.1f)", e.Kind, e.Source, e.X, e.Y)
		}
	}
	g.bank.Play(events)

	g.animate(common.FixedDelta)
	if p := g.stage.Active(); p != nil {
		g.camera.Follow(p.Transform())
	}
	return nil
}

// animate keeps each animation on the clip of its entity's state.
func (g *Game) animate(dt float64) {
	for i, p := range g.stage.Players() {
		a := g.playerAnims[i]
		a.Play(p.Clip())
		a.Update(dt)
	}
	for e, a := range g.enemyAnims {
		if !e.Alive() {
			delete(g.enemyAnims, e)
			continue
		}
		a.Update(dt)
	}
}

// setPaused releases all held keys on both edges so nothing pressed or
// released while paused sticks afterwards.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.stage.ResetInputs()
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		switch name {
		case "player.yaml":
			spec, err := prefabs.LoadPlayerSpec()
			if err == nil {
				err = spec.Validate(obj.ClipNames()...)
			}
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			g.playerSpec = spec
			for _, p := range g.stage.Players() {
				p.Apply(spec)
			}
			g.bank.Load(spec.Audio)
			for _, a := range g.playerAnims {
				a.SetClips(spec.Animation)
			}
		case "enemy.yaml":
			spec, err := prefabs.LoadEnemySpec()
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			g.enemySpec = spec
			for _, e := range g.stage.Enemies() {
				e.Apply(spec)
			}
			for _, a := range g.enemyAnims {
				a.SetClips(spec.Animation)
				a.Play("walk")
			}
		default:
			continue
		}
		g.palette = newPalette(g.playerSpec, g.enemySpec)
		log.Printf("reloaded %s", name)
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.debug {
		g.drawDebug(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ViewportWidth, common.ViewportHeight
}
