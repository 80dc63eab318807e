package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "1-1.json", "level file, on disk or in levels/")
	players := flag.Int("players", 1, "number of local players (F1 switches control)")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.ViewportWidth*common.WindowScale, common.ViewportHeight*common.WindowScale)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Level:   *levelName,
		Debug:   *debug,
		Players: *players,
		Mute:    *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
