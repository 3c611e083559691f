package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	level := flag.String("level", "arena.yaml", "level prefab to load")
	script := flag.String("script", "difficulty.tengo", "difficulty script, empty to disable")
	difficulty := flag.Float64("difficulty", 1, "difficulty: 0 easy, 1 normal, 2 hard")
	debug := flag.Bool("debug", false, "draw vision ranges, patrol routes, and boss state")
	flag.Parse()

	game, err := NewGame(*level, *script, *difficulty, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(1280, 520)
	ebiten.SetWindowTitle("echoes of the gods")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
