package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/codeventure/config"
	"chosenoffset.com/codeventure/game"
	"chosenoffset.com/codeventure/level"
)

func main() {
	levelFile := flag.String("level", "", "JSON level file to load (default: built-in level)")
	flag.Parse()

	cfg := config.Load()
	if *levelFile != "" {
		cfg.LevelPath = *levelFile
	}

	var lvl *level.Level
	if cfg.LevelPath != "" {
		log.Printf("Loading level: %s", cfg.LevelPath)
		loaded, err := level.Load(cfg.LevelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		lvl = loaded
	} else {
		lvl = level.Default()
	}

	log.Printf("Loaded level: %s (%dx%d, %d gems, %d challenges)",
		lvl.Name, lvl.Cols, lvl.Rows, len(lvl.Gems), len(lvl.Challenges))

	g := game.New(cfg, lvl)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)

	log.Printf("Starting game...")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
