package main

import (
	"flag"
	"log"

	"github.com/plus3/wavetd/audio"
	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/ebitenhost"
	"github.com/plus3/wavetd/td"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := log.Default()
	game, err := td.New(cfg, td.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	if cfg.Sound {
		cues := audio.NewCues(logger)
		cues.Init()
		cues.Attach(game.Events())
		defer cues.Close()
	}

	host := ebitenhost.New(game, ebitenhost.Options{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		AssetDir: cfg.AssetDir,
		DebugUI:  cfg.DebugUI,
		Logger:   logger,
	})
	if err := host.Run(); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
