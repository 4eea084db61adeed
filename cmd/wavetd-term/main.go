package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/wavetd/audio"
	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/td"
	"github.com/plus3/wavetd/termhost"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	tick := flag.Duration("tick", time.Second/30, "Simulation tick")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// the terminal is the display, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.LstdFlags)

	game, err := td.New(cfg, td.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise screen: %v", err)
	}

	if cfg.Sound {
		cues := audio.NewCues(logger)
		cues.Init()
		cues.Attach(game.Events())
		defer cues.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := termhost.New(screen, game, logger)
	err = host.Run(ctx, *tick)
	screen.Fini()
	if err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
