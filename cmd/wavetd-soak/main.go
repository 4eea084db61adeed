package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/event"
	"github.com/plus3/wavetd/td"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "Wall clock time the soak should run for.")
	frameTime := flag.Duration("frame", time.Second/60, "Simulated time per frame.")
	clickEvery := flag.Int("click-every", 30, "Frames between synthetic clicks, 0 disables them.")
	scrollEvery := flag.Int("scroll-every", 45, "Frames between synthetic wheel ticks, 0 disables them.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log every placed tower.")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting soak run...")

	gameLog := io.Discard
	if *verbose {
		gameLog = os.Stderr
	}
	game, err := td.New(cfg, td.WithLogger(log.New(gameLog, "", log.LstdFlags)))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		FrameTime:      *frameTime,
		Seed:           cfg.Spawn.Seed,
		SpawnPeriod:    cfg.Spawn.Period,
		GCPauseMetrics: *gcPauseMetrics,
	}
	countEvents(game.Events(), report)

	input := &syntheticInput{
		width:       float64(cfg.Window.Width),
		height:      float64(cfg.Window.Height),
		clickEvery:  *clickEvery,
		scrollEvery: *scrollEvery,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := frameTime.Seconds()
	startTime := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			in := input.next(report.Frames)

			updateStart := time.Now()
			if err := game.Step(dt, in); err != nil {
				log.Fatalf("Frame %d failed: %v", report.Frames, err)
			}
			report.UpdateTime.Add(time.Since(updateStart))

			report.Frames++
			alive := 0
			for range game.Enemies() {
				alive++
			}
			report.PeakEnemies = max(report.PeakEnemies, alive)
			report.EnemiesAlive = alive
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.Frames) * *frameTime
	report.UpdateTime.Finalize()
	report.Systems = game.Scheduler().GetStats().Systems
	report.EntitiesAlive = game.World().Len()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func countEvents(d *event.Dispatcher, r *Report) {
	d.Subscribe(event.EnemySpawned, event.ListenerFunc(func(event.Event) { r.Spawned++ }))
	d.Subscribe(event.EnemyDespawned, event.ListenerFunc(func(event.Event) { r.Despawned++ }))
	d.Subscribe(event.TowerPlaced, event.ListenerFunc(func(event.Event) { r.TowersPlaced++ }))
	d.Subscribe(event.PointerUnavailable, event.ListenerFunc(func(event.Event) { r.MissedClicks++ }))
}
