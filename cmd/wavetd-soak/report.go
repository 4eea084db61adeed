package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/wavetd/ecs"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	FrameTime   time.Duration
	Seed        uint64
	SpawnPeriod time.Duration

	// Results
	Frames         int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Systems        []ecs.SystemStats
	Spawned        int
	Despawned      int
	TowersPlaced   int
	MissedClicks   int
	EnemiesAlive   int
	PeakEnemies    int
	EntitiesAlive  int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running frame timing figures so a long run holds no samples.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	Total time.Duration
}

func (s *Stats) Add(sample time.Duration) {
	if s.Count == 0 || sample < s.Min {
		s.Min = sample
	}
	if sample > s.Max {
		s.Max = sample
	}
	s.Count++
	s.Total += sample
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

// ExpectedSpawns is the number of spawns the simulated time allows.
func (r *Report) ExpectedSpawns() int64 {
	if r.SpawnPeriod <= 0 {
		return 0
	}
	return int64(r.SimulatedTime / r.SpawnPeriod)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Frame Time:** {{.FrameTime}}
- **Spawn Period:** {{.SpawnPeriod}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}random{{end}}

## Gameplay
- **Frames:** {{.Frames}}
- **Simulated Time:** {{.SimulatedTime}}
- **Enemies Spawned:** {{.Spawned}} (expected {{.ExpectedSpawns}})
- **Enemies Despawned:** {{.Despawned}}
- **Enemies Alive:** {{.EnemiesAlive}} (peak {{.PeakEnemies}})
- **Towers Placed:** {{.TowersPlaced}}
- **Missed Clicks:** {{.MissedClicks}}
- **Entities Alive:** {{.EntitiesAlive}}

## Performance Results
- **Total Run Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
