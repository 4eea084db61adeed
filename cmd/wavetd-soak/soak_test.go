package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/ecs"
	"github.com/plus3/wavetd/td"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	for _, d := range []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond} {
		s.Add(d)
	}
	s.Finalize()
	assert.EqualValues(t, 3, s.Count)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestSyntheticInput(t *testing.T) {
	s := &syntheticInput{width: 800, height: 600, clickEvery: 10, scrollEvery: 4}

	in := s.next(0)
	assert.True(t, in.PrimaryJustPressed)
	assert.True(t, in.CursorValid)
	assert.True(t, in.Right)
	require.Len(t, in.Scroll, 1)
	assert.Equal(t, 1.0, in.Scroll[0].Y)

	in = s.next(4)
	assert.False(t, in.PrimaryJustPressed)
	require.Len(t, in.Scroll, 1)
	assert.Equal(t, -1.0, in.Scroll[0].Y)

	assert.False(t, s.next(70).CursorValid)
	assert.True(t, s.next(150).Up)
}

func TestSoakRunReport(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 800, 600
	cfg.Spawn.Seed = 1

	game, err := td.New(cfg, td.Quiet())
	require.NoError(t, err)

	report := &Report{FrameTime: 100 * time.Millisecond, SpawnPeriod: cfg.Spawn.Period, Seed: 1}
	countEvents(game.Events(), report)

	input := &syntheticInput{width: 800, height: 600, clickEvery: 10}
	for range 100 {
		require.NoError(t, game.Step(report.FrameTime.Seconds(), input.next(report.Frames)))
		report.Frames++
	}
	report.SimulatedTime = time.Duration(report.Frames) * report.FrameTime
	report.Systems = game.Scheduler().GetStats().Systems

	assert.EqualValues(t, 10, report.ExpectedSpawns())
	assert.Equal(t, 10, report.Spawned)
	assert.Equal(t, 9, report.TowersPlaced)
	assert.Equal(t, 1, report.MissedClicks)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	text := out.String()
	assert.Contains(t, text, "**Enemies Spawned:** 10 (expected 10)")
	assert.Contains(t, text, "**Towers Placed:** 9")
	assert.Contains(t, text, "| Spawner | 100 |")
	assert.Contains(t, text, "**Seed:** 1")
}

func TestReportSystems(t *testing.T) {
	r := &Report{Systems: []ecs.SystemStats{{Name: "Mover", ExecutionCount: 3}}}
	var out bytes.Buffer
	require.NoError(t, r.Generate(&out))
	assert.Contains(t, out.String(), "| Mover | 3 |")
	assert.Contains(t, out.String(), "**Seed:** random")
}
