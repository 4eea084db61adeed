// Package termhost runs the game in a terminal through tcell. Each cell
// stands for an 8x16 pixel block of a virtual window.
package termhost

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/wavetd/event"
	"github.com/plus3/wavetd/td"
	"github.com/plus3/wavetd/ui"
)

// Host drives a td.Game on a tcell screen at a fixed tick.
type Host struct {
	screen tcell.Screen
	game   *td.Game
	logger *log.Logger

	input  *inputCollector
	tree   *ui.Node
	scroll *ui.Scroll
	status string

	towers   int
	spawned  int
	misses   int
	lastTick time.Time
}

// New wraps an initialised screen. The host takes over the game's window
// size; the last row is kept for the status line.
func New(screen tcell.Screen, game *td.Game, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	h := &Host{
		screen: screen,
		game:   game,
		logger: logger,
		tree:   ui.BuildTopBar(ui.NewRegistry()),
		scroll: ui.NewScroll(),
		status: "arrows pan, wheel zooms, click places a tower, q quits",
	}
	h.input = newInputCollector(0, 0)
	h.resize()

	events := game.Events()
	events.Subscribe(event.TowerPlaced, event.ListenerFunc(func(e event.Event) {
		h.towers++
		h.status = fmt.Sprintf("tower placed at (%.0f, %.0f)", e.X, e.Y)
	}))
	events.Subscribe(event.EnemySpawned, event.ListenerFunc(func(event.Event) {
		h.spawned++
	}))
	events.Subscribe(event.PointerUnavailable, event.ListenerFunc(func(e event.Event) {
		h.misses++
		h.status = e.Err.Error()
	}))
	return h
}

func (h *Host) worldSize() (cols, rows int) {
	cols, rows = h.screen.Size()
	return cols, max(0, rows-1)
}

func (h *Host) resize() {
	cols, rows := h.worldSize()
	h.input.resize(cols, rows)
	h.game.Resize(float64(cols*CellWidth), float64(rows*CellHeight))
}

// Handle feeds one terminal event. It reports false when the user quits.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
		return true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyPgDn:
			h.scrollList(CellHeight)
			return true
		case tcell.KeyPgUp:
			h.scrollList(-CellHeight)
			return true
		}
	}
	return h.input.handle(ev)
}

func (h *Host) scrollList(delta float64) {
	cols, rows := h.worldSize()
	layout := ui.Layout(h.tree, float64(cols*CellWidth), float64(rows*CellHeight), cellMeasurer, h.scroll)
	h.scroll.By(layout.Find(ui.ListName), delta)
}

// Tick steps the game by dt with the input gathered since the last tick
// and redraws.
func (h *Host) Tick(dt float64) error {
	if err := h.game.Step(dt, h.input.take()); err != nil {
		return fmt.Errorf("frame failed: %w", err)
	}
	h.Draw()
	return nil
}

func (h *Host) Draw() {
	h.screen.Clear()
	cols, rows := h.worldSize()

	if view, err := h.game.View(); err == nil {
		drawWorld(h.screen, cols, rows, view, h.game.Drawables())
	}

	layout := ui.Layout(h.tree, float64(cols*CellWidth), float64(rows*CellHeight), cellMeasurer, h.scroll)
	drawUI(h.screen, layout)

	enemies := 0
	for range h.game.Enemies() {
		enemies++
	}
	drawStatus(h.screen, rows, cols, fmt.Sprintf(" enemies %d  towers %d  spawned %d  missed %d | %s", enemies, h.towers, h.spawned, h.misses, h.status))
	h.screen.Show()
}

// Run polls events and ticks the game every interval until the user quits,
// ctx ends or a frame fails.
func (h *Host) Run(ctx context.Context, interval time.Duration) error {
	h.screen.EnableMouse()
	defer h.screen.DisableMouse()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// screen finalised
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	h.lastTick = time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-eventChan:
			if !ok || !h.Handle(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(h.lastTick).Seconds()
			h.lastTick = now
			if err := h.Tick(dt); err != nil {
				return err
			}
		}
	}
}
