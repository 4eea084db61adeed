// Package audio plays short synthesized cues for game events.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/wavetd/event"
)

const sampleRate = beep.SampleRate(48000)

// Cues listens to game events and plays a sound for the ones the player
// caused. Until Init succeeds every cue is dropped.
type Cues struct {
	mu     sync.Mutex
	logger *log.Logger
	mixer  *beep.Mixer
	sink   func(beep.Streamer)
	subs   []event.Subscription
	events *event.Dispatcher
}

// NewCues creates a silent cue player.
func NewCues(logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.Default()
	}
	return &Cues{
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device. A failure is logged and leaves the player
// silent; the game runs the same either way.
func (c *Cues) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sink != nil {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		c.logger.Printf("[Audio] sound disabled: %v", err)
		return
	}
	speaker.Play(c.mixer)
	c.sink = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

// Attach subscribes to the dispatcher. Calling it again moves the
// subscriptions to the new dispatcher.
func (c *Cues) Attach(d *event.Dispatcher) {
	c.Detach()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = d
	c.subs = []event.Subscription{
		d.Subscribe(event.TowerPlaced, event.ListenerFunc(func(event.Event) {
			c.play(placeCue())
		})),
		d.Subscribe(event.PointerUnavailable, event.ListenerFunc(func(event.Event) {
			c.play(missCue())
		})),
	}
}

// Detach drops all subscriptions.
func (c *Cues) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		c.events.Unsubscribe(sub)
	}
	c.subs = nil
	c.events = nil
}

// Close silences anything still playing.
func (c *Cues) Close() {
	c.Detach()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sink == nil {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	sink := c.sink
	c.mu.Unlock()
	if sink != nil {
		sink(s)
	}
}

// placeCue is a rising two note chirp.
func placeCue() beep.Streamer {
	return beep.Seq(
		NewTone(sampleRate, 660, 60*time.Millisecond, WaveSine, 0.3),
		NewTone(sampleRate, 990, 90*time.Millisecond, WaveSine, 0.3),
	)
}

// missCue is a low buzz.
func missCue() beep.Streamer {
	return beep.Take(sampleRate.N(150*time.Millisecond), NewTone(sampleRate, 110, time.Second, WaveSquare, 0.15))
}
