package td

import (
	"math"
	"time"
)

// finishTolerance absorbs the rounding of float frame deltas, in periods.
// Ten steps of 0.1 s sum to 0.9999999999999999 and still finish once.
const finishTolerance = 1e-9

// Timer is a repeating timer. It sums frame deltas in seconds and finishes
// whenever floor(total / period) grows, so no tick size loses time.
type Timer struct {
	period        time.Duration
	total         float64
	finished      int
	timesFinished int
}

func NewRepeatingTimer(period time.Duration) Timer {
	return Timer{period: period}
}

// Tick advances the timer by dt seconds. A tick spanning several periods
// still reports a single JustFinished edge; TimesFinishedThisTick has the
// full count.
func (t *Timer) Tick(dt float64) {
	t.timesFinished = 0
	if t.period <= 0 || dt <= 0 {
		return
	}
	t.total += dt
	n := int(math.Floor(t.total/t.period.Seconds() + finishTolerance))
	if n > t.finished {
		t.timesFinished = n - t.finished
		t.finished = n
	}
}

// JustFinished reports whether the last Tick crossed the end of a period.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Elapsed is the time since the last period edge, to the nearest nanosecond.
func (t *Timer) Elapsed() time.Duration {
	rest := t.total - float64(t.finished)*t.period.Seconds()
	return max(0, Seconds(rest))
}

func (t *Timer) Period() time.Duration {
	return t.period
}

// Seconds converts a frame delta in seconds to a Duration, rounding to the
// nearest nanosecond.
func Seconds(dt float64) time.Duration {
	return time.Duration(math.Round(dt * float64(time.Second)))
}

// SpawnTimer paces the enemy spawner.
type SpawnTimer struct {
	Timer
}
