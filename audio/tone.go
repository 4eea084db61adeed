package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the tone shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is a finite oscillator with a short linear fade at both ends to
// avoid clicks.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	wave   Wave
	volume float64
	total  int
	fade   int
	pos    int
}

// NewTone creates a tone of the given length. The fade is 5ms or a tenth
// of the tone, whichever is shorter.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, wave Wave, volume float64) *Tone {
	total := sr.N(d)
	return &Tone{
		sr:     sr,
		freq:   freq,
		wave:   wave,
		volume: volume,
		total:  total,
		fade:   min(sr.N(5*time.Millisecond), total/10),
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr)
		v := math.Sin(phase)
		if t.wave == WaveSquare {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= t.volume * t.envelope()

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}
	if t.pos < t.fade {
		return float64(t.pos) / float64(t.fade)
	}
	if rest := t.total - t.pos; rest < t.fade {
		return float64(rest) / float64(t.fade)
	}
	return 1
}

func (t *Tone) Err() error {
	return nil
}

// Len returns the tone length in samples.
func (t *Tone) Len() int {
	return t.total
}
