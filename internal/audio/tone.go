package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one synthesized cue: a frequency sweep with attack/release shaping.
type Tone struct {
	Wave     Wave
	FromHz   float64
	ToHz     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

// sweep is a beep.Streamer producing a Tone.
type sweep struct {
	tone     Tone
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newSweep(t Tone, rate beep.SampleRate) *sweep {
	return &sweep{
		tone:    t,
		rate:    rate,
		rng:     rand.New(rand.NewPCG(uint64(t.FromHz), uint64(t.ToHz))),
		total:   rate.N(t.Duration),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.total)
		freq := s.tone.FromHz + (s.tone.ToHz-s.tone.FromHz)*progress

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		val *= s.tone.Gain * s.envelope()
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope returns the attack/release gain at the current position.
func (s *sweep) envelope() float64 {
	if s.attack > 0 && s.position < s.attack {
		return float64(s.position) / float64(s.attack)
	}
	if remaining := s.total - s.position; s.release > 0 && remaining < s.release {
		return float64(remaining) / float64(s.release)
	}
	return 1
}

// Streamer renders t at rate with master volume vol in [0, 1].
func Streamer(t Tone, rate beep.SampleRate, vol float64) beep.Streamer {
	s := beep.Streamer(newSweep(t, rate))
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1)), Silent: false}
}
