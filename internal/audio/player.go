// Package audio synthesizes the arena sound cues with beep.
// Playback is best effort: device errors disable audio and are never returned to the caller of Play.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/udisondev/zombiearena/internal/arena"
)

const sampleRate = beep.SampleRate(44100)

// Cues maps every sound kind to its tone.
var Cues = map[arena.SoundKind]Tone{
	arena.SoundShoot: {
		Wave: WaveSquare, FromHz: 880, ToHz: 220,
		Duration: 60 * time.Millisecond, Release: 40 * time.Millisecond, Gain: 0.25,
	},
	arena.SoundHit: {
		Wave: WaveNoise, FromHz: 0, ToHz: 0,
		Duration: 80 * time.Millisecond, Release: 60 * time.Millisecond, Gain: 0.3,
	},
	arena.SoundZombieGrowl: {
		Wave: WaveSaw, FromHz: 70, ToHz: 55,
		Duration: 700 * time.Millisecond, Attack: 100 * time.Millisecond, Release: 300 * time.Millisecond, Gain: 0.35,
	},
	arena.SoundDash: {
		Wave: WaveSine, FromHz: 200, ToHz: 900,
		Duration: 200 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 80 * time.Millisecond, Gain: 0.3,
	},
	arena.SoundUpdraft: {
		Wave: WaveSine, FromHz: 150, ToHz: 600,
		Duration: 400 * time.Millisecond, Attack: 50 * time.Millisecond, Release: 200 * time.Millisecond, Gain: 0.3,
	},
}

// Player implements arena.Sound on top of the beep speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

var _ arena.Sound = (*Player)(nil)

// NewPlayer creates a player with master volume in [0, 1]. Call Init before Play.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device. On error the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play implements arena.Sound. Unknown kinds and an uninitialized device are ignored.
func (p *Player) Play(kind arena.SoundKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, ok := Cues[kind]
	if !ok {
		slog.Debug("no tone for sound", "kind", kind)
		return
	}

	speaker.Lock()
	p.mixer.Add(Streamer(tone, sampleRate, p.volume))
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
