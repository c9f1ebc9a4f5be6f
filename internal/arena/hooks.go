package arena

import (
	"github.com/udisondev/zombiearena/internal/model"
)

// SoundKind identifies a sound cue.
type SoundKind uint8

const (
	SoundShoot SoundKind = iota + 1
	SoundHit
	SoundZombieGrowl
	SoundDash
	SoundUpdraft
)

// String returns human-readable sound name.
func (k SoundKind) String() string {
	switch k {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	case SoundZombieGrowl:
		return "zombieGrowl"
	case SoundDash:
		return "dash"
	case SoundUpdraft:
		return "updraft"
	default:
		return "unknown"
	}
}

// Effects renders fire-and-forget visual feedback. The session never waits for it.
type Effects interface {
	HitEffect(pos model.Vec3)
	DeathEffect(pos model.Vec3)
}

// Sound plays cues. Best effort: implementations swallow their own failures.
type Sound interface {
	Play(kind SoundKind)
}

// Input is polled once per tick.
type Input interface {
	InputState() model.InputState
}

// Camera is read once per tick.
type Camera interface {
	// ViewDirection returns the unit look direction.
	ViewDirection() model.Vec3
	CameraPosition() model.Vec3
}

// Notifier receives one-way presentation updates.
type Notifier interface {
	ScoreChanged(score int)
	HealthChanged(health int32)
	WaveChanged(wave int, progressPercent float64)
	GameOver(finalScore, wavesCompleted int)
}

// Hooks bundles the collaborators. Nil members are replaced with no-ops;
// a nil Camera follows the player's eye and looks along the initial yaw.
type Hooks struct {
	Effects  Effects
	Sound    Sound
	Input    Input
	Camera   Camera
	Notifier Notifier
}

type nopEffects struct{}

func (nopEffects) HitEffect(model.Vec3)   {}
func (nopEffects) DeathEffect(model.Vec3) {}

type nopSound struct{}

func (nopSound) Play(SoundKind) {}

type nopInput struct{}

func (nopInput) InputState() model.InputState { return model.InputState{} }

type nopNotifier struct{}

func (nopNotifier) ScoreChanged(int)         {}
func (nopNotifier) HealthChanged(int32)      {}
func (nopNotifier) WaveChanged(int, float64) {}
func (nopNotifier) GameOver(int, int)        {}

// eyeCamera looks from the player's eye along the session's initial yaw.
type eyeCamera struct {
	s *Session
}

func (c eyeCamera) ViewDirection() model.Vec3 {
	return model.DirectionFromYaw(c.s.initialYaw)
}

func (c eyeCamera) CameraPosition() model.Vec3 {
	return c.s.world.Player.Position
}

func (h Hooks) withDefaults(s *Session) Hooks {
	if h.Effects == nil {
		h.Effects = nopEffects{}
	}
	if h.Sound == nil {
		h.Sound = nopSound{}
	}
	if h.Input == nil {
		h.Input = nopInput{}
	}
	if h.Camera == nil {
		h.Camera = eyeCamera{s: s}
	}
	if h.Notifier == nil {
		h.Notifier = nopNotifier{}
	}
	return h
}
