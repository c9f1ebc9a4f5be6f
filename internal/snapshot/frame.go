// Package snapshot captures immutable per-tick views of a session for presenters and the
// frame recorder. Nothing here mutates the world.
package snapshot

import (
	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/fx"
	"github.com/udisondev/zombiearena/internal/model"
)

// PlayerView is the player part of a frame.
type PlayerView struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Z        float64 `msgpack:"z"`
	Jumping  bool    `msgpack:"j"`
	Shooting bool    `msgpack:"s"`
	Dashing  bool    `msgpack:"d"`
}

// EnemyView is one live enemy.
type EnemyView struct {
	ID        uint32          `msgpack:"id"`
	Kind      model.EnemyKind `msgpack:"k"`
	X         float64         `msgpack:"x"`
	Y         float64         `msgpack:"y"`
	Z         float64         `msgpack:"z"`
	Yaw       float64         `msgpack:"yaw"`
	Health    int32           `msgpack:"hp"`
	Intention model.Intention `msgpack:"i"`
}

// ProjectileView is one projectile in flight.
type ProjectileView struct {
	ID uint32  `msgpack:"id"`
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	Z  float64 `msgpack:"z"`
}

// EffectView is one transient effect with its normalized age.
type EffectView struct {
	ID       uint32  `msgpack:"id"`
	Kind     fx.Kind `msgpack:"k"`
	X        float64 `msgpack:"x"`
	Z        float64 `msgpack:"z"`
	EndX     float64 `msgpack:"ex"`
	EndZ     float64 `msgpack:"ez"`
	Progress float64 `msgpack:"p"`
}

// AbilityView is the HUD state of one ability.
type AbilityView struct {
	Phase       model.AbilityPhase `msgpack:"ph"`
	RemainingMs int64              `msgpack:"rem"`
}

// Ready reports whether the ability can be activated.
func (a AbilityView) Ready() bool {
	return a.Phase == model.AbilityReady
}

// RemainingSeconds returns the cooldown left, rounded up to whole seconds.
func (a AbilityView) RemainingSeconds() int64 {
	return (a.RemainingMs + 999) / 1000
}

// HUD holds the heads-up display values.
type HUD struct {
	Health         int32       `msgpack:"hp"`
	Score          int         `msgpack:"sc"`
	Wave           int         `msgpack:"w"`
	WaveProgress   float64     `msgpack:"wp"`
	WavesCompleted int         `msgpack:"wc"`
	Kills          int         `msgpack:"k"`
	Dash           AbilityView `msgpack:"da"`
	Updraft        AbilityView `msgpack:"up"`
	GameOver       bool        `msgpack:"go"`
	Paused         bool        `msgpack:"pa"`
}

// Frame is an immutable copy of everything a presenter needs for one tick.
type Frame struct {
	RunID       string           `msgpack:"run"`
	Tick        uint64           `msgpack:"t"`
	NowMs       int64            `msgpack:"now"`
	Player      PlayerView       `msgpack:"pl"`
	HUD         HUD              `msgpack:"hud"`
	Enemies     []EnemyView      `msgpack:"en,omitempty"`
	Projectiles []ProjectileView `msgpack:"pr,omitempty"`
	Effects     []EffectView     `msgpack:"fx,omitempty"`
}

// Capture copies the session state into a Frame. Must be called on the simulation goroutine.
func Capture(s *arena.Session) Frame {
	w := s.World()
	p := w.Player
	now := w.NowMs

	f := Frame{
		RunID: s.RunID().String(),
		Tick:  s.Ticks(),
		NowMs: now,
		Player: PlayerView{
			X:        p.Position.X,
			Y:        p.Position.Y,
			Z:        p.Position.Z,
			Jumping:  p.IsJumping,
			Shooting: p.IsShooting,
			Dashing:  s.Dashing(),
		},
		HUD: HUD{
			Health:         min(max(p.Health(), 0), constants.PlayerMaxHealth),
			Score:          w.Wave.Score,
			Wave:           w.Wave.Wave,
			WaveProgress:   w.Wave.ProgressPercent(),
			WavesCompleted: w.Wave.WavesCompleted(),
			Kills:          w.Wave.TotalKills,
			Dash:           abilityView(p.Dash, now),
			Updraft:        abilityView(p.Updraft, now),
			GameOver:       w.GameOver,
			Paused:         s.Paused(),
		},
	}

	enemies := w.AllEnemies()
	if len(enemies) > 0 {
		f.Enemies = make([]EnemyView, 0, len(enemies))
		for _, e := range enemies {
			f.Enemies = append(f.Enemies, EnemyView{
				ID:        e.ID,
				Kind:      e.Kind,
				X:         e.Position.X,
				Y:         e.Position.Y,
				Z:         e.Position.Z,
				Yaw:       e.Yaw,
				Health:    e.Health,
				Intention: e.Intention,
			})
		}
	}

	if len(w.Projectiles) > 0 {
		f.Projectiles = make([]ProjectileView, 0, len(w.Projectiles))
		for _, pr := range w.Projectiles {
			f.Projectiles = append(f.Projectiles, ProjectileView{
				ID: pr.ID,
				X:  pr.Position.X,
				Y:  pr.Position.Y,
				Z:  pr.Position.Z,
			})
		}
	}

	for _, e := range s.Effects().Active() {
		f.Effects = append(f.Effects, EffectView{
			ID:       e.ID,
			Kind:     e.Kind,
			X:        e.Position.X,
			Z:        e.Position.Z,
			EndX:     e.End.X,
			EndZ:     e.End.Z,
			Progress: e.Progress(now),
		})
	}

	return f
}

func abilityView(a model.AbilityState, nowMs int64) AbilityView {
	return AbilityView{
		Phase:       a.Phase(nowMs),
		RemainingMs: a.RemainingMs(nowMs),
	}
}
