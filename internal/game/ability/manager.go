// Package ability implements the cooldown-gated player abilities: dash and updraft.
package ability

import (
	"log/slog"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/game/movement"
	"github.com/udisondev/zombiearena/internal/model"
)

// dashMotion: активное перемещение дэша (from → to за durationMs).
type dashMotion struct {
	from       model.Vec3
	to         model.Vec3
	startMs    int64
	durationMs int64
}

// Manager handles ability activation and the dash interpolation.
// Uses callback injection to avoid an import cycle with the session.
//
// Состояние Ready/Cooling вычисляется лениво из model.AbilityState,
// здесь хранится только незавершённое движение дэша.
type Manager struct {
	index *geo.Index
	dash  *dashMotion

	// activatedFunc is called on every successful activation (sound, trail effect).
	activatedFunc func(kind model.AbilityKind, from, to model.Vec3)
}

// NewManager creates an ability manager over idx.
func NewManager(idx *geo.Index) *Manager {
	return &Manager{index: idx}
}

// SetActivatedFunc sets the callback invoked when an ability fires.
func (m *Manager) SetActivatedFunc(fn func(kind model.AbilityKind, from, to model.Vec3)) {
	m.activatedFunc = fn
}

// Dashing reports whether a dash is still being interpolated.
// The movement resolver ignores horizontal input while this is true.
func (m *Manager) Dashing() bool {
	return m.dash != nil
}

// Reset drops an in-flight dash (restart).
func (m *Manager) Reset() {
	m.dash = nil
}

// Tick runs the activations requested by in and advances an active dash to nowMs.
func (m *Manager) Tick(p *model.Player, in model.InputState, view model.Vec3, nowMs int64) {
	if in.UseDash {
		m.TryDash(p, view, nowMs)
	}
	if in.UseUpdraft {
		m.TryUpdraft(p, nowMs)
	}
	m.advanceDash(p, nowMs)
}

// TryDash starts a dash along the horizontal look direction.
// Returns false while the dash is cooling. The destination is clamped to the
// furthest valid point; the cooldown is consumed even if the player cannot move.
func (m *Manager) TryDash(p *model.Player, view model.Vec3, nowMs int64) bool {
	if !p.Dash.TryActivate(nowMs) {
		return false
	}

	from := p.Position
	to := DashDestination(m.index, from, movement.ViewForward(view), p.Dash.Magnitude)
	m.dash = &dashMotion{
		from:       from,
		to:         to,
		startMs:    nowMs,
		durationMs: p.Dash.DurationMs,
	}

	slog.Debug("ability used",
		"ability", model.AbilityDash,
		"from", from,
		"to", to,
		"distance", from.HorizontalDistance(to))

	if m.activatedFunc != nil {
		m.activatedFunc(model.AbilityDash, from, to)
	}
	return true
}

// TryUpdraft launches the player upward; the fall reuses the normal jump integration.
// Returns false while the updraft is cooling.
func (m *Manager) TryUpdraft(p *model.Player, nowMs int64) bool {
	if !p.Updraft.TryActivate(nowMs) {
		return false
	}

	p.VerticalVelocity = p.Updraft.Magnitude
	p.IsJumping = true

	slog.Debug("ability used",
		"ability", model.AbilityUpdraft,
		"force", p.Updraft.Magnitude)

	if m.activatedFunc != nil {
		m.activatedFunc(model.AbilityUpdraft, p.Position, p.Position)
	}
	return true
}

// advanceDash moves the player along the dash path. Only x/z are interpolated,
// vertical motion stays with the resolver. An invalid intermediate point ends the dash.
func (m *Manager) advanceDash(p *model.Player, nowMs int64) {
	d := m.dash
	if d == nil {
		return
	}

	progress := 1.0
	if d.durationMs > 0 {
		progress = min(float64(nowMs-d.startMs)/float64(d.durationMs), 1)
	}

	at := d.from.Lerp(d.to, progress)
	candidate := model.NewVec3(at.X, p.Position.Y, at.Z)
	if !m.index.IsOutsideWalls(candidate) {
		m.dash = nil
		return
	}
	p.Position = candidate

	if progress >= 1 {
		m.dash = nil
	}
}

// DashDestination returns from + dir·distance if that point is valid.
// Otherwise it walks the path in DashSearchSteps equal steps and returns the last
// valid point before the first invalid one (from itself if the first step is blocked).
func DashDestination(idx *geo.Index, from, dir model.Vec3, distance float64) model.Vec3 {
	end := from.Add(dir.Scale(distance))
	if idx.IsOutsideWalls(end) {
		return end
	}

	valid := from
	step := distance / constants.DashSearchSteps
	for i := 1; i <= constants.DashSearchSteps; i++ {
		test := from.Add(dir.Scale(step * float64(i)))
		if !idx.IsOutsideWalls(test) {
			break
		}
		valid = test
	}
	return valid
}
