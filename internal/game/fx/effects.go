// Package fx keeps the transient visual effects (hit sparks, death bursts, tracers, dash trails).
// Effects carry an expiry on the session clock and are pruned once per tick; they never touch
// world entities.
package fx

import (
	"sync"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
)

// Kind: тип визуального эффекта.
type Kind uint8

const (
	KindHit Kind = iota + 1
	KindDeath
	KindTracer
	KindDashTrail
)

// String returns human-readable effect kind.
func (k Kind) String() string {
	switch k {
	case KindHit:
		return "HIT"
	case KindDeath:
		return "DEATH"
	case KindTracer:
		return "TRACER"
	case KindDashTrail:
		return "DASH_TRAIL"
	default:
		return "UNKNOWN"
	}
}

// TTL returns the lifetime of an effect kind in milliseconds.
func TTL(kind Kind) int64 {
	switch kind {
	case KindHit:
		return constants.HitEffectMs
	case KindDeath:
		return constants.DeathEffectMs
	case KindTracer:
		return constants.TracerMs
	case KindDashTrail:
		return constants.DashDurationMs
	default:
		return 0
	}
}

// Effect is one transient effect. End is used by line effects (tracer, dash trail).
type Effect struct {
	ID          uint32
	Kind        Kind
	Position    model.Vec3
	End         model.Vec3
	StartedAtMs int64
	ExpiresAtMs int64
}

// Progress returns the normalized age of the effect at nowMs in [0, 1].
func (e Effect) Progress(nowMs int64) float64 {
	total := e.ExpiresAtMs - e.StartedAtMs
	if total <= 0 {
		return 1
	}
	return min(max(float64(nowMs-e.StartedAtMs)/float64(total), 0), 1)
}

// List tracks live effects.
//
// Thread-safe: the tick thread adds and prunes, presenters may read concurrently.
type List struct {
	mu      sync.RWMutex
	effects []Effect
}

// NewList creates an empty effect list.
func NewList() *List {
	return &List{effects: make([]Effect, 0, 32)}
}

// Spawn registers an effect of kind starting at nowMs with the kind's TTL.
func (l *List) Spawn(id uint32, kind Kind, pos, end model.Vec3, nowMs int64) Effect {
	e := Effect{
		ID:          id,
		Kind:        kind,
		Position:    pos,
		End:         end,
		StartedAtMs: nowMs,
		ExpiresAtMs: nowMs + TTL(kind),
	}
	l.mu.Lock()
	l.effects = append(l.effects, e)
	l.mu.Unlock()
	return e
}

// Tick removes effects that have expired by nowMs and returns how many were removed.
func (l *List) Tick(nowMs int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.effects[:0]
	for _, e := range l.effects {
		if nowMs < e.ExpiresAtMs {
			kept = append(kept, e)
		}
	}
	removed := len(l.effects) - len(kept)
	l.effects = kept
	return removed
}

// Active returns a copy of live effects.
func (l *List) Active() []Effect {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Effect, len(l.effects))
	copy(result, l.effects)
	return result
}

// Len returns the number of live effects.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.effects)
}

// Clear drops every effect (restart).
func (l *List) Clear() {
	l.mu.Lock()
	l.effects = l.effects[:0]
	l.mu.Unlock()
}
