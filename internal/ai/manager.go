package ai

import (
	"log/slog"

	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// Manager runs the enemy controllers over the world's enemy collections.
type Manager struct {
	melee  Controller
	ranged Controller
}

// NewManager creates a manager with the stock melee and ranged controllers.
func NewManager(damage DamageFunc) *Manager {
	return NewManagerWith(NewMeleeAI(damage), NewRangedAI())
}

// NewManagerWith creates a manager with custom controllers.
func NewManagerWith(melee, ranged Controller) *Manager {
	return &Manager{melee: melee, ranged: ranged}
}

// Controller returns the controller for kind.
func (m *Manager) Controller(kind model.EnemyKind) Controller {
	switch kind {
	case model.EnemyMelee:
		return m.melee
	case model.EnemyRanged:
		return m.ranged
	default:
		return nil
	}
}

// TickMelee advances every melee enemy. Returns the number of enemies ticked.
func (m *Manager) TickMelee(w *world.World, dtMs float64) int {
	return m.tickAll(w, m.melee, w.Melee, dtMs)
}

// TickRanged advances every ranged enemy. Returns the number of enemies ticked.
func (m *Manager) TickRanged(w *world.World, dtMs float64) int {
	return m.tickAll(w, m.ranged, w.Ranged, dtMs)
}

func (m *Manager) tickAll(w *world.World, c Controller, enemies []*model.Enemy, dtMs float64) int {
	if c == nil {
		return 0
	}
	for _, e := range enemies {
		c.Tick(w, e, dtMs)
	}

	if len(enemies) > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "kind", c.Kind(), "enemies", len(enemies))
	}
	return len(enemies)
}
