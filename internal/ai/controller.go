package ai

import (
	"log/slog"

	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// Controller is the per-tick decision logic of one enemy variant.
type Controller interface {
	// Kind returns the enemy variant this controller drives.
	Kind() model.EnemyKind

	// Tick advances e by dtMs. Decisions depend only on e and the player's position.
	Tick(w *world.World, e *model.Enemy, dtMs float64)
}

// DamageFunc applies damage to the player.
// Injected by the session to avoid an import cycle with combat.
type DamageFunc func(amount int32)

// setIntention records a decision and logs transitions in debug mode.
func setIntention(e *model.Enemy, intention model.Intention) {
	if e.Intention == intention {
		return
	}
	if IsDebugEnabled() {
		slog.Debug("enemy intention changed",
			"enemy", e.String(),
			"from", e.Intention,
			"to", intention)
	}
	e.Intention = intention
}
