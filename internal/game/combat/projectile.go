package combat

import (
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/world"
)

// ProjectileStats counts what happened to projectiles during one tick.
type ProjectileStats struct {
	WallHits   int
	PlayerHits int
	Expired    int
}

// TickProjectiles advances every projectile by dtMs.
// A projectile is destroyed when the segment it would travel hits a wall, when it ends within
// hit radius of the player (dealing damage), or when it is farther than the max travel from its spawn.
func (m *CombatManager) TickProjectiles(w *world.World, dtMs float64) ProjectileStats {
	var stats ProjectileStats

	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		next := p.Position.Add(p.Velocity.Scale(dtMs))

		seg := next.Sub(p.Position)
		if segLen := seg.Len(); segLen > 0 {
			if hit, ok := w.Index.Raycast(p.Position, seg.Scale(1/segLen), segLen); ok && hit.Distance < segLen {
				stats.WallHits++
				continue
			}
		}
		p.Position = next

		if p.Position.DistanceTo(w.Player.Position) < constants.ProjectileHitRadius {
			m.DamagePlayer(w, p.Damage)
			stats.PlayerHits++
			continue
		}

		if p.Travelled() > constants.ProjectileMaxTravel {
			stats.Expired++
			continue
		}

		kept = append(kept, p)
	}

	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
	return stats
}
