package spawn

import (
	"math/rand/v2"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
)

// Finder searches random spawn positions that satisfy the containment predicate.
type Finder struct {
	index  *geo.Index
	budget int
}

// NewFinder creates a finder over idx with the stock attempt budget.
func NewFinder(idx *geo.Index) *Finder {
	return &Finder{index: idx, budget: constants.SpawnAttemptBudget}
}

// Find samples up to the attempt budget and returns the first acceptable point.
// A point is accepted when it is outside every wall footprint, farther than the
// exclusion radius from the player and, for ranged enemies, has line of sight to the player.
// Returns false when the budget is exhausted.
func (f *Finder) Find(rng *rand.Rand, kind model.EnemyKind, player model.Vec3) (model.Vec3, bool) {
	extent := constants.MeleeSpawnRange
	if kind == model.EnemyRanged {
		extent = constants.RangedSpawnRange
	}

	for range f.budget {
		p := model.NewVec3(
			rng.Float64()*2*extent-extent,
			constants.EnemySpawnHeight,
			rng.Float64()*2*extent-extent,
		)
		if f.Acceptable(kind, p, player) {
			return p, true
		}
	}
	return model.Vec3{}, false
}

// Acceptable reports whether p is a valid spawn point for kind.
func (f *Finder) Acceptable(kind model.EnemyKind, p, player model.Vec3) bool {
	if !f.index.IsOutsideWalls(p) {
		return false
	}
	if p.DistanceTo(player) <= constants.SpawnExclusionRadius {
		return false
	}
	if kind == model.EnemyRanged && !f.index.HasLineOfSight(p, player) {
		return false
	}
	return true
}
