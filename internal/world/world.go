// Package world holds the World aggregate: the single mutable snapshot every tick phase works on.
package world

import (
	"math/rand/v2"
	"slices"

	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
)

// World: явный агрегат состояния арены (игрок, враги, снаряды, волна, геометрия).
// Передаётся по ссылке в каждую фазу тика. Мутируется только потоком симуляции,
// поэтому блокировок нет.
type World struct {
	Index       *geo.Index
	Player      *model.Player
	Melee       []*model.Enemy
	Ranged      []*model.Enemy
	Projectiles []*model.Projectile
	Wave        model.WaveState

	// NowMs is the session clock; it only advances on ticks.
	NowMs int64

	// GameOver is terminal until the world is recreated.
	GameOver bool

	// Rand is the single source of randomness for spawning, enemy speed and growl.
	Rand *rand.Rand

	ids    *ObjectIDGenerator
	deaths []*model.Enemy
}

// New creates a world around idx with the given player.
func New(idx *geo.Index, player *model.Player, rng *rand.Rand) *World {
	return &World{
		Index:  idx,
		Player: player,
		Wave:   model.NewWaveState(),
		Rand:   rng,
		ids:    NewObjectIDGenerator(),
	}
}

// IDs returns the entity ID generator.
func (w *World) IDs() *ObjectIDGenerator {
	return w.ids
}

// AddEnemy puts e into the collection of its variant.
func (w *World) AddEnemy(e *model.Enemy) {
	switch e.Kind {
	case model.EnemyMelee:
		w.Melee = append(w.Melee, e)
	case model.EnemyRanged:
		w.Ranged = append(w.Ranged, e)
	}
}

// RemoveEnemy removes e from its collection.
// Removing an enemy that is not present is a no-op returning false.
func (w *World) RemoveEnemy(e *model.Enemy) bool {
	var coll *[]*model.Enemy
	switch e.Kind {
	case model.EnemyMelee:
		coll = &w.Melee
	case model.EnemyRanged:
		coll = &w.Ranged
	default:
		return false
	}

	i := slices.Index(*coll, e)
	if i < 0 {
		return false
	}
	*coll = slices.Delete(*coll, i, i+1)
	return true
}

// ClearRanged removes every ranged enemy and returns how many were removed.
func (w *World) ClearRanged() int {
	n := len(w.Ranged)
	clear(w.Ranged)
	w.Ranged = w.Ranged[:0]
	return n
}

// LiveEnemies returns the number of live enemies of both variants.
func (w *World) LiveEnemies() int {
	return len(w.Melee) + len(w.Ranged)
}

// AllEnemies returns melee then ranged enemies in a new slice.
func (w *World) AllEnemies() []*model.Enemy {
	all := make([]*model.Enemy, 0, w.LiveEnemies())
	all = append(all, w.Melee...)
	return append(all, w.Ranged...)
}

// FindEnemy returns the live enemy with the given ID.
func (w *World) FindEnemy(id uint32) (*model.Enemy, bool) {
	for _, e := range w.Melee {
		if e.ID == id {
			return e, true
		}
	}
	for _, e := range w.Ranged {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// AddProjectile registers a projectile.
func (w *World) AddProjectile(p *model.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// RemoveProjectile removes the projectile with the given ID; absent IDs are a no-op.
func (w *World) RemoveProjectile(id uint32) bool {
	i := slices.IndexFunc(w.Projectiles, func(p *model.Projectile) bool { return p.ID == id })
	if i < 0 {
		return false
	}
	w.Projectiles = slices.Delete(w.Projectiles, i, i+1)
	return true
}

// RecordDeath queues a death for wave bookkeeping at the end of the tick.
func (w *World) RecordDeath(e *model.Enemy) {
	w.deaths = append(w.deaths, e)
}

// DrainDeaths returns and clears the deaths recorded this tick.
func (w *World) DrainDeaths() []*model.Enemy {
	d := w.deaths
	w.deaths = nil
	return d
}

// PendingDeaths returns the number of deaths not yet drained.
func (w *World) PendingDeaths() int {
	return len(w.deaths)
}
