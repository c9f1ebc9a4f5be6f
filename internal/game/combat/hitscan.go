package combat

import (
	"math"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// Hitscan casts a ray from origin along dir against every live enemy and damages the nearest.
// Walls do not stop the ray. A kill removes the enemy and records the death for wave bookkeeping.
func (m *CombatManager) Hitscan(w *world.World, origin, dir model.Vec3) HitResult {
	res := m.hitscan(w, origin, dir)
	if m.hitObserver != nil {
		m.hitObserver(res)
	}
	return res
}

func (m *CombatManager) hitscan(w *world.World, origin, dir model.Vec3) HitResult {
	dir = dir.Normalize()
	if dir == (model.Vec3{}) {
		return HitResult{}
	}

	enemies := w.AllEnemies()
	if len(enemies) == 0 {
		return HitResult{}
	}
	boxes := make([]geo.Box, len(enemies))
	for i, e := range enemies {
		half := e.HalfExtents()
		boxes[i] = geo.Box{Min: e.Position.Sub(half), Max: e.Position.Add(half)}
	}

	hit, ok := geo.IntersectBoxes(origin, dir, boxes, math.Inf(1))
	if !ok {
		return HitResult{}
	}

	target := enemies[hit.Index]
	res := HitResult{
		Hit:      true,
		Enemy:    target,
		Point:    hit.Point,
		Distance: hit.Distance,
		Damage:   constants.HitscanDamage,
	}

	dead := target.TakeDamage(constants.HitscanDamage)
	if m.enemyHitFunc != nil {
		m.enemyHitFunc(target, hit.Point)
	}
	if dead && w.RemoveEnemy(target) {
		res.Killed = true
		w.RecordDeath(target)
		if m.enemyKilledFunc != nil {
			m.enemyKilledFunc(target)
		}
	}
	return res
}
