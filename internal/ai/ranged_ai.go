package ai

import (
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// RangedAI keeps stand-off range and fires projectiles when it can see the player.
type RangedAI struct{}

// NewRangedAI creates a ranged controller.
func NewRangedAI() *RangedAI {
	return &RangedAI{}
}

// Kind implements Controller.
func (a *RangedAI) Kind() model.EnemyKind {
	return model.EnemyRanged
}

// Tick implements Controller.
func (a *RangedAI) Tick(w *world.World, e *model.Enemy, dtMs float64) {
	rs := e.Ranged
	if rs == nil {
		return
	}

	target := w.Player.Position
	dist := e.Position.DistanceTo(target)
	rs.HasLineOfSight = w.Index.HasLineOfSight(e.Position, target)

	intention := model.IntentionHold

	if dist <= constants.RangedFireRange && rs.HasLineOfSight &&
		rs.Shot.Elapsed(w.NowMs, rs.ShootCooldownMs) {
		a.fire(w, e, target)
		intention = model.IntentionAttack
	}

	if dist > constants.RangedApproachRange && rs.HasLineOfSight {
		dir := target.Sub(e.Position).Horizontal().Normalize()
		candidate := e.Position.Add(dir.Scale(e.Speed * dtMs))
		if w.Index.IsOutsideWalls(candidate) {
			e.Position = candidate
			if intention == model.IntentionHold {
				intention = model.IntentionChase
			}
		}
	}

	e.FaceTowards(target)
	setIntention(e, intention)
}

// fire spawns a projectile from the muzzle aimed at the player's current position.
func (a *RangedAI) fire(w *world.World, e *model.Enemy, target model.Vec3) {
	rs := e.Ranged
	muzzle := e.Position.Add(model.Vec3{Y: constants.ProjectileMuzzleHeight})
	dir := target.Sub(muzzle).Normalize()

	w.AddProjectile(model.NewProjectile(
		w.IDs().NextProjectileID(),
		muzzle,
		dir.Scale(rs.ProjectileSpeed),
		rs.ProjectileDamage,
		model.OwnerRangedEnemy,
		e.ID,
	))
	rs.Shot.Mark(w.NowMs)
}
