package ai

import (
	"math"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// sidestepDirections are tried in order when the direct path is blocked.
var sidestepDirections = [8]model.Vec3{
	{X: 1},
	{X: -1},
	{Z: 1},
	{Z: -1},
	{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2},
	{X: -math.Sqrt2 / 2, Z: math.Sqrt2 / 2},
	{X: math.Sqrt2 / 2, Z: -math.Sqrt2 / 2},
	{X: -math.Sqrt2 / 2, Z: -math.Sqrt2 / 2},
}

// MeleeAI chases the player, side-stepping walls, and deals contact damage.
type MeleeAI struct {
	damageFunc DamageFunc
}

// NewMeleeAI creates a melee controller. damage may be nil (contact damage disabled).
func NewMeleeAI(damage DamageFunc) *MeleeAI {
	return &MeleeAI{damageFunc: damage}
}

// Kind implements Controller.
func (a *MeleeAI) Kind() model.EnemyKind {
	return model.EnemyMelee
}

// Tick implements Controller.
func (a *MeleeAI) Tick(w *world.World, e *model.Enemy, dtMs float64) {
	target := w.Player.Position
	step := e.Speed * dtMs
	toPlayer := target.Sub(e.Position).Horizontal().Normalize()

	switch {
	case a.tryMove(w, e, toPlayer, step):
		setIntention(e, model.IntentionChase)
	case a.sidestep(w, e, step):
		setIntention(e, model.IntentionSidestep)
	default:
		// Все направления заблокированы, немного отступаем от игрока.
		a.tryMove(w, e, toPlayer.Scale(-1), step*constants.MeleeRetreatFactor)
		setIntention(e, model.IntentionRetreat)
	}

	e.FaceTowards(target)

	if e.Position.DistanceTo(target) < constants.MeleeContactRange {
		if a.damageFunc != nil {
			a.damageFunc(constants.MeleeDamage)
		}
		away := e.Position.Sub(target).Horizontal().Normalize()
		a.tryMove(w, e, away, constants.MeleePushDistance)
		setIntention(e, model.IntentionAttack)
	}
}

// tryMove moves e by dir*dist if the destination satisfies the containment predicate.
func (a *MeleeAI) tryMove(w *world.World, e *model.Enemy, dir model.Vec3, dist float64) bool {
	if dir == (model.Vec3{}) || dist <= 0 {
		return false
	}
	candidate := e.Position.Add(dir.Scale(dist))
	if !w.Index.IsOutsideWalls(candidate) {
		return false
	}
	e.Position = candidate
	return true
}

func (a *MeleeAI) sidestep(w *world.World, e *model.Enemy, step float64) bool {
	for _, dir := range sidestepDirections {
		if a.tryMove(w, e, dir, step) {
			return true
		}
	}
	return false
}
