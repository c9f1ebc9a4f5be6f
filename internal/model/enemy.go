package model

import (
	"fmt"

	"github.com/udisondev/zombiearena/internal/constants"
)

// EnemyKind: тег варианта врага.
type EnemyKind uint8

const (
	EnemyMelee EnemyKind = iota + 1
	EnemyRanged
)

// String returns human-readable enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyMelee:
		return "MELEE"
	case EnemyRanged:
		return "RANGED"
	default:
		return "UNKNOWN"
	}
}

// RangedState holds the fields only ranged enemies carry.
type RangedState struct {
	// Shot tracks lastShotTime.
	Shot             Cooldown
	ShootCooldownMs  int64
	ProjectileSpeed  float64
	ProjectileDamage int32
	HasLineOfSight   bool
}

// Enemy: враг арены (tagged variant).
// Ranged != nil тогда и только тогда, когда Kind == EnemyRanged.
type Enemy struct {
	ID       uint32
	Kind     EnemyKind
	Position Vec3
	// Yaw is the facing heading, see Vec3.Yaw.
	Yaw       float64
	Health    int32
	Speed     float64
	Intention Intention

	Ranged *RangedState
}

// NewMeleeEnemy creates a melee enemy.
func NewMeleeEnemy(id uint32, pos Vec3, speed float64) *Enemy {
	return &Enemy{
		ID:        id,
		Kind:      EnemyMelee,
		Position:  pos,
		Health:    constants.MeleeHealth,
		Speed:     speed,
		Intention: IntentionIdle,
	}
}

// NewRangedEnemy creates a ranged enemy with stock weapon parameters.
func NewRangedEnemy(id uint32, pos Vec3, speed float64) *Enemy {
	return &Enemy{
		ID:        id,
		Kind:      EnemyRanged,
		Position:  pos,
		Health:    constants.RangedHealth,
		Speed:     speed,
		Intention: IntentionIdle,
		Ranged: &RangedState{
			ShootCooldownMs:  constants.RangedShootCooldownMs,
			ProjectileSpeed:  constants.ProjectileSpeed,
			ProjectileDamage: constants.ProjectileDamage,
		},
	}
}

// TakeDamage reduces health and reports whether the enemy is now dead.
func (e *Enemy) TakeDamage(amount int32) (dead bool) {
	e.Health -= amount
	return e.Health <= 0
}

// IsDead reports health <= 0.
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// FaceTowards turns the enemy horizontally towards target.
func (e *Enemy) FaceTowards(target Vec3) {
	dir := target.Sub(e.Position).Horizontal()
	if dir.LenSquared() == 0 {
		return
	}
	e.Yaw = dir.Yaw()
}

// KillScore returns the score awarded for killing this enemy.
func (e *Enemy) KillScore() int {
	switch e.Kind {
	case EnemyMelee:
		return constants.MeleeKillScore
	case EnemyRanged:
		return constants.RangedKillScore
	default:
		panic(fmt.Sprintf("unknown enemy kind %d", e.Kind))
	}
}

// HalfExtents returns the hit box half size around Position.
func (e *Enemy) HalfExtents() Vec3 {
	switch e.Kind {
	case EnemyMelee:
		return Vec3{X: constants.MeleeHalfWidth, Y: constants.MeleeHalfHeight, Z: constants.MeleeHalfWidth}
	case EnemyRanged:
		return Vec3{X: constants.RangedHalfWidth, Y: constants.RangedHalfHeight, Z: constants.RangedHalfWidth}
	default:
		panic(fmt.Sprintf("unknown enemy kind %d", e.Kind))
	}
}

// String для логов.
func (e *Enemy) String() string {
	return fmt.Sprintf("%s#%d(hp=%d pos=%.1f,%.1f)", e.Kind, e.ID, e.Health, e.Position.X, e.Position.Z)
}
