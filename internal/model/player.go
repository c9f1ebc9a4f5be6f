package model

import (
	"sync"

	"github.com/udisondev/zombiearena/internal/constants"
)

// PlayerTuning holds the player constants that may be overridden from config.
type PlayerTuning struct {
	JumpForce       float64
	ShootCooldownMs int64
	UpdraftForce    float64
}

// DefaultPlayerTuning returns the stock tuning.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		JumpForce:       constants.JumpForce,
		ShootCooldownMs: constants.ShootCooldownMs,
		UpdraftForce:    constants.UpdraftForce,
	}
}

// Player: единственный игрок арены.
// Мутируется резолвером движения, способностями и уроном от врагов.
// При рестарте пересоздаётся целиком.
type Player struct {
	Position         Vec3
	VerticalVelocity float64
	IsJumping        bool
	IsShooting       bool

	// Shot tracks lastShotTime of the hitscan weapon.
	Shot Cooldown

	Dash    AbilityState
	Updraft AbilityState

	Tuning PlayerTuning

	health    int32
	deathOnce sync.Once // game over fires exactly once per Player
	dead      bool
}

// NewPlayer creates a player at pos with full health and ready abilities.
func NewPlayer(pos Vec3, tuning PlayerTuning) *Player {
	return &Player{
		Position: pos,
		Tuning:   tuning,
		health:   constants.PlayerMaxHealth,
		Dash: NewAbilityState(AbilityDash,
			constants.DashCooldownMs, constants.DashDistance, constants.DashDurationMs),
		Updraft: NewAbilityState(AbilityUpdraft,
			constants.UpdraftCooldownMs, tuning.UpdraftForce, 0),
	}
}

// Health returns current health in [0, PlayerMaxHealth].
func (p *Player) Health() int32 {
	return p.health
}

// IsDead reports whether the player has reached zero health.
func (p *Player) IsDead() bool {
	return p.dead
}

// ReduceHealth applies damage and clamps health at zero.
// Returns true only for the call that killed the player; later calls are no-ops returning false.
func (p *Player) ReduceHealth(amount int32) (killed bool) {
	if p.dead || amount <= 0 {
		return false
	}

	p.health -= amount
	if p.health > 0 {
		return false
	}
	p.health = 0

	p.deathOnce.Do(func() {
		p.dead = true
		killed = true
	})
	return killed
}

// CanShoot reports whether the weapon cooldown elapsed at nowMs.
func (p *Player) CanShoot(nowMs int64) bool {
	return p.Shot.Elapsed(nowMs, p.Tuning.ShootCooldownMs)
}
