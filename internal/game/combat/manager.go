// Package combat resolves projectile flight, hitscan shots and player damage.
package combat

import (
	"log/slog"

	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// HitResult содержит результат одного выстрела (для наблюдения в тестах и эффектов).
type HitResult struct {
	Hit      bool
	Enemy    *model.Enemy
	Point    model.Vec3
	Distance float64
	Damage   int32
	Killed   bool
}

// CombatManager координирует урон: снаряды → игрок, хитскан → враги, game over.
// Presentation callbacks are injected to avoid an import cycle with the session.
type CombatManager struct {
	// healthFunc is called after every damage event with the new health.
	healthFunc func(health int32)

	// gameOverFunc is called exactly once, when the player dies.
	gameOverFunc func()

	// enemyHitFunc is called for every hitscan hit (hit sound, hit effect).
	enemyHitFunc func(e *model.Enemy, point model.Vec3)

	// enemyKilledFunc is called when a hit kills an enemy (death effect).
	enemyKilledFunc func(e *model.Enemy)

	// hitObserver: callback для наблюдения за результатами выстрелов (nil в production).
	hitObserver func(HitResult)
}

// NewCombatManager creates a combat manager with no callbacks attached.
func NewCombatManager() *CombatManager {
	return &CombatManager{}
}

// SetHealthFunc sets the callback invoked after the player takes damage.
func (m *CombatManager) SetHealthFunc(fn func(health int32)) {
	m.healthFunc = fn
}

// SetGameOverFunc sets the callback invoked once when the player dies.
func (m *CombatManager) SetGameOverFunc(fn func()) {
	m.gameOverFunc = fn
}

// SetEnemyHitFunc sets the callback invoked on every hitscan hit.
func (m *CombatManager) SetEnemyHitFunc(fn func(e *model.Enemy, point model.Vec3)) {
	m.enemyHitFunc = fn
}

// SetEnemyKilledFunc sets the callback invoked when a hit kills an enemy.
func (m *CombatManager) SetEnemyKilledFunc(fn func(e *model.Enemy)) {
	m.enemyKilledFunc = fn
}

// SetHitObserver sets callback for observing shot results (for tests).
func (m *CombatManager) SetHitObserver(fn func(HitResult)) {
	m.hitObserver = fn
}

// DamagePlayer applies damage to the player.
// The call that takes health to zero marks the world as over; later calls change nothing.
func (m *CombatManager) DamagePlayer(w *world.World, amount int32) {
	if w.GameOver {
		return
	}

	killed := w.Player.ReduceHealth(amount)
	if m.healthFunc != nil {
		m.healthFunc(w.Player.Health())
	}
	if !killed {
		return
	}

	w.GameOver = true
	slog.Info("player died",
		"score", w.Wave.Score,
		"wave", w.Wave.Wave,
		"kills", w.Wave.TotalKills)
	if m.gameOverFunc != nil {
		m.gameOverFunc()
	}
}
