package combat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

func newWorld(layout geo.Layout, playerPos model.Vec3) *world.World {
	p := model.NewPlayer(playerPos, model.DefaultPlayerTuning())
	return world.New(geo.NewIndex(layout), p, rand.New(rand.NewPCG(constants.TestSeed, 0)))
}

func eye(x, z float64) model.Vec3 {
	return model.NewVec3(x, constants.PlayerEyeHeight, z)
}

func addProjectile(w *world.World, pos, velocity model.Vec3) *model.Projectile {
	p := model.NewProjectile(w.IDs().NextProjectileID(), pos, velocity, constants.ProjectileDamage, model.OwnerRangedEnemy, 1)
	w.AddProjectile(p)
	return p
}

func projectileLive(w *world.World, id uint32) bool {
	for _, p := range w.Projectiles {
		if p.ID == id {
			return true
		}
	}
	return false
}

func TestTickProjectiles_Expiry(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, -45))
	m := NewCombatManager()
	p := addProjectile(w, model.NewVec3(0, 1.5, 0), model.NewVec3(constants.ProjectileSpeed, 0, 0))

	// 100 ms per tick at 0.01 u/ms = 1 unit per tick
	for tick := 1; tick <= 99; tick++ {
		m.TickProjectiles(w, 100)
		require.Truef(t, projectileLive(w, p.ID), "projectile expired early at tick %d (travelled %v)", tick, p.Travelled())
	}

	m.TickProjectiles(w, 100)
	stats := m.TickProjectiles(w, 100)

	assert.False(t, projectileLive(w, p.ID), "projectile must expire past 100 units")
	assert.Equal(t, 1, stats.Expired)
	assert.Empty(t, w.Projectiles)
}

func TestTickProjectiles_ExpiryMeasuredFromSpawn(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, -45))
	m := NewCombatManager()
	// spawned far from the origin; must still fly a full 100 units
	p := addProjectile(w, model.NewVec3(-40, 1.5, 40), model.NewVec3(constants.ProjectileSpeed, 0, 0))

	for range 90 {
		m.TickProjectiles(w, 100)
	}
	assert.True(t, projectileLive(w, p.ID))
}

func TestTickProjectiles_WallHit(t *testing.T) {
	w := newWorld(geo.DefaultLayout(), eye(0, 45))
	m := NewCombatManager()
	// wall (5,0 7x10) face at x=1.5
	p := addProjectile(w, model.NewVec3(0, 1.5, 0), model.NewVec3(constants.ProjectileSpeed, 0, 0))

	stats := m.TickProjectiles(w, 100)
	assert.True(t, projectileLive(w, p.ID), "1 unit segment does not reach the wall")

	stats = m.TickProjectiles(w, 100)
	assert.Equal(t, 1, stats.WallHits)
	assert.False(t, projectileLive(w, p.ID))
	assert.InDelta(t, 1.0, p.Position.X, 1e-9, "destroyed projectile is not moved")
}

func TestTickProjectiles_PlayerHit(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(5, 0))
	m := NewCombatManager()
	var healths []int32
	m.SetHealthFunc(func(h int32) { healths = append(healths, h) })

	p := addProjectile(w, model.NewVec3(3, 1.5, 0), model.NewVec3(constants.ProjectileSpeed, 0, 0))

	stats := m.TickProjectiles(w, 100)
	require.Equal(t, 0, stats.PlayerHits, "1.005 units away is a miss")

	stats = m.TickProjectiles(w, 50)
	assert.Equal(t, 1, stats.PlayerHits)
	assert.False(t, projectileLive(w, p.ID))
	assert.Equal(t, int32(90), w.Player.Health())
	assert.Equal(t, []int32{90}, healths)
}

func TestDamagePlayer_GameOverExactlyOnce(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, 0))
	m := NewCombatManager()
	gameOvers := 0
	m.SetGameOverFunc(func() { gameOvers++ })

	// mixed melee and projectile hits, 10 each
	for i := range 10 {
		if i%2 == 0 {
			m.DamagePlayer(w, constants.MeleeDamage)
		} else {
			m.DamagePlayer(w, constants.ProjectileDamage)
		}
	}
	require.True(t, w.GameOver)
	require.Equal(t, int32(0), w.Player.Health())

	// re-entrant damage after death
	m.DamagePlayer(w, constants.MeleeDamage)
	m.DamagePlayer(w, constants.ProjectileDamage)

	assert.Equal(t, 1, gameOvers)
	assert.Equal(t, int32(0), w.Player.Health())
}

func TestHitscan_TwoHitsKillMelee(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, 0))
	m := NewCombatManager()
	e := model.NewMeleeEnemy(w.IDs().NextEnemyID(), model.NewVec3(0, 1, -10), 0.005)
	w.AddEnemy(e)

	var hits, kills int
	m.SetEnemyHitFunc(func(*model.Enemy, model.Vec3) { hits++ })
	m.SetEnemyKilledFunc(func(*model.Enemy) { kills++ })

	first := m.Hitscan(w, eye(0, 0), model.NewVec3(0, 0, -1))
	require.True(t, first.Hit)
	assert.False(t, first.Killed)
	assert.InDelta(t, 9.5, first.Distance, 1e-9)
	assert.Equal(t, int32(50), e.Health)

	second := m.Hitscan(w, eye(0, 0), model.NewVec3(0, 0, -1))
	assert.True(t, second.Killed)
	assert.Equal(t, 0, w.LiveEnemies())
	assert.Equal(t, 1, w.PendingDeaths())
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, kills)
}

func TestHitscan_Nearest(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, 0))
	m := NewCombatManager()
	far := model.NewMeleeEnemy(w.IDs().NextEnemyID(), model.NewVec3(0, 1, -20), 0.005)
	near := model.NewMeleeEnemy(w.IDs().NextEnemyID(), model.NewVec3(0, 1, -5), 0.005)
	w.AddEnemy(far)
	w.AddEnemy(near)

	var observed []HitResult
	m.SetHitObserver(func(r HitResult) { observed = append(observed, r) })

	res := m.Hitscan(w, eye(0, 0), model.NewVec3(0, 0, -1))

	assert.Same(t, near, res.Enemy)
	assert.Equal(t, int32(constants.MeleeHealth), far.Health)
	require.Len(t, observed, 1)
	assert.Equal(t, res, observed[0])
}

func TestHitscan_RangedBody(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, 0))
	m := NewCombatManager()
	r := model.NewRangedEnemy(w.IDs().NextEnemyID(), model.NewVec3(10, 1, 0), 0.005)
	w.AddEnemy(r)

	// eye-level horizontal ray passes over the 0.5-high body
	miss := m.Hitscan(w, eye(0, 0), model.NewVec3(1, 0, 0))
	assert.False(t, miss.Hit)

	aim := r.Position.Sub(eye(0, 0))
	for range 3 {
		m.Hitscan(w, eye(0, 0), aim)
	}
	assert.Equal(t, 0, len(w.Ranged), "150 hp takes three hits")
	assert.Equal(t, 1, w.PendingDeaths())
}

func TestHitscan_NotBlockedByWalls(t *testing.T) {
	w := newWorld(geo.DefaultLayout(), eye(0, 0))
	m := NewCombatManager()
	// wall (5,0 7x10) between the camera and the enemy
	e := model.NewMeleeEnemy(w.IDs().NextEnemyID(), model.NewVec3(12, 1, 0), 0.005)
	w.AddEnemy(e)

	res := m.Hitscan(w, eye(0, 0), model.NewVec3(1, 0, 0))
	assert.True(t, res.Hit)
}

func TestHitscan_Empty(t *testing.T) {
	w := newWorld(geo.Layout{}, eye(0, 0))
	m := NewCombatManager()

	assert.False(t, m.Hitscan(w, eye(0, 0), model.NewVec3(1, 0, 0)).Hit)
	assert.False(t, m.Hitscan(w, eye(0, 0), model.Vec3{}).Hit, "zero direction")
}
