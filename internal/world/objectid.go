package world

import (
	"sync/atomic"

	"github.com/udisondev/zombiearena/internal/constants"
)

// ObjectIDGenerator generates unique IDs for world entities.
//
// ID ranges (convention, see constants):
//
//	0x00000000:              invalid
//	0x10000000 - 0x1FFFFFFF: enemies
//	0x20000000 - 0x2FFFFFFF: projectiles
//	0x30000000 - 0x3FFFFFFF: transient effects
//
// One generator per World; a restart gets fresh ranges.
type ObjectIDGenerator struct {
	nextEnemyID      atomic.Uint32
	nextProjectileID atomic.Uint32
	nextEffectID     atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextEnemyID.Store(constants.EnemyIDStart)
	gen.nextProjectileID.Store(constants.ProjectileIDStart)
	gen.nextEffectID.Store(constants.EffectIDStart)
	return gen
}

// NextEnemyID returns the next enemy ID.
func (g *ObjectIDGenerator) NextEnemyID() uint32 {
	return g.nextEnemyID.Add(1)
}

// NextProjectileID returns the next projectile ID.
func (g *ObjectIDGenerator) NextProjectileID() uint32 {
	return g.nextProjectileID.Add(1)
}

// NextEffectID returns the next transient effect ID.
func (g *ObjectIDGenerator) NextEffectID() uint32 {
	return g.nextEffectID.Add(1)
}
