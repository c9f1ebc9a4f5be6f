package constants

// Entity ID ranges.
// 0 is invalid; each entity class gets its own range so an ID alone tells what it refers to.
const (
	EnemyIDStart      uint32 = 0x10000000
	EnemyIDEnd        uint32 = 0x1FFFFFFF
	ProjectileIDStart uint32 = 0x20000000
	ProjectileIDEnd   uint32 = 0x2FFFFFFF
	EffectIDStart     uint32 = 0x30000000
	EffectIDEnd       uint32 = 0x3FFFFFFF
)

// IsEnemyID returns true if id is in the enemy range.
func IsEnemyID(id uint32) bool {
	return id >= EnemyIDStart && id <= EnemyIDEnd
}

// IsProjectileID returns true if id is in the projectile range.
func IsProjectileID(id uint32) bool {
	return id >= ProjectileIDStart && id <= ProjectileIDEnd
}

// IsEffectID returns true if id is in the transient effect range.
func IsEffectID(id uint32) bool {
	return id >= EffectIDStart && id <= EffectIDEnd
}
