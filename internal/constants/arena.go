package constants

// Map geometry.
const (
	// MapHalfExtent is the half size of the square playable area (±50 on X and Z).
	MapHalfExtent = 50.0

	// DefaultWallHeight is used when a layout entry has no explicit height.
	DefaultWallHeight = 4.0
)

// Player movement and physics.
const (
	// PlayerEyeHeight is the camera height above the floor; the player never rests below it.
	PlayerEyeHeight = 1.6

	// PlayerMoveSpeed is the horizontal distance covered per reference frame.
	PlayerMoveSpeed = 0.2

	// DiagonalFactor scales diagonal input so that diagonal speed equals axial speed (≈1/√2).
	DiagonalFactor = 0.7071

	// Gravity is subtracted from vertical velocity every reference frame.
	Gravity = 0.02

	// JumpForce is the initial vertical velocity of a jump.
	JumpForce = 0.25

	// ReferenceFrameMs is the frame length player motion constants are tuned for (60 Hz).
	ReferenceFrameMs = 1000.0 / 60.0

	// MaxFrameScale caps player motion after a long stall so the player cannot skip walls.
	MaxFrameScale = 3.0

	// PlayerBoxWidth, PlayerBoxHeight, PlayerBoxDepth describe the collision box centred at the eye.
	PlayerBoxWidth  = 1.0
	PlayerBoxHeight = 3.2
	PlayerBoxDepth  = 1.0

	// CollisionBuffer is added to the least-penetration push-out.
	CollisionBuffer = 0.1

	// CollisionBounce is the extra push along the wall-centre → player vector.
	CollisionBounce = 0.3

	// VerticalDamping multiplies vertical velocity on any wall contact.
	VerticalDamping = 0.5

	// PlayerMaxHealth is the starting (and maximum) player health.
	PlayerMaxHealth = 100
)

// Player weapon.
const (
	// ShootCooldownMs is the minimum interval between two hitscan shots while fire is held.
	ShootCooldownMs = 130

	// HitscanDamage is applied to the nearest enemy hit by a shot.
	HitscanDamage = 50

	// MeleeKillScore and RangedKillScore are awarded by the wave director.
	MeleeKillScore  = 10
	RangedKillScore = 20
)

// Abilities.
const (
	DashCooldownMs  = 6000
	DashDistance    = 10.0
	DashDurationMs  = 200
	DashSearchSteps = 10

	UpdraftCooldownMs = 8000
	UpdraftForce      = 0.35
)

// Enemies.
const (
	// EnemySpawnHeight is the Y coordinate every enemy lives at.
	EnemySpawnHeight = 1.0

	// EnemyBaseSpeed and EnemySpeedJitter give speed = base + U[0,1)·jitter, units per ms.
	EnemyBaseSpeed   = 0.004
	EnemySpeedJitter = 0.007

	MeleeHealth       = 100
	MeleeContactRange = 1.5
	MeleeDamage       = 10
	MeleePushDistance = 1.0

	// MeleeRetreatFactor scales the retreat step when every side-step is blocked.
	MeleeRetreatFactor = 0.5

	RangedHealth          = 150
	RangedFireRange       = 20.0
	RangedApproachRange   = 15.0
	RangedShootCooldownMs = 3000
	ProjectileSpeed       = 0.01
	ProjectileDamage      = 10

	// ProjectileMuzzleHeight is added to the enemy Y when a projectile is spawned.
	ProjectileMuzzleHeight = 0.5

	// ProjectileHitRadius is the distance to the player eye that counts as a hit.
	ProjectileHitRadius = 1.0

	// ProjectileMaxTravel is the displacement from the spawn point after which a projectile expires.
	ProjectileMaxTravel = 100.0
)

// Enemy hit boxes (half extents) used by hitscan.
const (
	MeleeHalfWidth   = 0.5
	MeleeHalfHeight  = 1.0
	RangedHalfWidth  = 0.5
	RangedHalfHeight = 0.25
)

// Waves and spawning.
const (
	// WaveBaseQuota and WaveQuotaStep give quota(wave) = base + (wave-1)·step.
	WaveBaseQuota = 5
	WaveQuotaStep = 3

	// LiveEnemyFloor: replacements are spawned only while fewer enemies are alive.
	LiveEnemyFloor = 10

	// RangedReplacementChance applies from RangedFirstWave onwards.
	RangedReplacementChance = 0.3
	RangedFirstWave         = 2

	// MixedWaveFirst is the first wave whose start batch contains ranged enemies.
	MixedWaveFirst = 3

	WaveStartMaxRanged     = 3
	WaveStartMaxMelee      = 7
	WaveStartMaxMeleeEarly = 10

	SpawnExclusionRadius = 15.0
	SpawnAttemptBudget   = 50

	// MeleeSpawnRange and RangedSpawnRange are the half extents of the sampling square.
	MeleeSpawnRange  = 50.0
	RangedSpawnRange = 45.0

	// PlayerSpawnZ is the distance of the two player spawn markers from the centre line.
	PlayerSpawnZ = 45.0
)

// Ambient growl.
const (
	GrowlInitialCooldownMs = 5000
	GrowlMinCooldownMs     = 3000
	GrowlCooldownJitterMs  = 1000
	GrowlRadius            = 30.0
	GrowlChance            = 0.7
)

// Transient effect lifetimes.
const (
	HitEffectMs   = 700
	DeathEffectMs = 800
	TracerMs      = 50
)
