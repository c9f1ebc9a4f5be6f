package model

// OwnerType identifies who fired a projectile.
type OwnerType uint8

const (
	OwnerRangedEnemy OwnerType = iota + 1
)

// String returns human-readable owner type.
func (o OwnerType) String() string {
	switch o {
	case OwnerRangedEnemy:
		return "RANGED_ENEMY"
	default:
		return "UNKNOWN"
	}
}

// Projectile: снаряд дальнобойного врага.
// Velocity задаётся в единицах за миллисекунду.
type Projectile struct {
	ID       uint32
	Position Vec3
	// Origin is the spawn point; expiry is measured from it.
	Origin   Vec3
	Velocity Vec3
	Damage   int32
	Owner    OwnerType
	OwnerID  uint32
}

// NewProjectile creates a projectile at pos moving with velocity.
func NewProjectile(id uint32, pos, velocity Vec3, damage int32, owner OwnerType, ownerID uint32) *Projectile {
	return &Projectile{
		ID:       id,
		Position: pos,
		Origin:   pos,
		Velocity: velocity,
		Damage:   damage,
		Owner:    owner,
		OwnerID:  ownerID,
	}
}

// Travelled returns the displacement from the spawn point.
func (p *Projectile) Travelled() float64 {
	return p.Position.DistanceTo(p.Origin)
}
