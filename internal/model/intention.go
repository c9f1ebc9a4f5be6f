package model

// Intention represents the last AI decision of an enemy
type Intention int32

const (
	// IntentionIdle - enemy has not been ticked yet
	IntentionIdle Intention = iota
	// IntentionChase - moving straight towards the player
	IntentionChase
	// IntentionSidestep - direct path blocked, moving along a canonical direction
	IntentionSidestep
	// IntentionRetreat - every direction blocked, backing away
	IntentionRetreat
	// IntentionAttack - dealing contact damage or firing a projectile
	IntentionAttack
	// IntentionHold - ranged enemy holding position (close enough or no line of sight)
	IntentionHold
)

// String returns human-readable intention name
func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "IDLE"
	case IntentionChase:
		return "CHASE"
	case IntentionSidestep:
		return "SIDESTEP"
	case IntentionRetreat:
		return "RETREAT"
	case IntentionAttack:
		return "ATTACK"
	case IntentionHold:
		return "HOLD"
	default:
		return "UNKNOWN"
	}
}
