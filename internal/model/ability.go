package model

// AbilityKind identifies a player ability.
type AbilityKind uint8

const (
	AbilityDash AbilityKind = iota + 1
	AbilityUpdraft
)

// String returns human-readable ability name.
func (k AbilityKind) String() string {
	switch k {
	case AbilityDash:
		return "DASH"
	case AbilityUpdraft:
		return "UPDRAFT"
	default:
		return "UNKNOWN"
	}
}

// AbilityPhase is the derived state of an ability at a given time.
type AbilityPhase uint8

const (
	AbilityReady AbilityPhase = iota
	AbilityActive
	AbilityCooling
)

// String returns human-readable phase name.
func (p AbilityPhase) String() string {
	switch p {
	case AbilityReady:
		return "READY"
	case AbilityActive:
		return "ACTIVE"
	case AbilityCooling:
		return "COOLING"
	default:
		return "UNKNOWN"
	}
}

// AbilityState: cooldown-gated способность игрока.
// Состояние вычисляется лениво из времени последнего использования, таймеров нет.
type AbilityState struct {
	Kind       AbilityKind
	CooldownMs int64
	// Magnitude is the dash distance or the updraft force.
	Magnitude float64
	// DurationMs is non-zero only for animated abilities.
	DurationMs int64

	Cooldown
}

// NewAbilityState creates a ready ability.
func NewAbilityState(kind AbilityKind, cooldownMs int64, magnitude float64, durationMs int64) AbilityState {
	return AbilityState{
		Kind:       kind,
		CooldownMs: cooldownMs,
		Magnitude:  magnitude,
		DurationMs: durationMs,
	}
}

// Phase evaluates the ability state at nowMs.
func (a AbilityState) Phase(nowMs int64) AbilityPhase {
	if a.Elapsed(nowMs, a.CooldownMs) {
		return AbilityReady
	}
	if a.DurationMs > 0 && nowMs-a.LastUsedAtMs < a.DurationMs {
		return AbilityActive
	}
	return AbilityCooling
}

// TryActivate records a use if the ability is ready.
// Returns false (and changes nothing) while cooling.
func (a *AbilityState) TryActivate(nowMs int64) bool {
	if !a.Elapsed(nowMs, a.CooldownMs) {
		return false
	}
	a.Mark(nowMs)
	return true
}

// RemainingMs returns the cooldown left at nowMs.
func (a AbilityState) RemainingMs(nowMs int64) int64 {
	return a.Remaining(nowMs, a.CooldownMs)
}
