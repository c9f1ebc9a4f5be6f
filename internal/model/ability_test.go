package model

import (
	"testing"

	"github.com/udisondev/zombiearena/internal/constants"
)

func TestAbilityState_CooldownMonotonicity(t *testing.T) {
	a := NewAbilityState(AbilityUpdraft, constants.UpdraftCooldownMs, constants.UpdraftForce, 0)

	if !a.TryActivate(10_000) {
		t.Fatal("first TryActivate() = false, want true")
	}
	last := a.LastUsedAtMs

	// second attempt inside the cooldown window is a no-op
	if a.TryActivate(10_000 + constants.UpdraftCooldownMs - 1) {
		t.Error("TryActivate() inside cooldown = true, want false")
	}
	if a.LastUsedAtMs != last {
		t.Errorf("LastUsedAtMs = %d, want unchanged %d", a.LastUsedAtMs, last)
	}

	if !a.TryActivate(10_000 + constants.UpdraftCooldownMs) {
		t.Error("TryActivate() at cooldown boundary = false, want true")
	}
}

func TestAbilityState_Phase(t *testing.T) {
	a := NewAbilityState(AbilityDash, constants.DashCooldownMs, constants.DashDistance, constants.DashDurationMs)

	tests := []struct {
		name string
		now  int64
		want AbilityPhase
	}{
		{"never used", 0, AbilityReady},
		{"animating", 1000 + constants.DashDurationMs - 1, AbilityActive},
		{"cooling", 1000 + constants.DashDurationMs, AbilityCooling},
		{"ready again", 1000 + constants.DashCooldownMs, AbilityReady},
	}

	for i, tt := range tests {
		if i == 1 {
			a.TryActivate(1000)
		}
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Phase(tt.now); got != tt.want {
				t.Errorf("Phase(%d) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestAbilityState_RemainingMs(t *testing.T) {
	a := NewAbilityState(AbilityUpdraft, 8000, 0.35, 0)
	a.TryActivate(500)

	if got := a.RemainingMs(2500); got != 6000 {
		t.Errorf("RemainingMs(2500) = %d, want 6000", got)
	}
	if got := a.RemainingMs(9000); got != 0 {
		t.Errorf("RemainingMs(9000) = %d, want 0", got)
	}
}

func TestAbilityKindString(t *testing.T) {
	if AbilityDash.String() != "DASH" || AbilityUpdraft.String() != "UPDRAFT" || AbilityKind(0).String() != "UNKNOWN" {
		t.Error("AbilityKind.String() mismatch")
	}
}
