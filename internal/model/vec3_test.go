package model

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"axis", NewVec3(3, 0, 0), NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(3, 0, 4), NewVec3(0.6, 0, 0.8)},
		{"zero stays zero", Vec3{}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.Z, tt.want.Z) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVec3_Distances(t *testing.T) {
	a := NewVec3(0, 1.6, 0)
	b := NewVec3(3, 1, 4)

	if got := a.HorizontalDistance(b); !near(got, 5) {
		t.Errorf("HorizontalDistance() = %v, want 5", got)
	}
	if got := a.DistanceSquared(b); !near(got, 25+0.36) {
		t.Errorf("DistanceSquared() = %v, want 25.36", got)
	}
	if got := a.DistanceTo(b); !near(got, math.Sqrt(25.36)) {
		t.Errorf("DistanceTo() = %v, want %v", got, math.Sqrt(25.36))
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(10, 0, -10)

	if got := a.Lerp(b, 0.5); got != NewVec3(5, 0, -5) {
		t.Errorf("Lerp(0.5) = %+v, want {5 0 -5}", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
}

func TestVec3_YawRoundTrip(t *testing.T) {
	for _, dir := range []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(-1, 0, 1).Normalize(),
	} {
		got := DirectionFromYaw(dir.Yaw())
		if !near(got.X, dir.X) || !near(got.Z, dir.Z) {
			t.Errorf("DirectionFromYaw(Yaw(%+v)) = %+v", dir, got)
		}
	}
}
