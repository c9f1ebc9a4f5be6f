package movement

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
)

const frame = constants.ReferenceFrameMs

var lookNorth = model.NewVec3(0, 0, -1)

func newPlayer(x, z float64) *model.Player {
	return model.NewPlayer(model.NewVec3(x, constants.PlayerEyeHeight, z), model.DefaultPlayerTuning())
}

func TestStep_AxialMove(t *testing.T) {
	r := NewResolver(geo.NewDefaultIndex())
	p := newPlayer(0, 0)

	res := r.Step(p, model.InputState{Forward: true}, lookNorth, frame, false)

	if res.Blocked || res.Collided || res.Reverted {
		t.Fatalf("Step() = %+v, want a clean move", res)
	}
	if math.Abs(p.Position.Z+constants.PlayerMoveSpeed) > 1e-9 || p.Position.X != 0 {
		t.Errorf("Position = %+v, want z = -0.2", p.Position)
	}
}

func TestStep_ViewRelative(t *testing.T) {
	r := NewResolver(geo.NewDefaultIndex())
	p := newPlayer(0, 0)

	// facing +X, strafing right moves towards +Z
	r.Step(p, model.InputState{Right: true}, model.NewVec3(1, 0, 0), frame, false)

	if math.Abs(p.Position.Z-constants.PlayerMoveSpeed) > 1e-9 || math.Abs(p.Position.X) > 1e-9 {
		t.Errorf("Position = %+v, want z = +0.2", p.Position)
	}
}

func TestStep_DiagonalNormalized(t *testing.T) {
	r := NewResolver(geo.NewDefaultIndex())
	p := newPlayer(0, 0)

	r.Step(p, model.InputState{Forward: true, Left: true}, lookNorth, frame, false)

	got := p.Position.Horizontal().Len()
	want := constants.PlayerMoveSpeed * constants.DiagonalFactor * math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("diagonal step = %v, want %v", got, want)
	}
}

func TestStep_FrameScale(t *testing.T) {
	if got := FrameScale(frame); got != 1 {
		t.Errorf("FrameScale(frame) = %v, want 1", got)
	}
	if got := FrameScale(0); got != 0 {
		t.Errorf("FrameScale(0) = %v, want 0", got)
	}
	if got := FrameScale(10_000); got != constants.MaxFrameScale {
		t.Errorf("FrameScale(10s) = %v, want %v", got, constants.MaxFrameScale)
	}
}

func TestStep_BlockedAtBoundary(t *testing.T) {
	r := NewResolver(geo.NewIndex(geo.Layout{}))
	p := newPlayer(49.9, 0)

	res := r.Step(p, model.InputState{Forward: true}, model.NewVec3(1, 0, 0), frame, false)

	if !res.Blocked {
		t.Error("Blocked = false for a move past the boundary")
	}
	if p.Position.X != 49.9 {
		t.Errorf("X = %v, want unchanged 49.9", p.Position.X)
	}
}

func TestStep_BlockedByFootprint(t *testing.T) {
	layout := geo.Layout{Zones: map[geo.Zone][]geo.Rect{
		geo.ZoneMid: {{X: 2, Z: 0, W: 0.2, D: 10}},
	}}
	r := NewResolver(geo.NewIndex(layout))
	p := newPlayer(1.35, 0)

	// three frames = 0.6 units lands at x=1.95, inside the 1.9..2.1 footprint
	res := r.Step(p, model.InputState{Forward: true}, model.NewVec3(1, 0, 0), 3*frame, false)

	if !res.Blocked {
		t.Errorf("Step() = %+v, want Blocked", res)
	}
	if p.Position.X != 1.35 {
		t.Errorf("X = %v, want unchanged 1.35", p.Position.X)
	}
}

func TestStep_WallPushOut(t *testing.T) {
	idx := geo.NewDefaultIndex()
	r := NewResolver(idx)
	// wall (5,0 7x10) west face is at x=1.5
	p := newPlayer(0.9, 0)

	res := r.Step(p, model.InputState{Forward: true}, model.NewVec3(1, 0, 0), frame, false)

	if !res.Collided {
		t.Fatalf("Step() = %+v, want Collided", res)
	}
	if res.Reverted {
		t.Errorf("Step() reverted, want push-out to succeed")
	}
	if p.Position.X >= 0.9 {
		t.Errorf("X = %v, want pushed back below 0.9", p.Position.X)
	}
	if p.Position.Y != constants.PlayerEyeHeight {
		t.Errorf("Y = %v, want clamped to eye height", p.Position.Y)
	}
	if idx.AnyOverlap(PlayerBox(p.Position)) {
		t.Error("player box still overlaps a wall")
	}
}

func TestStep_JumpArc(t *testing.T) {
	r := NewResolver(geo.NewIndex(geo.Layout{}))
	p := newPlayer(0, 0)

	r.Step(p, model.InputState{Jump: true}, lookNorth, frame, false)

	wantY := constants.PlayerEyeHeight + constants.JumpForce - constants.Gravity
	if math.Abs(p.Position.Y-wantY) > 1e-9 {
		t.Fatalf("Y after first tick = %v, want %v", p.Position.Y, wantY)
	}
	if !p.IsJumping {
		t.Fatal("IsJumping = false after jump")
	}

	landed := false
	for i := 0; i < 100 && !landed; i++ {
		res := r.Step(p, model.InputState{}, lookNorth, frame, false)
		landed = res.Landed
	}

	if !landed {
		t.Fatal("player never landed")
	}
	if p.Position.Y != constants.PlayerEyeHeight || p.IsJumping || p.VerticalVelocity != 0 {
		t.Errorf("after landing: y=%v jumping=%v vv=%v", p.Position.Y, p.IsJumping, p.VerticalVelocity)
	}
}

func TestStep_HeldJumpDoesNotDoubleJump(t *testing.T) {
	r := NewResolver(geo.NewIndex(geo.Layout{}))
	p := newPlayer(0, 0)

	r.Step(p, model.InputState{Jump: true}, lookNorth, frame, false)
	vv := p.VerticalVelocity
	r.Step(p, model.InputState{Jump: true}, lookNorth, frame, false)

	if p.VerticalVelocity >= vv {
		t.Errorf("VerticalVelocity = %v, want decreasing from %v while airborne", p.VerticalVelocity, vv)
	}
}

func TestStep_DashingIgnoresInput(t *testing.T) {
	r := NewResolver(geo.NewDefaultIndex())
	p := newPlayer(0, 0)

	r.Step(p, model.InputState{Forward: true}, lookNorth, frame, true)

	if p.Position.Z != 0 || p.Position.X != 0 {
		t.Errorf("Position = %+v, want unchanged while dashing", p.Position)
	}
}

func TestStep_ContainmentRandomWalk(t *testing.T) {
	idx := geo.NewDefaultIndex()
	r := NewResolver(idx)
	rng := rand.New(rand.NewPCG(constants.TestSeed, constants.TestSeed))
	p := newPlayer(0, 45)

	for tick := range 20_000 {
		in := model.InputState{
			Forward:  rng.Float64() < 0.7,
			Backward: rng.Float64() < 0.1,
			Left:     rng.Float64() < 0.3,
			Right:    rng.Float64() < 0.3,
			Jump:     rng.Float64() < 0.05,
		}
		view := model.DirectionFromYaw(rng.Float64() * 2 * math.Pi)
		dt := frame * (0.5 + rng.Float64()*3)

		r.Step(p, in, view, dt, false)

		if !idx.IsOutsideWalls(p.Position) {
			t.Fatalf("tick %d: position %+v violates containment", tick, p.Position)
		}
		if math.Abs(p.Position.X) > constants.MapHalfExtent || math.Abs(p.Position.Z) > constants.MapHalfExtent {
			t.Fatalf("tick %d: position %+v outside map", tick, p.Position)
		}
		if p.Position.Y < constants.PlayerEyeHeight {
			t.Fatalf("tick %d: y=%v below eye height", tick, p.Position.Y)
		}
	}
}

func TestViewForward(t *testing.T) {
	if got := ViewForward(model.NewVec3(0, 1, 0)); got != lookNorth {
		t.Errorf("ViewForward(up) = %+v, want %+v", got, lookNorth)
	}
	got := ViewForward(model.NewVec3(3, 5, 4))
	if math.Abs(got.X-0.6) > 1e-9 || math.Abs(got.Z-0.8) > 1e-9 || got.Y != 0 {
		t.Errorf("ViewForward() = %+v, want {0.6 0 0.8}", got)
	}
}
