package fx

import (
	"testing"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
)

func TestList_TickPrunesExpired(t *testing.T) {
	l := NewList()
	pos := model.NewVec3(1, 1, 1)

	l.Spawn(1, KindTracer, pos, pos, 0)
	l.Spawn(2, KindHit, pos, model.Vec3{}, 0)
	l.Spawn(3, KindDeath, pos, model.Vec3{}, 0)

	if got := l.Tick(constants.TracerMs - 1); got != 0 {
		t.Errorf("Tick(%d) removed %d, want 0", constants.TracerMs-1, got)
	}
	if got := l.Tick(constants.TracerMs); got != 1 {
		t.Errorf("Tick(%d) removed %d, want 1", constants.TracerMs, got)
	}
	if got := l.Tick(constants.HitEffectMs); got != 1 {
		t.Errorf("Tick(%d) removed %d, want 1", constants.HitEffectMs, got)
	}

	active := l.Active()
	if len(active) != 1 || active[0].Kind != KindDeath {
		t.Fatalf("Active() = %+v, want only the death effect", active)
	}

	l.Tick(constants.DeathEffectMs)
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestList_ActiveIsCopy(t *testing.T) {
	l := NewList()
	l.Spawn(1, KindHit, model.Vec3{}, model.Vec3{}, 0)

	active := l.Active()
	active[0].Kind = KindDeath

	if got := l.Active()[0].Kind; got != KindHit {
		t.Errorf("Active()[0].Kind = %v, want %v", got, KindHit)
	}
}

func TestEffect_Progress(t *testing.T) {
	e := Effect{StartedAtMs: 100, ExpiresAtMs: 300}

	tests := []struct {
		now  int64
		want float64
	}{
		{50, 0},
		{100, 0},
		{200, 0.5},
		{300, 1},
		{400, 1},
	}
	for _, tt := range tests {
		if got := e.Progress(tt.now); got != tt.want {
			t.Errorf("Progress(%d) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestList_Clear(t *testing.T) {
	l := NewList()
	l.Spawn(1, KindDashTrail, model.Vec3{}, model.NewVec3(0, 0, 10), 0)
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
}

func TestKind_String(t *testing.T) {
	if got := KindTracer.String(); got != "TRACER" {
		t.Errorf("KindTracer.String() = %q, want %q", got, "TRACER")
	}
	if got := Kind(99).String(); got != "UNKNOWN" {
		t.Errorf("Kind(99).String() = %q, want %q", got, "UNKNOWN")
	}
}
