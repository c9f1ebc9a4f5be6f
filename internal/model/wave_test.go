package model

import "testing"

func TestQuotaFor(t *testing.T) {
	tests := []struct {
		wave int
		want int
	}{
		{1, 5},
		{2, 8},
		{3, 11},
		{4, 14},
		{10, 32},
	}

	for _, tt := range tests {
		if got := QuotaFor(tt.wave); got != tt.want {
			t.Errorf("QuotaFor(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestWaveState_Advance(t *testing.T) {
	w := NewWaveState()
	w.Killed = w.Quota
	w.Score = 50

	if !w.QuotaReached() {
		t.Fatal("QuotaReached() = false at quota")
	}

	w.Advance()

	if w.Wave != 2 || w.Killed != 0 || w.Quota != 8 {
		t.Errorf("after Advance() = %+v, want wave 2, killed 0, quota 8", w)
	}
	if w.Score != 50 {
		t.Errorf("Score = %d, want preserved 50", w.Score)
	}
	if w.WavesCompleted() != 1 {
		t.Errorf("WavesCompleted() = %d, want 1", w.WavesCompleted())
	}
}

func TestWaveState_ProgressPercent(t *testing.T) {
	w := NewWaveState()
	w.Killed = 2

	if got := w.ProgressPercent(); got != 40 {
		t.Errorf("ProgressPercent() = %v, want 40", got)
	}
}
