package model

import "github.com/udisondev/zombiearena/internal/constants"

// WaveState: счётчики волны и очки.
// Инвариант: Killed <= Quota; при равенстве волна сразу переключается.
type WaveState struct {
	Wave   int
	Quota  int
	Killed int
	Score  int

	// TotalKills counts every kill of the session, across waves.
	TotalKills int
}

// QuotaFor returns the kill quota of a wave: 5 + (wave-1)*3.
func QuotaFor(wave int) int {
	return constants.WaveBaseQuota + (wave-1)*constants.WaveQuotaStep
}

// NewWaveState returns the state at the beginning of a session.
func NewWaveState() WaveState {
	return WaveState{Wave: 1, Quota: QuotaFor(1)}
}

// QuotaReached reports whether the current wave is complete.
func (w WaveState) QuotaReached() bool {
	return w.Killed >= w.Quota
}

// Advance moves to the next wave and resets the kill counter.
func (w *WaveState) Advance() {
	w.Wave++
	w.Killed = 0
	w.Quota = QuotaFor(w.Wave)
}

// ProgressPercent returns kills/quota as a percentage.
func (w WaveState) ProgressPercent() float64 {
	if w.Quota <= 0 {
		return 0
	}
	return float64(w.Killed) / float64(w.Quota) * 100
}

// WavesCompleted returns the number of fully cleared waves.
func (w WaveState) WavesCompleted() int {
	return w.Wave - 1
}
