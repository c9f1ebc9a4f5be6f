package model

// Cooldown tracks the last use of a rate-limited action.
// A cooldown that has never been used is always elapsed.
type Cooldown struct {
	LastUsedAtMs int64
	Used         bool
}

// Elapsed reports whether at least periodMs passed since the last use.
func (c Cooldown) Elapsed(nowMs, periodMs int64) bool {
	return !c.Used || nowMs-c.LastUsedAtMs >= periodMs
}

// Remaining returns milliseconds left until Elapsed becomes true (0 if already elapsed).
func (c Cooldown) Remaining(nowMs, periodMs int64) int64 {
	if c.Elapsed(nowMs, periodMs) {
		return 0
	}
	return periodMs - (nowMs - c.LastUsedAtMs)
}

// Mark records a use at nowMs.
func (c *Cooldown) Mark(nowMs int64) {
	c.LastUsedAtMs = nowMs
	c.Used = true
}
