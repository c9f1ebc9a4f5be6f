package arena

import (
	"time"

	"github.com/google/uuid"
)

// Result is the summary of a finished run, persisted to the scoreboard.
type Result struct {
	RunID          uuid.UUID
	StartedAt      time.Time
	EndedAt        time.Time
	Score          int
	WavesCompleted int
	Kills          int
	Ticks          uint64

	// LayoutFingerprint identifies the map the run was played on.
	LayoutFingerprint string
}

// Duration returns the wall-clock length of the run.
func (r Result) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}
