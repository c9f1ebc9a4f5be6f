package arena

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const commandBuffer = 16

// Command is a request from another goroutine, applied by Run between ticks.
type Command uint8

const (
	CommandPause Command = iota + 1
	CommandResume
	CommandTogglePause
	CommandRestart
)

// String returns human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandPause:
		return "PAUSE"
	case CommandResume:
		return "RESUME"
	case CommandTogglePause:
		return "TOGGLE_PAUSE"
	case CommandRestart:
		return "RESTART"
	default:
		return "UNKNOWN"
	}
}

// Post queues a command for the simulation goroutine. Safe for concurrent use.
// Returns false if the queue is full and the command was dropped.
func (s *Session) Post(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		slog.Warn("session command dropped", "command", cmd)
		return false
	}
}

// Apply executes a command on the calling goroutine.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CommandPause:
		s.SetPaused(true)
	case CommandResume:
		s.SetPaused(false)
	case CommandTogglePause:
		s.SetPaused(!s.paused)
	case CommandRestart:
		s.Restart()
	}
}

// Run ticks the session at tickRate Hz until ctx is canceled (blocks).
// frame, if not nil, is called after every tick and after every applied command,
// on the simulation goroutine (presentation refresh).
func (s *Session) Run(ctx context.Context, tickRate int, frame func(*Session)) error {
	if tickRate <= 0 {
		return fmt.Errorf("invalid tick rate %d", tickRate)
	}

	interval := time.Second / time.Duration(tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("arena loop started", "tickRate", tickRate, "interval", interval, "runID", s.runID)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("arena loop stopping", "ticks", s.ticks)
			return ctx.Err()

		case cmd := <-s.commands:
			s.Apply(cmd)
			if frame != nil {
				frame(s)
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Tick(dt)
			if frame != nil {
				frame(s)
			}
		}
	}
}
