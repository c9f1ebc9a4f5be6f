package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/config"
	"github.com/udisondev/zombiearena/internal/db"
)

const (
	scoreboardQueue   = 8
	scoreboardTimeout = 5 * time.Second
)

// scoreboard persists finished runs off the simulation goroutine.
// With an empty DSN it only logs results.
type scoreboard struct {
	database    *db.DB
	runs        *db.RunRepository
	fingerprint string
	topN        int
	results     chan arena.Result
}

func openScoreboard(ctx context.Context, cfg config.ScoreboardConfig, fingerprint string) (*scoreboard, error) {
	b := &scoreboard{
		fingerprint: fingerprint,
		topN:        cfg.TopN,
		results:     make(chan arena.Result, scoreboardQueue),
	}
	if !cfg.Enabled() {
		slog.Info("scoreboard disabled")
		return b, nil
	}

	if cfg.Migrate {
		if _, err := db.RunMigrations(ctx, cfg.DSN); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}
	database, err := db.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	b.database = database
	b.runs = database.Runs()
	slog.Info("scoreboard connected", "layout", fingerprint)
	return b, nil
}

// Submit queues a finished run. Called on the simulation goroutine; never blocks.
func (b *scoreboard) Submit(res arena.Result) {
	select {
	case b.results <- res:
	default:
		slog.Warn("scoreboard queue full, run dropped", "runID", res.RunID, "score", res.Score)
	}
}

// Run writes queued runs until ctx is canceled. status receives a one-line summary per run.
func (b *scoreboard) Run(ctx context.Context, status func(string)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-b.results:
			line, err := b.store(ctx, res)
			if err != nil {
				slog.Error("storing run", "runID", res.RunID, "err", err)
				continue
			}
			if line != "" && status != nil {
				status(line)
			}
		}
	}
}

func (b *scoreboard) store(ctx context.Context, res arena.Result) (string, error) {
	if b.runs == nil {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, scoreboardTimeout)
	defer cancel()

	if err := b.runs.Insert(ctx, res); err != nil {
		return "", err
	}
	top, err := b.runs.TopN(ctx, b.fingerprint, b.topN)
	if err != nil {
		return "", err
	}

	slog.Info("run stored", "runID", res.RunID, "score", res.Score, "top", len(top))
	for i, r := range top {
		if r.RunID == res.RunID {
			return fmt.Sprintf("New #%d on the scoreboard! score %d", i+1, res.Score), nil
		}
	}
	if len(top) > 0 {
		return fmt.Sprintf("Best %d, yours %d", top[0].Score, res.Score), nil
	}
	return "", nil
}

// Close releases the database pool.
func (b *scoreboard) Close() {
	if b.database != nil {
		b.database.Close()
	}
}
