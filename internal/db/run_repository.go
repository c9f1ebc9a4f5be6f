package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/zombiearena/internal/arena"
)

// ErrRunNotFound is returned by Get for an unknown run id.
var ErrRunNotFound = errors.New("db: run not found")

// RunRepository stores finished runs. Game state itself is never persisted.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a new run repository.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

const runColumns = `run_id, started_at, ended_at, score, waves_completed, kills, ticks, layout_fingerprint`

// Insert saves a finished run.
func (r *RunRepository) Insert(ctx context.Context, res arena.Result) error {
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO runs (`+runColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.RunID, res.StartedAt, res.EndedAt, res.Score, res.WavesCompleted, res.Kills,
		int64(res.Ticks), res.LayoutFingerprint); err != nil {
		return fmt.Errorf("insert run %s: %w", res.RunID, err)
	}
	return nil
}

// Get loads one run by id.
func (r *RunRepository) Get(ctx context.Context, id uuid.UUID) (arena.Result, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+runColumns+` FROM runs WHERE run_id = $1`, id)

	res, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return arena.Result{}, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return arena.Result{}, fmt.Errorf("querying run %s: %w", id, err)
	}
	return res, nil
}

// TopN returns the best n runs on a layout, highest score first; ties go to the earlier finish.
func (r *RunRepository) TopN(ctx context.Context, fingerprint string, n int) ([]arena.Result, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+runColumns+` FROM runs
		 WHERE layout_fingerprint = $1
		 ORDER BY score DESC, ended_at ASC
		 LIMIT $2`, fingerprint, n)
	if err != nil {
		return nil, fmt.Errorf("query top runs: %w", err)
	}
	defer rows.Close()

	var result []arena.Result
	for rows.Next() {
		res, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}
	return result, nil
}

func scanRun(row pgx.Row) (arena.Result, error) {
	var (
		res   arena.Result
		ticks int64
	)
	err := row.Scan(&res.RunID, &res.StartedAt, &res.EndedAt, &res.Score,
		&res.WavesCompleted, &res.Kills, &ticks, &res.LayoutFingerprint)
	if err != nil {
		return arena.Result{}, err
	}
	res.Ticks = uint64(ticks)
	return res, nil
}
