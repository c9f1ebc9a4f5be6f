package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/testutil"
)

func newResult(score int, ended time.Time, fingerprint string) arena.Result {
	return arena.Result{
		RunID:             uuid.New(),
		StartedAt:         ended.Add(-3 * time.Minute),
		EndedAt:           ended,
		Score:             score,
		WavesCompleted:    score / 50,
		Kills:             score / 10,
		Ticks:             10_800,
		LayoutFingerprint: fingerprint,
	}
}

func TestRunRepository_InsertGet(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := testutil.ContextWithTimeout(t, constants.TestDBTimeout)
	repo := NewRunRepository(pool)

	ended := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := newResult(150, ended, "layout-a")
	require.NoError(t, repo.Insert(ctx, want))

	got, err := repo.Get(ctx, want.RunID)
	require.NoError(t, err)

	assert.Equal(t, want.RunID, got.RunID)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	assert.True(t, want.EndedAt.Equal(got.EndedAt))
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.WavesCompleted, got.WavesCompleted)
	assert.Equal(t, want.Kills, got.Kills)
	assert.Equal(t, want.Ticks, got.Ticks)
	assert.Equal(t, want.LayoutFingerprint, got.LayoutFingerprint)
}

func TestRunRepository_GetNotFound(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := testutil.ContextWithTimeout(t, constants.TestDBTimeout)

	_, err := NewRunRepository(pool).Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunRepository_DuplicateInsert(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := testutil.ContextWithTimeout(t, constants.TestDBTimeout)
	repo := NewRunRepository(pool)

	res := newResult(10, time.Now().UTC(), "layout-a")
	require.NoError(t, repo.Insert(ctx, res))
	assert.Error(t, repo.Insert(ctx, res))
}

func TestRunRepository_TopN(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := testutil.ContextWithTimeout(t, constants.TestDBTimeout)
	repo := NewRunRepository(pool)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	early := newResult(200, base, "layout-a")
	late := newResult(200, base.Add(time.Hour), "layout-a")
	low := newResult(40, base, "layout-a")
	top := newResult(500, base, "layout-a")
	other := newResult(9000, base, "layout-b")

	for _, res := range []arena.Result{late, low, top, early, other} {
		require.NoError(t, repo.Insert(ctx, res))
	}

	got, err := repo.TopN(ctx, "layout-a", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, top.RunID, got[0].RunID)
	assert.Equal(t, early.RunID, got[1].RunID, "ties go to the earlier finish")
	assert.Equal(t, late.RunID, got[2].RunID)

	none, err := repo.TopN(ctx, "layout-a", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := testutil.ContextWithTimeout(t, constants.TestDBTimeout)

	dsn := pool.Config().ConnString()
	v1, err := RunMigrations(ctx, dsn)
	require.NoError(t, err)
	v2, err := RunMigrations(ctx, dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)
	assert.Equal(t, v1, v2)
}
