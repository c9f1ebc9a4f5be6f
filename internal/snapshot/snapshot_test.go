package snapshot

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/testutil"
)

func newSession(t *testing.T, idx *geo.Index) *arena.Session {
	t.Helper()
	return arena.NewSession(idx, arena.Hooks{}, arena.Options{Seed: constants.TestSeed})
}

func TestCapture(t *testing.T) {
	s := newSession(t, geo.NewIndex(geo.Layout{}))
	w := s.World()
	w.Player.Dash.Mark(0)
	s.Tick(100 * time.Millisecond)

	f := Capture(s)

	assert.Equal(t, s.RunID().String(), f.RunID)
	assert.Equal(t, uint64(1), f.Tick)
	assert.Equal(t, int64(100), f.NowMs)
	assert.Equal(t, w.Player.Position.Z, f.Player.Z)
	assert.Equal(t, int32(constants.PlayerMaxHealth), f.HUD.Health)
	assert.Equal(t, 1, f.HUD.Wave)
	assert.Len(t, f.Enemies, w.LiveEnemies())

	assert.False(t, f.HUD.Dash.Ready())
	assert.Equal(t, int64(constants.DashCooldownMs-100), f.HUD.Dash.RemainingMs)
	assert.Equal(t, int64(6), f.HUD.Dash.RemainingSeconds())
	assert.True(t, f.HUD.Updraft.Ready())
}

func TestCapture_IsCopy(t *testing.T) {
	s := newSession(t, geo.NewIndex(geo.Layout{}))
	f := Capture(s)
	require.NotEmpty(t, f.Enemies)

	f.Enemies[0].Health = -1
	assert.NotEqual(t, int32(-1), s.World().AllEnemies()[0].Health)
}

func TestMinimap_Project(t *testing.T) {
	m := NewMinimap(geo.NewIndex(geo.Layout{}), 20, 10)

	tests := []struct {
		x, z     float64
		col, row int
		ok       bool
	}{
		{-50, -50, 0, 0, true},
		{50, 50, 19, 9, true},
		{0, 0, 10, 5, true},
		{-0.1, -0.1, 9, 4, true},
		{50.1, 0, 0, 0, false},
		{0, -51, 0, 0, false},
	}
	for _, tt := range tests {
		col, row, ok := m.Project(tt.x, tt.z)
		assert.Equal(t, tt.ok, ok, "Project(%v, %v) ok", tt.x, tt.z)
		if tt.ok {
			assert.Equal(t, tt.col, col, "Project(%v, %v) col", tt.x, tt.z)
			assert.Equal(t, tt.row, row, "Project(%v, %v) row", tt.x, tt.z)
		}
	}
}

func TestMinimap_StaticLayer(t *testing.T) {
	idx := geo.NewDefaultIndex()
	m := NewMinimap(idx, 100, 100)

	// outer wall along z = -50
	assert.Equal(t, CellWall, m.At(50, 0).Kind)
	assert.Equal(t, geo.ZoneOuter, m.At(50, 0).Zone)

	// mid wall (5,0 7x10) covers cell (55, 50)
	assert.Equal(t, Cell{Kind: CellWall, Zone: geo.ZoneMid}, m.At(55, 50))

	col, row, ok := m.Project(30, 0)
	require.True(t, ok)
	assert.Equal(t, Cell{Kind: CellSite, Label: "A"}, m.At(col, row))

	col, row, ok = m.Project(0, constants.PlayerSpawnZ)
	require.True(t, ok)
	assert.Equal(t, Cell{Kind: CellSpawn, Label: "defender"}, m.At(col, row))

	// every wall centre is drawn as wall
	for _, w := range idx.Walls() {
		c, r, ok := m.Project(w.CenterX, w.CenterZ)
		if ok {
			assert.Equal(t, CellWall, m.At(c, r).Kind, "wall centre (%v, %v)", w.CenterX, w.CenterZ)
		}
	}
}

func TestMinimap_Render(t *testing.T) {
	m := NewMinimap(geo.NewIndex(geo.Layout{}), 10, 10)
	f := Frame{
		Player: PlayerView{X: 0, Z: 0},
		Enemies: []EnemyView{
			{Kind: model.EnemyMelee, X: -45, Z: -45},
			{Kind: model.EnemyRanged, X: 45, Z: 45},
		},
		Projectiles: []ProjectileView{{X: -45, Z: 45}},
	}

	cells := m.Render(f)

	assert.Equal(t, CellPlayer, cells[5*10+5].Kind)
	assert.Equal(t, CellMelee, cells[0].Kind)
	assert.Equal(t, CellRanged, cells[9*10+9].Kind)
	assert.Equal(t, CellProjectile, cells[9*10+0].Kind)
	assert.Equal(t, CellEmpty, m.At(5, 5).Kind, "Render must not modify the static layer")
}

func TestRecorder_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, 2)

	for tick := uint64(0); tick < 6; tick++ {
		require.NoError(t, r.Record(Frame{
			Tick:    tick,
			NowMs:   int64(tick) * 16,
			Player:  PlayerView{X: float64(tick)},
			Enemies: []EnemyView{{ID: 7, Kind: model.EnemyRanged, Intention: model.IntentionHold}},
		}))
	}
	require.NoError(t, r.Close())
	assert.Equal(t, 3, r.Written())

	frames, err := ReadFrames(&buf)
	require.NoError(t, err)
	require.Len(t, frames, 3)

	for i, f := range frames {
		assert.Equal(t, uint64(i*2), f.Tick)
		assert.Equal(t, float64(i*2), f.Player.X)
		require.Len(t, f.Enemies, 1)
		assert.Equal(t, model.EnemyRanged, f.Enemies[0].Kind)
		assert.Equal(t, model.IntentionHold, f.Enemies[0].Intention)
	}
}

func TestRecorder_Closed(t *testing.T) {
	r := NewRecorder(&bytes.Buffer{}, 1)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "Close is idempotent")

	assert.ErrorIs(t, r.Record(Frame{}), ErrRecorderClosed)
}

func TestCreateRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.msgpack")

	s := newSession(t, geo.NewIndex(geo.Layout{}))
	r, err := CreateRecorder(path, 1)
	require.NoError(t, err)

	for range 3 {
		s.Tick(16 * time.Millisecond)
		require.NoError(t, r.Record(Capture(s)))
	}
	require.NoError(t, r.Close())

	_, err = CreateRecorder(filepath.Join(path, "nested", "x"), 1)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, testutil.ErrSimulated }

func TestRecorder_WriteFailureSurfacesOnClose(t *testing.T) {
	rec := NewRecorder(failingWriter{}, 1)
	require.NoError(t, rec.Record(Frame{Tick: 1}), "small frames stay buffered")

	err := rec.Close()
	assert.ErrorIs(t, err, testutil.ErrSimulated)
	assert.ErrorIs(t, rec.Record(Frame{Tick: 2}), ErrRecorderClosed)
}
