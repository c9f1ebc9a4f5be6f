package snapshot

import (
	"math"

	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
)

// CellKind is what a minimap cell shows. Later kinds are drawn over earlier ones.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellSite
	CellSpawn
	CellProjectile
	CellMelee
	CellRanged
	CellPlayer
)

// Cell is one minimap cell. Zone is meaningful for CellWall only.
type Cell struct {
	Kind CellKind
	Zone geo.Zone
	// Label is the marker name for CellSite and CellSpawn ("A", "defender", ...).
	Label string
}

// Minimap projects world (x, z) in [-half, half]² onto a Width×Height grid.
// Column grows with x, row grows with z.
type Minimap struct {
	Width  int
	Height int

	half   float64
	static []Cell
}

// NewMinimap rasterizes the static layer (walls by zone, sites, spawn markers) of idx.
func NewMinimap(idx *geo.Index, width, height int) *Minimap {
	m := &Minimap{
		Width:  max(width, 1),
		Height: max(height, 1),
		half:   idx.HalfExtent(),
	}
	m.static = make([]Cell, m.Width*m.Height)

	for _, w := range idx.Walls() {
		c0, r0 := m.clamp(w.CenterX-w.HalfWidth, w.CenterZ-w.HalfDepth)
		c1, r1 := m.clamp(w.CenterX+w.HalfWidth, w.CenterZ+w.HalfDepth)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				m.static[r*m.Width+c] = Cell{Kind: CellWall, Zone: w.Zone}
			}
		}
	}

	layout := idx.Layout()
	for _, s := range layout.Sites {
		if c, r, ok := m.Project(s.X, s.Z); ok {
			m.static[r*m.Width+c] = Cell{Kind: CellSite, Label: s.Name}
		}
	}
	for _, s := range layout.SpawnPoints {
		if c, r, ok := m.Project(s.X, s.Z); ok {
			m.static[r*m.Width+c] = Cell{Kind: CellSpawn, Label: s.Name}
		}
	}
	return m
}

// Project maps world (x, z) to a cell. ok is false outside the map square.
func (m *Minimap) Project(x, z float64) (col, row int, ok bool) {
	if math.Abs(x) > m.half || math.Abs(z) > m.half {
		return 0, 0, false
	}
	col, row = m.clamp(x, z)
	return col, row, true
}

// clamp projects and clamps to the grid; the +half edge belongs to the last cell.
func (m *Minimap) clamp(x, z float64) (col, row int) {
	col = int(math.Floor((x + m.half) / (2 * m.half) * float64(m.Width)))
	row = int(math.Floor((z + m.half) / (2 * m.half) * float64(m.Height)))
	return min(max(col, 0), m.Width-1), min(max(row, 0), m.Height-1)
}

// Render overlays the dynamic markers of f on the static layer.
// The result is row-major: cells[row*Width+col].
func (m *Minimap) Render(f Frame) []Cell {
	cells := make([]Cell, len(m.static))
	copy(cells, m.static)

	put := func(x, z float64, kind CellKind) {
		if c, r, ok := m.Project(x, z); ok {
			cells[r*m.Width+c] = Cell{Kind: kind}
		}
	}
	for _, p := range f.Projectiles {
		put(p.X, p.Z, CellProjectile)
	}
	for _, e := range f.Enemies {
		switch e.Kind {
		case model.EnemyRanged:
			put(e.X, e.Z, CellRanged)
		default:
			put(e.X, e.Z, CellMelee)
		}
	}
	put(f.Player.X, f.Player.Z, CellPlayer)
	return cells
}

// At returns the static cell at (col, row).
func (m *Minimap) At(col, row int) Cell {
	return m.static[row*m.Width+col]
}
