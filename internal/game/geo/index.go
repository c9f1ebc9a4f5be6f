package geo

import (
	"math"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
)

// Index: неизменяемый набор стен карты.
// Строится один раз из Layout и никогда не мутируется, поэтому безопасен для чтения из любых горутин.
type Index struct {
	walls      []WallVolume
	boxes      []Box
	halfExtent float64
	layout     Layout
}

// NewIndex builds the spatial index from a layout.
func NewIndex(layout Layout) *Index {
	idx := &Index{
		halfExtent: constants.MapHalfExtent,
		layout:     layout,
	}
	for _, zone := range zoneOrder {
		for _, r := range layout.Zones[zone] {
			w := newWallVolume(r, zone)
			idx.walls = append(idx.walls, w)
			idx.boxes = append(idx.boxes, w.Box())
		}
	}
	return idx
}

// NewDefaultIndex builds the index of DefaultLayout.
func NewDefaultIndex() *Index {
	return NewIndex(DefaultLayout())
}

// Walls returns the wall volumes. The slice must not be modified.
func (idx *Index) Walls() []WallVolume {
	return idx.walls
}

// Layout returns the layout the index was built from.
func (idx *Index) Layout() Layout {
	return idx.layout
}

// HalfExtent returns the map boundary (±HalfExtent on X and Z).
func (idx *Index) HalfExtent() float64 {
	return idx.halfExtent
}

// InBounds reports whether p is inside the square map boundary.
func (idx *Index) InBounds(p model.Vec3) bool {
	return math.Abs(p.X) <= idx.halfExtent && math.Abs(p.Z) <= idx.halfExtent
}

// IsOutsideWalls is the containment predicate shared by movement, AI and spawning:
// p is within the map boundary and not inside any wall footprint. Height is ignored.
func (idx *Index) IsOutsideWalls(p model.Vec3) bool {
	if !idx.InBounds(p) {
		return false
	}
	for _, w := range idx.walls {
		if w.ContainsFootprint(p.X, p.Z) {
			return false
		}
	}
	return true
}

// Raycast returns the nearest wall hit along dir (unit vector) within maxDist.
func (idx *Index) Raycast(origin, dir model.Vec3, maxDist float64) (RayHit, bool) {
	return IntersectBoxes(origin, dir, idx.boxes, maxDist)
}

// HasLineOfSight reports whether no wall intersects the segment from → to.
// An empty wall set never obstructs.
func (idx *Index) HasLineOfSight(from, to model.Vec3) bool {
	if len(idx.boxes) == 0 {
		return true // No walls, assume clear LOS
	}
	delta := to.Sub(from)
	dist := delta.Len()
	if dist == 0 {
		return true
	}
	hit, ok := idx.Raycast(from, delta.Scale(1/dist), dist)
	return !ok || hit.Distance >= dist
}

// Overlapping returns the indices of walls whose box strictly intersects b.
func (idx *Index) Overlapping(b Box) []int {
	var out []int
	for i, wb := range idx.boxes {
		if wb.Intersects(b) {
			out = append(out, i)
		}
	}
	return out
}

// AnyOverlap reports whether b intersects any wall box.
func (idx *Index) AnyOverlap(b Box) bool {
	for _, wb := range idx.boxes {
		if wb.Intersects(b) {
			return true
		}
	}
	return false
}
