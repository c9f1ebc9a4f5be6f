package geo

import (
	"math"

	"github.com/udisondev/zombiearena/internal/model"
)

// RayHit is the result of a ray query.
type RayHit struct {
	Distance float64
	Point    model.Vec3
	// Index of the hit wall (or of the hit box for IntersectBoxes).
	Index int
}

// IntersectBox returns the distance along dir at which a ray from origin enters b.
// dir must be a unit vector. A ray starting inside the box does not hit it
// (box faces point outward). Pure function, no shared state.
func IntersectBox(origin, dir model.Vec3, b Box) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	axes := [3][4]float64{
		{origin.X, dir.X, b.Min.X, b.Max.X},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y},
		{origin.Z, dir.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	// Behind the origin, or origin inside the box.
	if tmin < 0 {
		return 0, false
	}
	return tmin, true
}

// IntersectBoxes returns the nearest box hit by the ray within maxDist.
// An empty box list never hits.
func IntersectBoxes(origin, dir model.Vec3, boxes []Box, maxDist float64) (RayHit, bool) {
	best := RayHit{Distance: math.Inf(1), Index: -1}
	for i, b := range boxes {
		t, ok := IntersectBox(origin, dir, b)
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best.Distance = t
		best.Index = i
	}
	if best.Index < 0 {
		return RayHit{}, false
	}
	best.Point = origin.Add(dir.Scale(best.Distance))
	return best, true
}
