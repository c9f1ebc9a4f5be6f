package geo

import (
	"math"

	"github.com/udisondev/zombiearena/internal/model"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min model.Vec3
	Max model.Vec3
}

// BoxFromCenter builds a box of the given full size around center.
func BoxFromCenter(center, size model.Vec3) Box {
	half := size.Scale(0.5)
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the box centre.
func (b Box) Center() model.Vec3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Intersects reports a strictly positive overlap on all three axes.
// Boxes that only touch do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// Penetration returns the per-axis overlap depth of two intersecting boxes.
func (b Box) Penetration(o Box) model.Vec3 {
	return model.Vec3{
		X: math.Min(b.Max.X-o.Min.X, o.Max.X-b.Min.X),
		Y: math.Min(b.Max.Y-o.Min.Y, o.Max.Y-b.Min.Y),
		Z: math.Min(b.Max.Z-o.Min.Z, o.Max.Z-b.Min.Z),
	}
}
