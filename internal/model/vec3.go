package model

import "math"

// Vec3: точка или направление в мировых координатах.
// Value type, передаётся по значению. Y: вертикальная ось.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// NewVec3 создаёт Vec3 с указанными координатами.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSquared возвращает квадрат длины (без sqrt).
func (v Vec3) LenSquared() float64 {
	return v.Dot(v)
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// WithY returns a copy with Y replaced (immutable pattern).
func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

// DistanceTo returns the 3D distance to o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Len()
}

// DistanceSquared возвращает квадрат расстояния до другой точки.
func (v Vec3) DistanceSquared(o Vec3) float64 {
	return v.Sub(o).LenSquared()
}

// HorizontalDistance returns the distance on the XZ plane.
func (v Vec3) HorizontalDistance(o Vec3) float64 {
	return v.Sub(o).Horizontal().Len()
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Yaw returns the heading of a horizontal direction in radians, measured from +Z towards +X.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// DirectionFromYaw returns the horizontal unit vector for a heading produced by Yaw.
func DirectionFromYaw(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}
