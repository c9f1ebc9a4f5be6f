package geo

import (
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
)

// Zone groups layout entries; presenters colour walls by zone.
type Zone uint8

const (
	ZoneOuter Zone = iota
	ZoneSiteA
	ZoneSiteB
	ZoneMid
	ZoneConnectors
)

// String returns human-readable zone name.
func (z Zone) String() string {
	switch z {
	case ZoneOuter:
		return "outer"
	case ZoneSiteA:
		return "siteA"
	case ZoneSiteB:
		return "siteB"
	case ZoneMid:
		return "mid"
	case ZoneConnectors:
		return "connectors"
	default:
		return "unknown"
	}
}

// Rect is one declarative layout entry: centre, width (X), depth (Z), optional height.
type Rect struct {
	X, Z float64
	W, D float64
	// H = 0 means constants.DefaultWallHeight.
	H float64
}

// Marker is a named point on the map (spawn or objective site).
type Marker struct {
	Name string
	X, Z float64
}

// Layout: декларативная таблица карты. Единственный вход для построения Index.
type Layout struct {
	Zones       map[Zone][]Rect
	SpawnPoints []Marker
	Sites       []Marker
}

// zoneOrder fixes iteration order over Layout.Zones.
var zoneOrder = [...]Zone{ZoneOuter, ZoneSiteA, ZoneSiteB, ZoneMid, ZoneConnectors}

// DefaultLayout returns the hand-authored arena: perimeter, A and B sites, mid, spawn markers.
func DefaultLayout() Layout {
	return Layout{
		Zones: map[Zone][]Rect{
			ZoneOuter: {
				{X: 0, Z: 50, W: 100, D: 2},
				{X: 0, Z: -50, W: 100, D: 2},
				{X: 50, Z: 0, W: 2, D: 100},
				{X: -50, Z: 0, W: 2, D: 100},
			},
			ZoneSiteA: {
				{X: 40, Z: 37, W: 20, D: 25},
				{X: 20, Z: 45, W: 20, D: 10},
				{X: 37, Z: 17, W: 4, D: 2},
				{X: 43, Z: 17, W: 5, D: 2},
				{X: 20, Z: -46, W: 20, D: 6},
				{X: 40, Z: -43, W: 20, D: 14},
				{X: 45, Z: -20, W: 8, D: 10},
				{X: 30, Z: -6, W: 20, D: 4},
				{X: 35, Z: -12, W: 4, D: 15},
			},
			ZoneSiteB: {
				{X: -40, Z: 37, W: 20, D: 25},
				{X: -20, Z: 45, W: 20, D: 10},
				{X: -40, Z: -38, W: 20, D: 23},
				{X: -25, Z: -39, W: 10, D: 20},
				{X: -15, Z: -44, W: 10, D: 10},
				{X: -47, Z: 0, W: 5, D: 20},
				{X: -47, Z: -22, W: 5, D: 12},
				{X: -35, Z: -8, W: 7, D: 3},
			},
			ZoneMid: {
				{X: 0, Z: 30, W: 50, D: 10},
				{X: 4, Z: 20, W: 30, D: 10},
				{X: -19, Z: 10, W: 6, D: 15},
				{X: 16, Z: 17, W: 15, D: 10},
				{X: 20, Z: 0, W: 3, D: 16},
				{X: -10, Z: 0, W: 6, D: 15},
				{X: 20, Z: -20, W: 10, D: 15},
				{X: 15, Z: -30, W: 40, D: 5},
				{X: -20, Z: -20, W: 30, D: 5},
				{X: -20, Z: -10, W: 3, D: 16},
				{X: 5, Z: 0, W: 7, D: 10},
				{X: -25, Z: 18, W: 18, D: 4},
				{X: -45, Z: 18, W: 10, D: 4},
				{X: -15, Z: 5, W: 10, D: 5},
			},
			ZoneConnectors: {},
		},
		SpawnPoints: []Marker{
			{Name: "defender", X: 0, Z: constants.PlayerSpawnZ},
			{Name: "attacker", X: 0, Z: -constants.PlayerSpawnZ},
		},
		Sites: []Marker{
			{Name: "A", X: 30, Z: 0},
			{Name: "B", X: -30, Z: 0},
		},
	}
}

// WallVolume: неизменяемый AABB стены.
type WallVolume struct {
	CenterX   float64
	CenterZ   float64
	HalfWidth float64
	HalfDepth float64
	Height    float64
	Zone      Zone
}

func newWallVolume(r Rect, zone Zone) WallVolume {
	h := r.H
	if h <= 0 {
		h = constants.DefaultWallHeight
	}
	return WallVolume{
		CenterX:   r.X,
		CenterZ:   r.Z,
		HalfWidth: r.W / 2,
		HalfDepth: r.D / 2,
		Height:    h,
		Zone:      zone,
	}
}

// Center returns the 3D centre of the wall box (floor at Y=0).
func (w WallVolume) Center() model.Vec3 {
	return model.Vec3{X: w.CenterX, Y: w.Height / 2, Z: w.CenterZ}
}

// Box returns the wall as a 3D box.
func (w WallVolume) Box() Box {
	return Box{
		Min: model.Vec3{X: w.CenterX - w.HalfWidth, Y: 0, Z: w.CenterZ - w.HalfDepth},
		Max: model.Vec3{X: w.CenterX + w.HalfWidth, Y: w.Height, Z: w.CenterZ + w.HalfDepth},
	}
}

// ContainsFootprint reports whether (x, z) lies within the wall's horizontal footprint.
// Edges count as inside.
func (w WallVolume) ContainsFootprint(x, z float64) bool {
	return x >= w.CenterX-w.HalfWidth && x <= w.CenterX+w.HalfWidth &&
		z >= w.CenterZ-w.HalfDepth && z <= w.CenterZ+w.HalfDepth
}
