package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// NewRand returns the deterministic RNG every unit test draws from.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(constants.TestSeed, constants.TestSeed))
}

// NewWorld builds a world over layout with the player standing at pos and no enemies.
func NewWorld(tb testing.TB, layout geo.Layout, pos model.Vec3) *world.World {
	tb.Helper()
	return world.New(geo.NewIndex(layout), model.NewPlayer(pos, model.DefaultPlayerTuning()), NewRand())
}

// EmptyLayout is an open square with no walls and no markers.
func EmptyLayout() geo.Layout {
	return geo.Layout{}
}

// SingleWall is an open square with one wall centred at (x, z).
func SingleWall(x, z, w, d float64) geo.Layout {
	return geo.Layout{
		Zones: map[geo.Zone][]geo.Rect{
			geo.ZoneMid: {{X: x, Z: z, W: w, D: d}},
		},
	}
}
