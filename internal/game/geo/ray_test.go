package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/zombiearena/internal/model"
)

func unitBox() Box {
	return Box{Min: model.NewVec3(-1, -1, -1), Max: model.NewVec3(1, 1, 1)}
}

func TestIntersectBox(t *testing.T) {
	tests := []struct {
		name     string
		origin   model.Vec3
		dir      model.Vec3
		wantHit  bool
		wantDist float64
	}{
		{"front hit", model.NewVec3(-5, 0, 0), model.NewVec3(1, 0, 0), true, 4},
		{"diagonal hit", model.NewVec3(-5, 0, -5), model.NewVec3(1, 0, 1).Normalize(), true, 5.656854249492381},
		{"pointing away", model.NewVec3(-5, 0, 0), model.NewVec3(-1, 0, 0), false, 0},
		{"parallel miss", model.NewVec3(-5, 2, 0), model.NewVec3(1, 0, 0), false, 0},
		{"origin inside", model.NewVec3(0, 0, 0), model.NewVec3(1, 0, 0), false, 0},
		{"passes above", model.NewVec3(-5, 0, 0), model.NewVec3(1, 1, 0).Normalize(), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ok := IntersectBox(tt.origin, tt.dir, unitBox())
			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.InDelta(t, tt.wantDist, dist, 1e-9)
			}
		})
	}
}

func TestIntersectBoxesNearest(t *testing.T) {
	near := Box{Min: model.NewVec3(2, -1, -1), Max: model.NewVec3(3, 1, 1)}
	far := Box{Min: model.NewVec3(6, -1, -1), Max: model.NewVec3(7, 1, 1)}

	hit, ok := IntersectBoxes(model.Vec3{}, model.NewVec3(1, 0, 0), []Box{far, near}, 100)
	assert.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, 2, hit.Distance, 1e-9)

	_, ok = IntersectBoxes(model.Vec3{}, model.NewVec3(1, 0, 0), nil, 100)
	assert.False(t, ok)
}

func TestBoxIntersects(t *testing.T) {
	a := unitBox()
	touching := Box{Min: model.NewVec3(1, -1, -1), Max: model.NewVec3(2, 1, 1)}
	overlapping := Box{Min: model.NewVec3(0.75, -1, -1), Max: model.NewVec3(2, 1, 1)}

	assert.False(t, a.Intersects(touching))
	assert.True(t, a.Intersects(overlapping))

	p := a.Penetration(overlapping)
	assert.InDelta(t, 0.25, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
	assert.InDelta(t, 2, p.Z, 1e-9)
}
