package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/trichrome/components"
)

func TestQueryRadius(t *testing.T) {
	world := ecs.NewWorld()
	posMapper := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(200, 200, 50)

	near := posMapper.NewEntity(&components.Position{X: 100, Y: 100})
	far := posMapper.NewEntity(&components.Position{X: 10, Y: 10})
	self := posMapper.NewEntity(&components.Position{X: 95, Y: 100})

	grid.Insert(near, 100, 100)
	grid.Insert(far, 10, 10)
	grid.Insert(self, 95, 100)

	got := grid.QueryRadiusInto(nil, 95, 100, 30, self, posMapper)

	if len(got) != 1 {
		t.Fatalf("got %d neighbors, want 1", len(got))
	}
	if got[0].E != near {
		t.Error("wrong neighbor returned")
	}
	if got[0].DX != 5 || got[0].DY != 0 {
		t.Errorf("delta = (%f, %f), want (5, 0)", got[0].DX, got[0].DY)
	}
	if got[0].DistSq != 25 {
		t.Errorf("distSq = %f, want 25", got[0].DistSq)
	}
}

func TestQueryOutOfBoundsPosition(t *testing.T) {
	world := ecs.NewWorld()
	posMapper := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(100, 100, 25)

	// Positions outside the grid clamp to edge cells instead of panicking.
	e := posMapper.NewEntity(&components.Position{X: -20, Y: 500})
	grid.Insert(e, -20, 500)

	got := grid.QueryRadiusInto(nil, -10, 480, 100, ecs.Entity{}, posMapper)
	if len(got) != 1 {
		t.Fatalf("got %d neighbors, want 1", len(got))
	}
}

func TestClearEmptiesGrid(t *testing.T) {
	world := ecs.NewWorld()
	posMapper := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(100, 100, 25)
	e := posMapper.NewEntity(&components.Position{X: 50, Y: 50})
	grid.Insert(e, 50, 50)
	grid.Clear()

	got := grid.QueryRadiusInto(nil, 50, 50, 60, ecs.Entity{}, posMapper)
	if len(got) != 0 {
		t.Errorf("got %d neighbors after clear, want 0", len(got))
	}
}
