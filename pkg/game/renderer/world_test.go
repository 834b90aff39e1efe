package renderer

import (
	"testing"

	"roomforge/pkg/engine/world"
)

func TestWorldPosition_CentersTile(t *testing.T) {
	x, y := WorldPosition(world.Point{X: 3, Y: 5}, 1)
	if x != 3.5 || y != 5.5 {
		t.Errorf("WorldPosition((3, 5), 1) = (%v, %v), want (3.5, 5.5)", x, y)
	}
	x, y = WorldPosition(world.Point{X: 2, Y: 0}, 16)
	if x != 40 || y != 8 {
		t.Errorf("WorldPosition((2, 0), 16) = (%v, %v), want (40, 8)", x, y)
	}
}

func TestWallFaces(t *testing.T) {
	m, _ := world.NewGridMap(7, 7)
	m.Fill(world.TileWall)
	m.Set(3, 3, world.TileFloor)

	faces := WallFaces(m)
	if faces.Size() != 8 {
		t.Errorf("WallFaces size = %d, want 8 (ring around the floor tile)", faces.Size())
	}
	if faces.Has(world.Point{X: 3, Y: 3}) {
		t.Error("floor tile reported as wall face")
	}
	if faces.Has(world.Point{X: 0, Y: 0}) {
		t.Error("buried wall reported as wall face")
	}
	if !faces.Has(world.Point{X: 2, Y: 2}) {
		t.Error("diagonal neighbour wall missing from wall faces")
	}
}

func TestArrowPoints(t *testing.T) {
	pts := ArrowPoints(world.Up, 10, 10, 4)
	if pts[0] != [2]float64{10, 6} {
		t.Errorf("Up tip = %v, want (10, 6)", pts[0])
	}
	if pts[1][1] != 12 || pts[2][1] != 12 {
		t.Errorf("Up base corners = %v, %v, want y = 12", pts[1], pts[2])
	}

	right := ArrowPoints(world.Right, 0, 0, 2)
	if right[0] != [2]float64{2, 0} {
		t.Errorf("Right tip = %v, want (2, 0)", right[0])
	}
}
