package world

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, width, height int) *GridMap {
	t.Helper()
	m, err := NewGridMap(width, height)
	if err != nil {
		t.Fatalf("NewGridMap(%d, %d) error: %v", width, height, err)
	}
	return m
}

func TestNewGridMap_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := NewGridMap(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGridMap(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestTileAtAndInBoundsAgree(t *testing.T) {
	m := mustGrid(t, 6, 4)
	m.Fill(TileWall)

	inside := []Point{{0, 0}, {5, 0}, {0, 3}, {5, 3}}
	for _, p := range inside {
		if !m.InBounds(p.X, p.Y) {
			t.Errorf("InBounds%v = false, want true", p)
		}
		kind, err := m.TileAt(p.X, p.Y)
		if err != nil {
			t.Errorf("TileAt%v error: %v", p, err)
		}
		if kind != TileWall {
			t.Errorf("TileAt%v = %v, want Wall", p, kind)
		}
	}

	outside := []Point{{-1, 0}, {6, 0}, {0, -1}, {0, 4}}
	for _, p := range outside {
		if m.InBounds(p.X, p.Y) {
			t.Errorf("InBounds%v = true, want false", p)
		}
		if _, err := m.TileAt(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt%v error = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestSetOutOfBoundsIsNoOp(t *testing.T) {
	m := mustGrid(t, 3, 3)
	m.Fill(TileWall)
	if m.Set(3, 0, TileFloor) {
		t.Error("Set(3, 0) = true, want false")
	}
	if m.Set(-1, -1, TileFloor) {
		t.Error("Set(-1, -1) = true, want false")
	}
	if got := m.Count(TileWall); got != 9 {
		t.Errorf("Count(Wall) = %d after out-of-bounds writes, want 9", got)
	}
}

func TestCarveIsIdempotent(t *testing.T) {
	m := mustGrid(t, 10, 3)
	m.Fill(TileWall)
	m.Set(4, 1, TileFloor)

	carveRow := func() {
		for x := 0; x < 10; x++ {
			m.Carve(x, 1, TileCorridor)
		}
	}
	carveRow()
	first := m.Clone()
	carveRow()

	for x := 0; x < 10; x++ {
		a, _ := first.TileAt(x, 1)
		b, _ := m.TileAt(x, 1)
		if a != b {
			t.Errorf("tile (%d, 1) changed on second carve: %v -> %v", x, a, b)
		}
	}
	if kind, _ := m.TileAt(4, 1); kind != TileFloor {
		t.Errorf("carve overwrote room floor: got %v", kind)
	}
	if kind, _ := m.TileAt(0, 1); kind != TileCorridor {
		t.Errorf("TileAt(0, 1) = %v, want Corridor", kind)
	}
}

func TestFillRectClipsToGrid(t *testing.T) {
	m := mustGrid(t, 5, 5)
	m.Fill(TileWall)
	written := m.FillRect(Rect{X: 3, Y: 3, Width: 4, Height: 4}, TileFloor)
	if written != 4 {
		t.Errorf("FillRect wrote %d tiles, want 4", written)
	}
	if got := m.Count(TileFloor); got != 4 {
		t.Errorf("Count(Floor) = %d, want 4", got)
	}
}

func TestReachable(t *testing.T) {
	m := mustGrid(t, 7, 3)
	m.Fill(TileWall)
	m.FillRect(Rect{X: 0, Y: 1, Width: 3, Height: 1}, TileFloor)
	m.Set(5, 1, TileCorridor)

	reach := m.Reachable(Point{X: 0, Y: 1})
	if reach.Size() != 3 {
		t.Errorf("Reachable size = %d, want 3", reach.Size())
	}
	if reach.Has(Point{X: 5, Y: 1}) {
		t.Error("isolated corridor tile reported reachable")
	}

	m.Carve(3, 1, TileCorridor)
	m.Carve(4, 1, TileCorridor)
	if !m.Reachable(Point{X: 0, Y: 1}).Has(Point{X: 5, Y: 1}) {
		t.Error("corridor tile not reachable after connecting carve")
	}

	if got := m.Reachable(Point{X: 0, Y: 0}).Size(); got != 0 {
		t.Errorf("Reachable from wall size = %d, want 0", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := mustGrid(t, 2, 2)
	c := m.Clone()
	c.Set(0, 0, TileFloor)
	if kind, _ := m.TileAt(0, 0); kind != TileEmpty {
		t.Errorf("original changed through clone: %v", kind)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 20, Y: 12, Width: 14, Height: 8}
	if c := r.Center(); c != (Point{X: 27, Y: 16}) {
		t.Errorf("Center = %v, want (27, 16)", c)
	}
	if !r.Contains(Point{X: 33, Y: 19}) || r.Contains(Point{X: 34, Y: 19}) {
		t.Error("Contains boundary check failed")
	}
	if !r.Within(34, 20) || r.Within(33, 20) {
		t.Error("Within boundary check failed")
	}
}

func TestRectOverlapsAndGrow(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
	b := Rect{X: 5, Y: 0, Width: 5, Height: 5}
	if a.Overlaps(b) {
		t.Error("edge-touching rectangles reported as overlapping")
	}
	if !a.Grow(1).Overlaps(b) {
		t.Error("grown rectangle should overlap its neighbour")
	}
	if g := a.Grow(2); g != (Rect{X: -2, Y: -2, Width: 9, Height: 9}) {
		t.Errorf("Grow(2) = %+v", g)
	}
}

func TestRectClampInner(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 6, Height: 6}
	tests := []struct {
		in, want Point
	}{
		{Point{X: 0, Y: 0}, Point{X: 11, Y: 11}},
		{Point{X: 50, Y: 12}, Point{X: 14, Y: 12}},
		{Point{X: 13, Y: 13}, Point{X: 13, Y: 13}},
	}
	for _, tt := range tests {
		if got := r.ClampInner(tt.in); got != tt.want {
			t.Errorf("ClampInner(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
