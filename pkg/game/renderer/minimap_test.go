package renderer

import (
	"testing"

	"roomforge/pkg/engine/world"
)

func TestPaintMinimap(t *testing.T) {
	m, _ := world.NewGridMap(3, 2)
	m.Fill(world.TileWall)
	m.Set(1, 0, world.TileFloor)
	m.Set(2, 1, world.TileCorridor)

	player := world.Point{X: 0, Y: 1}
	img := PaintMinimap(m, 4, DefaultPalette, &player)

	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("image is %dx%d, want 12x8", b.Dx(), b.Dy())
	}

	checks := []struct {
		px, py int
		want   string
		color  any
	}{
		{0, 0, "wall", DefaultPalette.Wall},
		{5, 2, "floor", DefaultPalette.Floor},
		{11, 7, "corridor", DefaultPalette.Corridor},
		{3, 7, "highlight", DefaultPalette.Highlight},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.px, c.py); got != c.color {
			t.Errorf("pixel (%d, %d) = %v, want %s %v", c.px, c.py, got, c.want, c.color)
		}
	}
}

func TestPaintMinimap_HighlightOutsideIgnored(t *testing.T) {
	m, _ := world.NewGridMap(2, 2)
	m.Fill(world.TileWall)
	outside := world.Point{X: 5, Y: 5}
	img := PaintMinimap(m, 0, DefaultPalette, &outside)
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("image is %dx%d, want 2x2 (pixelsPerTile clamped to 1)", b.Dx(), b.Dy())
	}
}
