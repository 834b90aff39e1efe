package renderer

import (
	"image"
	"image/color"

	"roomforge/pkg/engine/world"
)

// Palette maps tile kinds to minimap colors
type Palette struct {
	Wall      color.RGBA
	Floor     color.RGBA
	Corridor  color.RGBA
	Empty     color.RGBA
	Highlight color.RGBA
}

// DefaultPalette paints walls black, rooms and corridors gray and the highlight red
var DefaultPalette = Palette{
	Wall:      color.RGBA{0, 0, 0, 255},
	Floor:     color.RGBA{128, 128, 128, 255},
	Corridor:  color.RGBA{128, 128, 128, 255},
	Empty:     color.RGBA{0, 0, 0, 255},
	Highlight: color.RGBA{255, 0, 0, 255},
}

func (p Palette) colorFor(kind world.TileKind) color.RGBA {
	switch kind {
	case world.TileFloor:
		return p.Floor
	case world.TileCorridor:
		return p.Corridor
	case world.TileWall:
		return p.Wall
	default:
		return p.Empty
	}
}

// PaintMinimap paints every tile as a pixelsPerTile square. Row 0 is the
// top of the image. If highlight is non-nil that tile is painted with the
// highlight color (typically the player).
func PaintMinimap(tiles world.TileReader, pixelsPerTile int, palette Palette, highlight *world.Point) *image.RGBA {
	if pixelsPerTile < 1 {
		pixelsPerTile = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, tiles.Width()*pixelsPerTile, tiles.Height()*pixelsPerTile))

	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			kind, _ := tiles.TileAt(x, y)
			fillTile(img, x, y, pixelsPerTile, palette.colorFor(kind))
		}
	}

	if highlight != nil && tiles.InBounds(highlight.X, highlight.Y) {
		fillTile(img, highlight.X, highlight.Y, pixelsPerTile, palette.Highlight)
	}

	return img
}

func fillTile(img *image.RGBA, tileX, tileY, size int, c color.RGBA) {
	px := tileX * size
	py := tileY * size
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			img.SetRGBA(px+dx, py+dy, c)
		}
	}
}
