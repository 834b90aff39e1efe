package renderer

import (
	"github.com/zyedidia/generic/mapset"

	"roomforge/pkg/engine/world"
)

// WallFaceSet holds the wall tiles worth drawing
type WallFaceSet = mapset.Set[world.Point]

// WorldPosition converts a grid tile into world/render space: a fixed scale
// per tile plus half a tile so the result is the tile's center.
func WorldPosition(p world.Point, tileSize float64) (x, y float64) {
	return float64(p.X)*tileSize + tileSize/2, float64(p.Y)*tileSize + tileSize/2
}

// WallFaces returns every wall tile with a passable tile among its eight
// neighbours. Walls deeper inside the rock are left out so renderers only
// draw the visible outline.
func WallFaces(tiles world.TileReader) WallFaceSet {
	faces := mapset.New[world.Point]()
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			if kind, _ := tiles.TileAt(x, y); kind != world.TileWall {
				continue
			}
			if nearPassable(tiles, x, y) {
				faces.Put(world.Point{X: x, Y: y})
			}
		}
	}
	return faces
}

func nearPassable(tiles world.TileReader, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			kind, err := tiles.TileAt(x+dx, y+dy)
			if err == nil && kind.Passable() {
				return true
			}
		}
	}
	return false
}

// ArrowPoints returns the tip and the two base corners of a triangle of the
// given size centered on (cx, cy) and pointing in dir.
func ArrowPoints(dir world.Direction, cx, cy, size float64) [3][2]float64 {
	dx, dy := dir.Delta()
	fx, fy := float64(dx), float64(dy)
	// Perpendicular to the pointing direction
	px, py := -fy, fx

	tipX, tipY := cx+fx*size, cy+fy*size
	backX, backY := cx-fx*size*0.5, cy-fy*size*0.5
	return [3][2]float64{
		{tipX, tipY},
		{backX + px*size*0.6, backY + py*size*0.6},
		{backX - px*size*0.6, backY - py*size*0.6},
	}
}
