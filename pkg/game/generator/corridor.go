package generator

import (
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// carveCorridor connects parent and child centers with a two-tile-wide L.
//
// From the start room (the fork) the corridor leaves vertically on the
// start's column and turns onto the child's row, so sibling branches peel off
// on their own rows. Everywhere else it runs along the parent's row first and
// turns onto the child's column. The parallel row sits on the child's side.
func carveCorridor(grid *world.GridMap, g *roomgraph.Graph, parent, child roomgraph.NodeID) {
	a, _ := g.Center(parent)
	b, _ := g.Center(child)

	side := 1
	if b.Y < a.Y {
		side = -1
	}

	if g.Kind(parent) == roomgraph.Start {
		carveVertical(grid, a.X, a.Y, b.Y)
		carveHorizontal(grid, b.Y, a.X, b.X, side)
		return
	}

	carveHorizontal(grid, a.Y, a.X, b.X, side)
	carveVertical(grid, b.X, a.Y, b.Y)
}

// carveHorizontal carves a horizontal run on row plus a parallel run on row+side
func carveHorizontal(grid *world.GridMap, row, startCol, endCol, side int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	for col := startCol; col <= endCol; col++ {
		// Carve never overwrites room floor
		grid.Carve(col, row, world.TileCorridor)
		grid.Carve(col, row+side, world.TileCorridor)
	}
}

// carveVertical carves a vertical run on col plus a parallel run on col+1
func carveVertical(grid *world.GridMap, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}

	for row := startRow; row <= endRow; row++ {
		grid.Carve(col, row, world.TileCorridor)
		grid.Carve(col+1, row, world.TileCorridor)
	}
}
