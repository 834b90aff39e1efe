package generator

import (
	"errors"
	"fmt"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// ErrUnreachable is returned if a carved room cannot be reached from the start room
var ErrUnreachable = errors.New("room unreachable from start")

// Constants for translating tree-index space into grid space
const (
	XStep      = 20 // Grid columns between neighbouring index columns
	YStep      = 12 // Grid rows between neighbouring index rows
	RoomWidth  = 14
	RoomHeight = 8
)

// Footprint returns the grid-space rectangle a room at the given tree index occupies
func Footprint(index world.Point) world.Rect {
	return world.Rect{
		X:      index.X * XStep,
		Y:      index.Y * YStep,
		Width:  RoomWidth,
		Height: RoomHeight,
	}
}

// RequiredSize returns the smallest grid that holds every room footprint of g
func RequiredSize(g *roomgraph.Graph) (width, height int) {
	for id := range g.Preorder() {
		r := Footprint(g.Index(id))
		width = max(width, r.MaxX())
		height = max(height, r.MaxY())
	}
	return width, height
}

// BuildLayout rasterizes g into a new width×height GridMap: room footprints
// first, then an L-shaped corridor per edge. Every room gets its center
// assigned. On error no GridMap is returned.
func BuildLayout(g *roomgraph.Graph, width, height int) (*world.GridMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	grid, err := world.NewGridMap(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	for id := range g.Preorder() {
		if r := Footprint(g.Index(id)); !r.Within(width, height) {
			needW, needH := RequiredSize(g)
			return nil, fmt.Errorf("%w: grid %dx%d too small for layout %dx%d (room %s)",
				ErrConfiguration, width, height, needW, needH, g.Describe(id))
		}
		if _, placed := g.Center(id); placed {
			return nil, fmt.Errorf("%w: %s", roomgraph.ErrCenterAssigned, g.Describe(id))
		}
	}

	grid.Fill(world.TileWall)

	// Pass 1: footprints
	for id := range g.Preorder() {
		r := Footprint(g.Index(id))
		grid.FillRect(r, world.TileFloor)
		if err := g.SetCenter(id, r.Center()); err != nil {
			return nil, err
		}
	}

	// Pass 2: corridors, one per edge (a convergence room is carved once per incoming edge)
	for _, edge := range g.Edges() {
		carveCorridor(grid, g, edge.From, edge.To)
	}

	if err := verifyReachable(grid, g); err != nil {
		return nil, err
	}

	return grid, nil
}

// verifyReachable flood-fills from the start center and checks every room center is covered
func verifyReachable(grid *world.GridMap, g *roomgraph.Graph) error {
	start, _ := g.Center(g.Root())
	reach := grid.Reachable(start)
	for id := range g.Preorder() {
		center, _ := g.Center(id)
		if !reach.Has(center) {
			return fmt.Errorf("%w: %s at %v", ErrUnreachable, g.Describe(id), center)
		}
	}
	return nil
}
