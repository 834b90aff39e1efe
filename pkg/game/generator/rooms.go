package generator

import (
	"fmt"
	"math/rand"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// RandomRoomsGenerator scatters rectangular rooms over the grid and joins
// them in placement order with single-width L corridors.
type RandomRoomsGenerator struct{}

// Name returns the name of this generator
func (g *RandomRoomsGenerator) Name() string {
	return "Random Rooms"
}

// Constants for random room placement
const (
	DefaultMaxRooms = 10
	MinRoomSize     = 5
	MaxRoomSize     = 10
	roomSpacing     = 2   // Tiles of rock kept between neighbouring rooms
	extraAttempts   = 200 // Further tries while fewer than two rooms fit
)

// Build places up to cfg.RoomAttempts() rooms, carves the corridors and
// derives the room graph: one random room is the start, another random room
// the boss, the rest are battle rooms. Edges follow the corridor chain
// outwards from the start room.
func (g *RandomRoomsGenerator) Build(seed int64, cfg Config) (*roomgraph.Graph, *world.GridMap, error) {
	rng := rand.New(rand.NewSource(seed))

	grid, err := world.NewGridMap(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	grid.Fill(world.TileWall)

	rooms := placeRooms(rng, cfg.Width, cfg.Height, cfg.RoomAttempts())
	if len(rooms) < 2 {
		return nil, nil, fmt.Errorf("%w: only %d room(s) fit a %dx%d grid, need 2",
			ErrConfiguration, len(rooms), cfg.Width, cfg.Height)
	}

	for _, r := range rooms {
		grid.FillRect(r, world.TileFloor)
	}
	for i := 1; i < len(rooms); i++ {
		connectRooms(grid, rng, rooms[i-1], rooms[i])
	}

	graph, err := roomChainGraph(rng, rooms)
	if err != nil {
		return nil, nil, err
	}

	if err := verifyReachable(grid, graph); err != nil {
		return nil, nil, err
	}
	return graph, grid, nil
}

// placeRooms tries attempts random rooms and keeps those that stay clear of
// every room already placed. It keeps trying while fewer than two rooms are
// placed. A one-tile rock border is left around the grid.
func placeRooms(rng *rand.Rand, width, height, attempts int) []world.Rect {
	var rooms []world.Rect
	for i := 0; i < attempts || (len(rooms) < 2 && i < attempts+extraAttempts); i++ {
		w := MinRoomSize + rng.Intn(MaxRoomSize-MinRoomSize+1)
		h := MinRoomSize + rng.Intn(MaxRoomSize-MinRoomSize+1)
		candidate := world.Rect{
			X:      1 + rng.Intn(width-w-2),
			Y:      1 + rng.Intn(height-h-2),
			Width:  w,
			Height: h,
		}

		overlaps := false
		for _, r := range rooms {
			if candidate.Grow(roomSpacing).Overlaps(r) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, candidate)
		}
	}
	return rooms
}

// connectRooms carves an L corridor between the facing edges of two rooms,
// picking horizontal-first or vertical-first at random
func connectRooms(grid *world.GridMap, rng *rand.Rand, from, to world.Rect) {
	a := from.ClampInner(to.Center())
	b := to.ClampInner(from.Center())

	if rng.Intn(2) == 0 {
		carveRow(grid, a.Y, a.X, b.X)
		carveColumn(grid, b.X, a.Y, b.Y)
	} else {
		carveColumn(grid, a.X, a.Y, b.Y)
		carveRow(grid, b.Y, a.X, b.X)
	}
}

// carveRow carves a single-width horizontal corridor
func carveRow(grid *world.GridMap, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.Carve(col, row, world.TileCorridor)
	}
}

// carveColumn carves a single-width vertical corridor
func carveColumn(grid *world.GridMap, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.Carve(col, row, world.TileCorridor)
	}
}

// roomChainGraph turns the placement-ordered rooms into a graph rooted at a
// random start room. Rooms are indexed (placement order, 0).
func roomChainGraph(rng *rand.Rand, rooms []world.Rect) (*roomgraph.Graph, error) {
	start := rng.Intn(len(rooms))
	boss := rng.Intn(len(rooms) - 1)
	if boss >= start {
		boss++
	}

	g := roomgraph.New()
	ids := make([]roomgraph.NodeID, len(rooms))
	for i := range rooms {
		kind := roomgraph.Battle
		switch i {
		case start:
			kind = roomgraph.Start
		case boss:
			kind = roomgraph.Boss
		}
		id, err := g.AddNode(kind, i, 0)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	// The corridor chain runs through the rooms in placement order, so the
	// start splits it into a backward and a forward branch
	for i := start; i > 0; i-- {
		if err := g.Connect(ids[i], ids[i-1]); err != nil {
			return nil, err
		}
	}
	for i := start; i < len(rooms)-1; i++ {
		if err := g.Connect(ids[i], ids[i+1]); err != nil {
			return nil, err
		}
	}

	for i, r := range rooms {
		if err := g.SetCenter(ids[i], r.Center()); err != nil {
			return nil, err
		}
	}
	return g, nil
}
