// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrOutOfBounds is returned when reading a tile outside the grid
	ErrOutOfBounds = errors.New("tile position out of bounds")
	// ErrInvalidDimensions is returned when a grid is created with a non-positive size
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// TileReader is the read-only view of a tile buffer handed to consumers
// once generation has finished.
type TileReader interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	TileAt(x, y int) (TileKind, error)
}

// GridMap is a width×height buffer of tile kinds with bounds-checked access.
type GridMap struct {
	tiles  []TileKind
	width  int
	height int
}

// NewGridMap creates a grid of the given size filled with TileEmpty
func NewGridMap(width, height int) (*GridMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &GridMap{
		tiles:  make([]TileKind, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the number of columns in the grid
func (m *GridMap) Width() int {
	return m.width
}

// Height returns the number of rows in the grid
func (m *GridMap) Height() int {
	return m.height
}

// InBounds checks if an x/y position is within grid bounds
func (m *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// TileAt returns the tile at the given position, or ErrOutOfBounds
func (m *GridMap) TileAt(x, y int) (TileKind, error) {
	if !m.InBounds(x, y) {
		return TileEmpty, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.tiles[y*m.width+x], nil
}

// Set writes a tile. Writes outside the grid are ignored and return false.
func (m *GridMap) Set(x, y int, kind TileKind) bool {
	if !m.InBounds(x, y) {
		return false
	}
	m.tiles[y*m.width+x] = kind
	return true
}

// Carve turns a Wall or Empty tile into the given kind. Tiles that are
// already passable keep their kind, so carving the same tile twice is a no-op.
// Returns true only if the tile changed.
func (m *GridMap) Carve(x, y int, kind TileKind) bool {
	if !m.InBounds(x, y) {
		return false
	}
	i := y*m.width + x
	if m.tiles[i].Passable() || m.tiles[i] == kind {
		return false
	}
	m.tiles[i] = kind
	return true
}

// Fill sets every tile to the given kind
func (m *GridMap) Fill(kind TileKind) {
	for i := range m.tiles {
		m.tiles[i] = kind
	}
}

// FillRect sets every in-bounds tile of r to the given kind and returns how many were written
func (m *GridMap) FillRect(r Rect, kind TileKind) int {
	written := 0
	for y := r.Y; y < r.MaxY(); y++ {
		for x := r.X; x < r.MaxX(); x++ {
			if m.Set(x, y, kind) {
				written++
			}
		}
	}
	return written
}

// IsPassable returns true if the position is in bounds and holds a floor or corridor tile
func (m *GridMap) IsPassable(x, y int) bool {
	kind, err := m.TileAt(x, y)
	return err == nil && kind.Passable()
}

// ForEachTile iterates over all tiles row by row, calling the provided function for each
func (m *GridMap) ForEachTile(fn func(x, y int, kind TileKind)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fn(x, y, m.tiles[y*m.width+x])
		}
	}
}

// Count returns how many tiles hold the given kind
func (m *GridMap) Count(kind TileKind) int {
	n := 0
	for _, k := range m.tiles {
		if k == kind {
			n++
		}
	}
	return n
}

// Reachable returns every passable tile 4-connected to from.
// The result is empty if from is not passable.
func (m *GridMap) Reachable(from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.IsPassable(from.X, from.Y) {
		return visited
	}

	visited.Put(from)
	queue := []Point{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir)
			if m.IsPassable(next.X, next.Y) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return visited
}

// Clone returns an independent copy of the grid
func (m *GridMap) Clone() *GridMap {
	tiles := make([]TileKind, len(m.tiles))
	copy(tiles, m.tiles)
	return &GridMap{tiles: tiles, width: m.width, height: m.height}
}
