// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/generator"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/spawn"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "map.txt"

// ErrNoScene is returned when there is nothing to dump
var ErrNoScene = errors.New("no scene to dump")

// cellSymbol returns the single-character symbol for a tile with spawn and
// marker overlays applied.
func cellSymbol(s *renderer.Scene, p world.Point) rune {
	if kind, ok := s.SpawnAt(p); ok {
		switch kind {
		case spawn.Player:
			return '@'
		case spawn.Boss:
			return 'B'
		default:
			return 'e'
		}
	}
	if dir, ok := s.MarkerAt(p); ok {
		switch dir {
		case world.Up:
			return '^'
		case world.Down:
			return 'v'
		case world.Left:
			return '<'
		default:
			return '>'
		}
	}

	kind, err := s.Tiles().TileAt(p.X, p.Y)
	if err != nil {
		return ' '
	}
	switch kind {
	case world.TileWall:
		return '#'
	case world.TileFloor:
		return '.'
	case world.TileCorridor:
		return ','
	default:
		return ' '
	}
}

// writeMapGrid writes every row of the grid with overlays
func writeMapGrid(w io.Writer, s *renderer.Scene) {
	tiles := s.Tiles()
	row := make([]rune, tiles.Width())
	for y := 0; y < tiles.Height(); y++ {
		for x := range row {
			row[x] = cellSymbol(s, world.Point{X: x, Y: y})
		}
		fmt.Fprintln(w, string(row))
	}
}

// DumpScene writes a full debug dump of s: metadata, legend, the map, the
// room graph, spawns and navigation markers. The format is plain
// "key: value" lines grouped in sections.
func DumpScene(w io.Writer, s *renderer.Scene) error {
	if s == nil || s.Dungeon == nil {
		return ErrNoScene
	}

	cfg := s.Dungeon.Config()
	g := s.Dungeon.Graph()
	tiles := s.Tiles()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (room graph, layout, spawns) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	builder, _ := generator.BuilderFor(cfg.Algorithm)
	if builder != nil {
		fmt.Fprintf(w, "generator: %s\n", builder.Name())
	}
	fmt.Fprintf(w, "seed: %d\n", s.Dungeon.Seed())
	fmt.Fprintf(w, "depth: %d\n", cfg.Depth)
	fmt.Fprintf(w, "branches: %d\n", cfg.Branches)
	fmt.Fprintf(w, "grid_width: %d\n", tiles.Width())
	fmt.Fprintf(w, "grid_height: %d\n", tiles.Height())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x grows east, y grows south)")
	fmt.Fprintf(w, "rooms: %d\n", g.Len())
	if start, ok := s.PlayerStart(); ok {
		fmt.Fprintf(w, "player_start: %d,%d\n", start.X, start.Y)
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "# = wall  . = room floor  , = corridor  @ = player  e = enemy  B = boss  ^ v > < = navigation marker  (space) = void")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, s)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms (pre-order) ---")
	for id := range g.Preorder() {
		center, _ := g.Center(id)
		fmt.Fprintf(w, "  id: %d room: %s center: %d,%d in_degree: %d children: %v\n",
			id, g.Describe(id), center.X, center.Y, g.InDegree(id), g.Children(id))
	}
	fmt.Fprintln(w, "")

	// --- Spawns ---
	fmt.Fprintln(w, "Spawns:")
	for _, sp := range s.Spawns.Spawns {
		fmt.Fprintf(w, "  kind: %s room: %d x: %d y: %d\n", sp.Kind, sp.Room, sp.Position.X, sp.Position.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Rooms without spawn rules:")
	if len(s.Spawns.Unspecified) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, id := range s.Spawns.Unspecified {
		fmt.Fprintf(w, "  room: %d kind: %s\n", id, g.Kind(id))
	}
	fmt.Fprintln(w, "")

	// --- Markers ---
	fmt.Fprintln(w, "Navigation markers:")
	for _, m := range s.Markers {
		fmt.Fprintf(w, "  from: %d to: %d x: %d y: %d orientation: %s rotation: %d\n",
			m.From, m.To, m.Position.X, m.Position.Y, m.Orientation, m.Orientation.Rotation())
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpSceneToFile writes DumpScene output to path (DefaultDumpFilename when
// empty) and returns the absolute path written.
func DumpSceneToFile(s *renderer.Scene, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpScene(f, s); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
