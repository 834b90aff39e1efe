package renderer

import (
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/generator"
	"roomforge/pkg/game/navigation"
	"roomforge/pkg/game/spawn"
)

// Scene bundles one generated dungeon with the placements derived from it.
// It is built once and shared read-only by every consumer.
type Scene struct {
	Dungeon *generator.Dungeon
	Spawns  *spawn.Plan
	Markers []navigation.Marker

	spawnAt map[world.Point]spawn.Kind

	// Several edges can share a marker tile (e.g. two fork children above
	// the start room), so each tile keeps every marker placed on it
	markerAt map[world.Point][]navigation.Marker
}

// NewScene runs both planners over the dungeon's graph
func NewScene(d *generator.Dungeon) (*Scene, error) {
	plan, err := spawn.PlanSpawns(d.Graph())
	if err != nil {
		return nil, err
	}
	markers, err := navigation.PlanMarkers(d.Graph())
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Dungeon:  d,
		Spawns:   plan,
		Markers:  markers,
		spawnAt:  make(map[world.Point]spawn.Kind, len(plan.Spawns)),
		markerAt: make(map[world.Point][]navigation.Marker, len(markers)),
	}
	for _, sp := range plan.Spawns {
		s.spawnAt[sp.Position] = sp.Kind
	}
	for _, m := range markers {
		s.markerAt[m.Position] = append(s.markerAt[m.Position], m)
	}
	return s, nil
}

// Generate builds a fresh dungeon and its scene
func Generate(cfg generator.Config) (*Scene, error) {
	d, err := generator.Generate(cfg)
	if err != nil {
		return nil, err
	}
	return NewScene(d)
}

// Tiles returns the scene's read-only tile grid
func (s *Scene) Tiles() world.TileReader {
	return s.Dungeon.Tiles()
}

// SpawnAt returns the spawn kind placed on a tile, if any
func (s *Scene) SpawnAt(p world.Point) (spawn.Kind, bool) {
	k, ok := s.spawnAt[p]
	return k, ok
}

// MarkerAt returns the orientation of the first marker placed on a tile, if any
func (s *Scene) MarkerAt(p world.Point) (world.Direction, bool) {
	ms := s.markerAt[p]
	if len(ms) == 0 {
		return 0, false
	}
	return ms[0].Orientation, true
}

// MarkersAt returns every marker placed on a tile, in planning order
func (s *Scene) MarkersAt(p world.Point) []navigation.Marker {
	return s.markerAt[p]
}

// PlayerStart returns the player spawn position
func (s *Scene) PlayerStart() (world.Point, bool) {
	for _, sp := range s.Spawns.Spawns {
		if sp.Kind == spawn.Player {
			return sp.Position, true
		}
	}
	return world.Point{}, false
}
