// Package spawn derives entity spawn points from a placed room graph.
package spawn

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// ErrNotPlaced is returned when a room has no grid-space center yet
var ErrNotPlaced = errors.New("room has no center; run the layout first")

// Kind is the type of entity to instantiate
type Kind int

// Spawn kinds
const (
	Player Kind = iota
	Enemy
	Boss
)

// String returns the string representation of a spawn kind
func (k Kind) String() string {
	switch k {
	case Player:
		return "Player"
	case Enemy:
		return "Enemy"
	case Boss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// Spawn is one entity to instantiate at a grid position
type Spawn struct {
	Room     roomgraph.NodeID
	Position world.Point
	Kind     Kind
}

// Plan is the ordered output of the planner
type Plan struct {
	Spawns []Spawn

	// Unspecified lists rooms whose kind has no spawn rule (Treasure, Heal).
	// They get no spawn but are reported rather than dropped silently.
	Unspecified []roomgraph.NodeID
}

// Count returns how many spawns of the given kind the plan holds
func (p *Plan) Count(kind Kind) int {
	n := 0
	for _, s := range p.Spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// PlanSpawns walks g depth-first from the root and emits spawns by room kind.
// A room reached through several incoming edges is handled on its first visit only.
func PlanSpawns(g *roomgraph.Graph) (*Plan, error) {
	plan := &Plan{}
	visited := mapset.New[roomgraph.NodeID]()

	for id := range g.Walk() {
		if visited.Has(id) {
			continue
		}
		visited.Put(id)

		center, ok := g.Center(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotPlaced, g.Describe(id))
		}

		switch g.Kind(id) {
		case roomgraph.Start:
			plan.Spawns = append(plan.Spawns, Spawn{Room: id, Position: center, Kind: Player})
		case roomgraph.Boss:
			plan.Spawns = append(plan.Spawns, Spawn{Room: id, Position: center, Kind: Boss})
		case roomgraph.Battle:
			plan.Spawns = append(plan.Spawns, Spawn{Room: id, Position: center, Kind: Enemy})
		case roomgraph.Normal:
			// Nothing spawns in a normal room
		case roomgraph.Treasure, roomgraph.Heal:
			plan.Unspecified = append(plan.Unspecified, id)
		}
	}

	return plan, nil
}
