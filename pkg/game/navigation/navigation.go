// Package navigation places the directional markers a UI shows so the player
// can pick the next room to travel to.
package navigation

import (
	"errors"
	"fmt"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// ErrNotPlaced is returned when a room has no grid-space center yet
var ErrNotPlaced = errors.New("room has no center; run the layout first")

// Marker offsets from the parent's center, in tiles
const (
	ForkOffset     = 4 // Above or below a fork room
	StraightOffset = 7 // To the right of a single-exit room
)

// Marker points from a room toward one of its children
type Marker struct {
	From        roomgraph.NodeID
	To          roomgraph.NodeID
	Position    world.Point
	Orientation world.Direction
}

// PlanMarkers returns one marker per parent→child edge, in pre-order.
//
// At a fork (more than one child) the marker sits above the parent for a
// child on a higher row and below it for a child on a lower row. Everything
// else - single exits and fork children on the parent's own row - gets a
// right-facing marker beside the parent.
func PlanMarkers(g *roomgraph.Graph) ([]Marker, error) {
	var markers []Marker

	for id := range g.Preorder() {
		children := g.Children(id)
		if len(children) == 0 {
			continue
		}

		parent, ok := g.Center(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotPlaced, g.Describe(id))
		}
		fork := len(children) > 1

		for _, child := range children {
			target, ok := g.Center(child)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotPlaced, g.Describe(child))
			}

			m := Marker{From: id, To: child}
			switch {
			case fork && target.Y < parent.Y:
				m.Position = parent.Add(0, -ForkOffset)
				m.Orientation = world.Up
			case fork && target.Y > parent.Y:
				m.Position = parent.Add(0, ForkOffset)
				m.Orientation = world.Down
			default:
				m.Position = parent.Add(StraightOffset, 0)
				m.Orientation = world.Right
			}
			markers = append(markers, m)
		}
	}

	return markers, nil
}
