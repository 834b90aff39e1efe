package roomgraph

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph wraps every structural problem reported by Validate
var ErrInvalidGraph = errors.New("invalid room graph")

// Validate checks the graph for structural issues: a single Start room at the
// root with no incoming edges, and every room reachable from it.
func (g *Graph) Validate() error {
	if g.root == NoNode {
		return fmt.Errorf("%w: no start room", ErrInvalidGraph)
	}
	if g.Kind(g.root) != Start {
		return fmt.Errorf("%w: root is %s, want Start", ErrInvalidGraph, g.Kind(g.root))
	}
	if g.InDegree(g.root) != 0 {
		return fmt.Errorf("%w: start room has %d incoming edges", ErrInvalidGraph, g.InDegree(g.root))
	}

	starts := 0
	for _, n := range g.nodes {
		if n.kind == Start {
			starts++
		}
	}
	if starts != 1 {
		return fmt.Errorf("%w: %d start rooms", ErrInvalidGraph, starts)
	}

	reached := 0
	for range g.Preorder() {
		reached++
	}
	if reached != len(g.nodes) {
		return fmt.Errorf("%w: %d of %d rooms unreachable from start", ErrInvalidGraph, len(g.nodes)-reached, len(g.nodes))
	}

	return nil
}
