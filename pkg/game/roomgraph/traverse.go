package roomgraph

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Walk yields every room reachable from the root in depth-first pre-order.
// A convergence room is yielded once per path that reaches it. Each call to
// the returned sequence starts a fresh traversal.
func (g *Graph) Walk() iter.Seq[NodeID] {
	return g.WalkFrom(g.root)
}

// WalkFrom is Walk starting at an arbitrary room
func (g *Graph) WalkFrom(start NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !g.Contains(start) {
			return
		}

		pending := stack.New[NodeID]()
		pending.Push(start)
		for pending.Size() > 0 {
			id := pending.Pop()
			if !yield(id) {
				return
			}

			// Push in reverse so the first child is visited first
			children := g.nodes[id].children
			for i := len(children) - 1; i >= 0; i-- {
				pending.Push(children[i])
			}
		}
	}
}

// Preorder yields each reachable room exactly once, in the order Walk first reaches it
func (g *Graph) Preorder() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		seen := mapset.New[NodeID]()
		for id := range g.Walk() {
			if seen.Has(id) {
				continue
			}
			seen.Put(id)
			if !yield(id) {
				return
			}
		}
	}
}
