package generator

import (
	"fmt"
	"math/rand"

	"roomforge/pkg/game/roomgraph"
)

// RoomTreeGenerator builds a fan of straight branches from the start room
// that converge on a single shared boss room.
type RoomTreeGenerator struct{}

// Name returns the name of this generator
func (t *RoomTreeGenerator) Name() string {
	return "Room Tree"
}

// Generate creates the room graph. Kinds are drawn from a source seeded with
// seed, so the same inputs always give the same graph. The returned graph is
// not frozen; the layout builder still has to place it.
func (t *RoomTreeGenerator) Generate(seed int64, depth, branches int) (*roomgraph.Graph, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth must be at least 1, got %d", ErrConfiguration, depth)
	}
	if branches < 1 {
		return nil, fmt.Errorf("%w: branch count must be at least 1, got %d", ErrConfiguration, branches)
	}

	rng := rand.New(rand.NewSource(seed))
	g := roomgraph.New()

	// Index space: x is the distance from the start, y separates branches
	centerY := branches / 2
	root, err := g.AddNode(roomgraph.Start, 0, centerY)
	if err != nil {
		return nil, err
	}

	// Step 1: the fork - every branch head hangs directly off the start room
	heads := make([]roomgraph.NodeID, 0, branches)
	for _, offset := range branchOffsets(branches) {
		head, err := g.AddNode(randomRoomKind(rng), 1, centerY+offset)
		if err != nil {
			return nil, err
		}
		if err := g.Connect(root, head); err != nil {
			return nil, err
		}
		heads = append(heads, head)
	}

	// Step 2: extend each branch as a straight chain until it is depth rooms long
	for _, head := range heads {
		if err := t.extendChain(g, rng, head, depth); err != nil {
			return nil, err
		}
	}

	// Step 3: one shared boss room becomes a child of every leaf
	leaves := g.Leaves()
	boss, err := g.AddNode(roomgraph.Boss, depth+1, centerY)
	if err != nil {
		return nil, err
	}
	for _, leaf := range leaves {
		if err := g.Connect(leaf, boss); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// extendChain appends one room per level after head, keeping the branch's row
func (t *RoomTreeGenerator) extendChain(g *roomgraph.Graph, rng *rand.Rand, head roomgraph.NodeID, depth int) error {
	current := head
	for level := 2; level <= depth; level++ {
		index := g.Index(current)
		next, err := g.AddNode(randomRoomKind(rng), index.X+1, index.Y)
		if err != nil {
			return err
		}
		if err := g.Connect(current, next); err != nil {
			return err
		}
		current = next
	}
	return nil
}

// branchOffsets spreads n branches symmetrically around 0.
// Odd counts include the center row (3 -> -1, 0, 1); even counts skip it
// (4 -> -2, -1, 1, 2).
func branchOffsets(n int) []int {
	offsets := make([]int, 0, n)
	half := n / 2
	for offset := -half; offset <= half; offset++ {
		if offset == 0 && n%2 == 0 {
			continue
		}
		offsets = append(offsets, offset)
	}
	return offsets
}

// randomRoomKind returns Normal, Battle or Treasure with equal probability
func randomRoomKind(rng *rand.Rand) roomgraph.RoomKind {
	return roomgraph.ChainKinds[rng.Intn(len(roomgraph.ChainKinds))]
}
