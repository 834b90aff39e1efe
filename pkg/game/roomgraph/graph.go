// Package roomgraph holds the abstract dungeon topology: rooms and the directed
// edges between them, stored in an arena indexed by NodeID.
package roomgraph

import (
	"errors"
	"fmt"
	"slices"

	"roomforge/pkg/engine/world"
)

// NodeID identifies a room within its Graph
type NodeID int

// NoNode is returned where no room applies
const NoNode NodeID = -1

// Errors returned by graph construction
var (
	ErrUnknownNode    = errors.New("unknown node")
	ErrDuplicateStart = errors.New("graph already has a start room")
	ErrDuplicateEdge  = errors.New("edge already exists")
	ErrSelfLoop       = errors.New("room cannot connect to itself")
	ErrEdgeIntoRoot   = errors.New("start room cannot have incoming edges")
	ErrCycle          = errors.New("edge would create a cycle")
	ErrFrozen         = errors.New("graph topology is frozen")
	ErrCenterAssigned = errors.New("room center already assigned")
)

type node struct {
	kind     RoomKind
	index    world.Point
	center   world.Point
	placed   bool
	children []NodeID
	preds    []NodeID
}

// Graph is a directed acyclic room graph rooted at the single Start room.
// A room may have several predecessors only where branches converge.
type Graph struct {
	nodes  []node
	root   NodeID
	frozen bool
}

// Edge is a parent→child connection
type Edge struct {
	From, To NodeID
}

// New creates an empty graph
func New() *Graph {
	return &Graph{root: NoNode}
}

// AddNode appends a room at the given tree-index coordinates. The first Start
// room becomes the root.
func (g *Graph) AddNode(kind RoomKind, ix, iy int) (NodeID, error) {
	if g.frozen {
		return NoNode, ErrFrozen
	}
	if kind == Start && g.root != NoNode {
		return NoNode, ErrDuplicateStart
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{kind: kind, index: world.Point{X: ix, Y: iy}})
	if kind == Start {
		g.root = id
	}
	return id, nil
}

// Connect adds the edge from → to. Children keep insertion order.
func (g *Graph) Connect(from, to NodeID) error {
	if g.frozen {
		return ErrFrozen
	}
	if !g.Contains(from) || !g.Contains(to) {
		return fmt.Errorf("%w: %d -> %d", ErrUnknownNode, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrSelfLoop, g.Describe(from))
	}
	if to == g.root {
		return ErrEdgeIntoRoot
	}
	if slices.Contains(g.nodes[from].children, to) {
		return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, g.Describe(from), g.Describe(to))
	}
	for id := range g.WalkFrom(to) {
		if id == from {
			return fmt.Errorf("%w: %s -> %s", ErrCycle, g.Describe(from), g.Describe(to))
		}
	}

	g.nodes[from].children = append(g.nodes[from].children, to)
	g.nodes[to].preds = append(g.nodes[to].preds, from)
	return nil
}

// Freeze locks the topology; AddNode and Connect fail afterwards
func (g *Graph) Freeze() {
	g.frozen = true
}

// Frozen reports whether the topology is locked
func (g *Graph) Frozen() bool {
	return g.frozen
}

// Root returns the Start room, or NoNode for an empty graph
func (g *Graph) Root() NodeID {
	return g.root
}

// Len returns the number of rooms
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Contains checks if the id belongs to this graph
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Kind returns the room kind, or an invalid kind for unknown ids
func (g *Graph) Kind(id NodeID) RoomKind {
	if !g.Contains(id) {
		return invalidKind
	}
	return g.nodes[id].kind
}

// Index returns the tree-index coordinates of a room
func (g *Graph) Index(id NodeID) world.Point {
	if !g.Contains(id) {
		return world.Point{}
	}
	return g.nodes[id].index
}

// Children returns a copy of the room's children in insertion order
func (g *Graph) Children(id NodeID) []NodeID {
	if !g.Contains(id) {
		return nil
	}
	return slices.Clone(g.nodes[id].children)
}

// Predecessors returns a copy of every room with an edge into id
func (g *Graph) Predecessors(id NodeID) []NodeID {
	if !g.Contains(id) {
		return nil
	}
	return slices.Clone(g.nodes[id].preds)
}

// InDegree returns the number of incoming edges
func (g *Graph) InDegree(id NodeID) int {
	if !g.Contains(id) {
		return 0
	}
	return len(g.nodes[id].preds)
}

// Parent returns the single predecessor of a room. It reports false for the
// root and for convergence rooms, which have no single parent.
func (g *Graph) Parent(id NodeID) (NodeID, bool) {
	if g.InDegree(id) != 1 {
		return NoNode, false
	}
	return g.nodes[id].preds[0], true
}

// Center returns the grid-space center, and false until the layout assigns one
func (g *Graph) Center(id NodeID) (world.Point, bool) {
	if !g.Contains(id) {
		return world.Point{}, false
	}
	n := g.nodes[id]
	return n.center, n.placed
}

// SetCenter records the grid-space center of a room. Each room is placed once.
func (g *Graph) SetCenter(id NodeID, p world.Point) error {
	if !g.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if g.nodes[id].placed {
		return fmt.Errorf("%w: %s", ErrCenterAssigned, g.Describe(id))
	}
	g.nodes[id].center = p
	g.nodes[id].placed = true
	return nil
}

// Edges returns every parent→child edge in pre-order of the parents
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for id := range g.Preorder() {
		for _, child := range g.nodes[id].children {
			edges = append(edges, Edge{From: id, To: child})
		}
	}
	return edges
}

// Leaves returns every reachable room with no children, in pre-order
func (g *Graph) Leaves() []NodeID {
	var leaves []NodeID
	for id := range g.Preorder() {
		if len(g.nodes[id].children) == 0 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// Describe returns a short debug form such as "Battle (1, 5)"
func (g *Graph) Describe(id NodeID) string {
	if !g.Contains(id) {
		return fmt.Sprintf("Unknown #%d", id)
	}
	n := g.nodes[id]
	return fmt.Sprintf("%s (%d, %d)", n.kind, n.index.X, n.index.Y)
}
