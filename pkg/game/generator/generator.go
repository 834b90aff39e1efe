package generator

import (
	"fmt"
	"slices"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// GraphGenerator is an interface for room-graph construction algorithms
type GraphGenerator interface {
	Generate(seed int64, depth, branches int) (*roomgraph.Graph, error)
	Name() string
}

// DungeonBuilder produces a placed room graph and its tile grid in one pass.
// Every room of the returned graph has its center assigned.
type DungeonBuilder interface {
	Build(seed int64, cfg Config) (*roomgraph.Graph, *world.GridMap, error)
	Name() string
}

// Builder names accepted in Config.Algorithm
const (
	AlgorithmTree  = "tree"
	AlgorithmRooms = "rooms"
)

// Available generators
var (
	RoomTree    = &RoomTreeGenerator{}
	RandomRooms = &RandomRoomsGenerator{}
)

// DefaultGenerator is the default room-graph generator
var DefaultGenerator GraphGenerator = RoomTree

var builders = map[string]DungeonBuilder{
	AlgorithmTree:  treeBuilder{},
	AlgorithmRooms: RandomRooms,
}

// BuilderFor returns the builder registered under name; empty selects the tree
func BuilderFor(name string) (DungeonBuilder, error) {
	if name == "" {
		name = AlgorithmTree
	}
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown algorithm %q (want one of %v)", ErrConfiguration, name, Algorithms())
	}
	return b, nil
}

// Algorithms returns the registered builder names, sorted
func Algorithms() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// treeBuilder runs DefaultGenerator and then lays the graph out
type treeBuilder struct{}

func (treeBuilder) Name() string {
	return DefaultGenerator.Name()
}

func (treeBuilder) Build(seed int64, cfg Config) (*roomgraph.Graph, *world.GridMap, error) {
	graph, err := DefaultGenerator.Generate(seed, cfg.Depth, cfg.Branches)
	if err != nil {
		return nil, nil, err
	}
	tiles, err := BuildLayout(graph, cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	return graph, tiles, nil
}
