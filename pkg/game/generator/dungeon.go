package generator

import (
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

// Dungeon is the result of one generation pass: a frozen room graph with
// every center assigned, and the rasterized tile grid. Both are read-only.
type Dungeon struct {
	config Config
	seed   int64
	graph  *roomgraph.Graph
	tiles  *world.GridMap
}

// Generate runs the builder selected by cfg.Algorithm.
// Every call returns a brand-new Dungeon; on error nothing is returned.
func Generate(cfg Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	builder, err := BuilderFor(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	seed := cfg.ResolvedSeed()
	graph, tiles, err := builder.Build(seed, cfg)
	if err != nil {
		return nil, err
	}
	graph.Freeze()

	cfg.Seed = seed
	return &Dungeon{
		config: cfg,
		seed:   seed,
		graph:  graph,
		tiles:  tiles,
	}, nil
}

// GenerateDungeon is Generate with positional parameters
func GenerateDungeon(seed int64, depth, branches, width, height int) (*Dungeon, error) {
	return Generate(Config{
		Seed:     seed,
		Depth:    depth,
		Branches: branches,
		Width:    width,
		Height:   height,
	})
}

// Graph returns the room graph
func (d *Dungeon) Graph() *roomgraph.Graph {
	return d.graph
}

// Root returns the start room
func (d *Dungeon) Root() roomgraph.NodeID {
	return d.graph.Root()
}

// Tiles returns the read-only tile grid
func (d *Dungeon) Tiles() world.TileReader {
	return d.tiles
}

// Seed returns the seed actually used, so a time-seeded run can be replayed
func (d *Dungeon) Seed() int64 {
	return d.seed
}

// Config returns the configuration with the seed resolved
func (d *Dungeon) Config() Config {
	return d.config
}
