package generator

import (
	"errors"
	"testing"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/roomgraph"
)

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero depth", Config{Seed: 1, Depth: 0, Branches: 3, Width: 100, Height: 100}},
		{"zero branches", Config{Seed: 1, Depth: 2, Branches: 0, Width: 100, Height: 100}},
		{"zero width", Config{Seed: 1, Depth: 2, Branches: 3, Width: 0, Height: 100}},
		{"grid too small", Config{Seed: 1, Depth: 5, Branches: 3, Width: 50, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Generate(tt.cfg)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("Generate error = %v, want ErrConfiguration", err)
			}
			if d != nil {
				t.Error("Generate returned a partial dungeon")
			}
		})
	}
}

func TestGenerateDungeon_Scenario(t *testing.T) {
	d, err := GenerateDungeon(2024, 2, 3, 100, 100)
	if err != nil {
		t.Fatalf("GenerateDungeon: %v", err)
	}
	g := d.Graph()
	if !g.Frozen() {
		t.Error("published graph is not frozen")
	}
	if len(g.Children(d.Root())) != 3 {
		t.Errorf("root has %d children, want 3", len(g.Children(d.Root())))
	}
	boss := findBoss(t, g)
	if g.InDegree(boss) != 3 {
		t.Errorf("boss in-degree = %d, want 3", g.InDegree(boss))
	}
	if d.Tiles().Width() != 100 || d.Tiles().Height() != 100 {
		t.Errorf("tiles are %dx%d, want 100x100", d.Tiles().Width(), d.Tiles().Height())
	}
	if _, err := g.AddNode(roomgraph.Normal, 9, 9); !errors.Is(err, roomgraph.ErrFrozen) {
		t.Errorf("AddNode on published graph error = %v, want ErrFrozen", err)
	}
}

func TestGenerate_SameSeedIsDeterministic(t *testing.T) {
	cfg := Config{Seed: 99, Depth: 3, Branches: 4, Width: 100, Height: 100}
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if a.Graph() == b.Graph() {
		t.Fatal("regeneration reused the previous graph")
	}
	for id := range a.Graph().Preorder() {
		if a.Graph().Describe(id) != b.Graph().Describe(id) {
			t.Errorf("room %d differs: %s vs %s", id, a.Graph().Describe(id), b.Graph().Describe(id))
		}
	}

	ta, tb := a.Tiles(), b.Tiles()
	for y := 0; y < ta.Height(); y++ {
		for x := 0; x < ta.Width(); x++ {
			ka, _ := ta.TileAt(x, y)
			kb, _ := tb.TileAt(x, y)
			if ka != kb {
				t.Fatalf("tile (%d, %d) differs: %v vs %v", x, y, ka, kb)
			}
		}
	}
}

func TestGenerate_ZeroSeedIsResolved(t *testing.T) {
	cfg := DefaultConfig()
	d, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate(DefaultConfig): %v", err)
	}
	if d.Seed() == 0 {
		t.Error("Seed() = 0, want the resolved time-based seed")
	}
	if d.Config().Seed != d.Seed() {
		t.Errorf("Config().Seed = %d, want %d", d.Config().Seed, d.Seed())
	}

	replay, err := Generate(d.Config())
	if err != nil {
		t.Fatalf("Generate(replay): %v", err)
	}
	for id := range d.Graph().Preorder() {
		if d.Graph().Kind(id) != replay.Graph().Kind(id) {
			t.Errorf("replayed room %d kind %v, want %v", id, replay.Graph().Kind(id), d.Graph().Kind(id))
		}
	}
}

func TestGenerate_FloodFillCoversEveryRoom(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d, err := GenerateDungeon(seed, 1+int(seed%4), 1+int(seed%5), 120, 120)
		if err != nil {
			t.Fatalf("GenerateDungeon(seed=%d): %v", seed, err)
		}
		tiles := d.Tiles()
		start, _ := d.Graph().Center(d.Root())

		// Independent BFS over the read-only view
		visited := map[world.Point]bool{start: true}
		queue := []world.Point{start}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, dir := range world.AllDirections() {
				n := p.Step(dir)
				kind, err := tiles.TileAt(n.X, n.Y)
				if err != nil || !kind.Passable() || visited[n] {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}

		for id := range d.Graph().Preorder() {
			center, _ := d.Graph().Center(id)
			if !visited[center] {
				t.Errorf("seed %d: %s unreachable", seed, d.Graph().Describe(id))
			}
		}
	}
}
