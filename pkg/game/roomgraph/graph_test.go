package roomgraph

import (
	"errors"
	"slices"
	"testing"

	"roomforge/pkg/engine/world"
)

// diamond builds Start -> {A, B} -> Boss.
func diamond(t *testing.T) (*Graph, NodeID, NodeID, NodeID, NodeID) {
	t.Helper()
	g := New()
	start, _ := g.AddNode(Start, 0, 1)
	a, _ := g.AddNode(Battle, 1, 0)
	b, _ := g.AddNode(Normal, 1, 2)
	boss, _ := g.AddNode(Boss, 2, 1)
	for _, e := range []Edge{{start, a}, {start, b}, {a, boss}, {b, boss}} {
		if err := g.Connect(e.From, e.To); err != nil {
			t.Fatalf("Connect(%d, %d): %v", e.From, e.To, err)
		}
	}
	return g, start, a, b, boss
}

func collect(seq func(func(NodeID) bool)) []NodeID {
	var ids []NodeID
	for id := range seq {
		ids = append(ids, id)
	}
	return ids
}

func TestAddNode_SingleStart(t *testing.T) {
	g := New()
	root, err := g.AddNode(Start, 0, 0)
	if err != nil {
		t.Fatalf("AddNode(Start): %v", err)
	}
	if g.Root() != root {
		t.Errorf("Root() = %d, want %d", g.Root(), root)
	}
	if _, err := g.AddNode(Start, 1, 0); !errors.Is(err, ErrDuplicateStart) {
		t.Errorf("second Start error = %v, want ErrDuplicateStart", err)
	}
}

func TestConnect_Rejections(t *testing.T) {
	g, start, a, _, boss := diamond(t)

	tests := []struct {
		name     string
		from, to NodeID
		want     error
	}{
		{"unknown", start, NodeID(99), ErrUnknownNode},
		{"self loop", a, a, ErrSelfLoop},
		{"into root", a, start, ErrEdgeIntoRoot},
		{"duplicate", a, boss, ErrDuplicateEdge},
		{"cycle", boss, a, ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.Connect(tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Errorf("Connect(%d, %d) error = %v, want %v", tt.from, tt.to, err, tt.want)
			}
		})
	}
}

func TestFreeze(t *testing.T) {
	g, _, a, b, _ := diamond(t)
	g.Freeze()
	if _, err := g.AddNode(Heal, 5, 5); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddNode after Freeze error = %v, want ErrFrozen", err)
	}
	if err := g.Connect(a, b); !errors.Is(err, ErrFrozen) {
		t.Errorf("Connect after Freeze error = %v, want ErrFrozen", err)
	}
}

func TestParent_ConvergenceHasNoSingleParent(t *testing.T) {
	g, start, a, b, boss := diamond(t)

	if _, ok := g.Parent(start); ok {
		t.Error("Parent(root) reported a parent")
	}
	if p, ok := g.Parent(a); !ok || p != start {
		t.Errorf("Parent(a) = %d, %v, want %d, true", p, ok, start)
	}
	if _, ok := g.Parent(boss); ok {
		t.Error("Parent(boss) reported a single parent for a convergence room")
	}
	if got := g.Predecessors(boss); !slices.Equal(got, []NodeID{a, b}) {
		t.Errorf("Predecessors(boss) = %v, want [%d %d]", got, a, b)
	}
	if g.InDegree(boss) != 2 {
		t.Errorf("InDegree(boss) = %d, want 2", g.InDegree(boss))
	}
}

func TestWalk_RepeatsConvergenceRoom(t *testing.T) {
	g, start, a, b, boss := diamond(t)
	want := []NodeID{start, a, boss, b, boss}
	if got := collect(g.Walk()); !slices.Equal(got, want) {
		t.Errorf("Walk = %v, want %v", got, want)
	}
}

func TestWalk_IsRestartable(t *testing.T) {
	g, _, _, _, _ := diamond(t)
	seq := g.Walk()
	first := collect(seq)
	second := collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second walk %v differs from first %v", second, first)
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	g, start, _, _, _ := diamond(t)
	for id := range g.Walk() {
		if id != start {
			t.Errorf("first yielded id = %d, want root %d", id, start)
		}
		break
	}
}

func TestPreorder_UniqueRooms(t *testing.T) {
	g, start, a, b, boss := diamond(t)
	want := []NodeID{start, a, boss, b}
	if got := collect(g.Preorder()); !slices.Equal(got, want) {
		t.Errorf("Preorder = %v, want %v", got, want)
	}
	if got := g.Leaves(); !slices.Equal(got, []NodeID{boss}) {
		t.Errorf("Leaves = %v, want [%d]", got, boss)
	}
	if got := len(g.Edges()); got != 4 {
		t.Errorf("len(Edges) = %d, want 4", got)
	}
}

func TestSetCenter_Once(t *testing.T) {
	g, _, a, _, _ := diamond(t)
	if _, ok := g.Center(a); ok {
		t.Error("Center reported placed before SetCenter")
	}
	if err := g.SetCenter(a, world.Point{X: 27, Y: 4}); err != nil {
		t.Fatalf("SetCenter: %v", err)
	}
	if c, ok := g.Center(a); !ok || c != (world.Point{X: 27, Y: 4}) {
		t.Errorf("Center = %v, %v, want (27, 4), true", c, ok)
	}
	if err := g.SetCenter(a, world.Point{}); !errors.Is(err, ErrCenterAssigned) {
		t.Errorf("second SetCenter error = %v, want ErrCenterAssigned", err)
	}
}

func TestValidate(t *testing.T) {
	g, _, _, _, _ := diamond(t)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate(diamond) = %v", err)
	}

	empty := New()
	if err := empty.Validate(); !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Validate(empty) = %v, want ErrInvalidGraph", err)
	}

	orphaned := New()
	orphaned.AddNode(Start, 0, 0)
	orphaned.AddNode(Battle, 1, 0)
	if err := orphaned.Validate(); !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Validate(orphaned) = %v, want ErrInvalidGraph", err)
	}
}

func TestDescribe(t *testing.T) {
	g, _, a, _, _ := diamond(t)
	if got := g.Describe(a); got != "Battle (1, 0)" {
		t.Errorf("Describe = %q, want %q", got, "Battle (1, 0)")
	}
	if g.Kind(NodeID(42)).String() != "Unknown" {
		t.Error("Kind of unknown id should stringify as Unknown")
	}
}
