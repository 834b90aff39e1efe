package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"roomforge/pkg/game/generator"
	"roomforge/pkg/game/renderer"
)

func TestRender_DrawsOverlays(t *testing.T) {
	s, err := renderer.Generate(generator.Config{Seed: 12, Depth: 1, Branches: 1, Width: 60, Height: 10})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	r := NewWithWriter(&buf, 0)
	r.Init()
	if err := r.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := color.ClearCode(buf.String())
	lines := strings.Split(out, "\n")

	start, _ := s.PlayerStart()
	row := lines[start.Y]
	if got := string([]rune(row)[start.X]); got != renderer.IconPlayer {
		t.Errorf("tile at player start = %q, want %q\n%s", got, renderer.IconPlayer, out)
	}
	if !strings.Contains(out, renderer.IconBoss) {
		t.Error("boss icon missing from output")
	}
	if !strings.Contains(out, renderer.IconMarkRight) {
		t.Error("marker icon missing from output")
	}
	if !strings.Contains(out, "LEGEND") {
		t.Error("legend missing from output")
	}
}

func TestRender_ClipsColumns(t *testing.T) {
	s, err := renderer.Generate(generator.Config{Seed: 4, Depth: 1, Branches: 1, Width: 60, Height: 10})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	r := NewWithWriter(&buf, 20)
	r.Init()
	if err := r.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := color.ClearCode(buf.String())
	first := strings.Split(out, "\n")[0]
	if n := len([]rune(first)); n != 20 {
		t.Errorf("first row has %d columns, want 20", n)
	}
}
