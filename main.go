package main

import (
	"flag"
	"log"
	"strings"

	"github.com/leonelquinteros/gotext"

	"roomforge/pkg/engine/input"
	"roomforge/pkg/game/devtools"
	"roomforge/pkg/game/generator"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/renderer/ebiten"
	"roomforge/pkg/game/renderer/tui"
)

const localesDir = "locales"

func initGettext(locale string) {
	gotext.Configure(localesDir, locale, "default")
}

// newRenderer returns the named backend, or nil for "none"
func newRenderer(name string, cfg generator.Config, dumpPath string) renderer.Renderer {
	switch name {
	case "tui":
		t := tui.New()
		t.SetDumpPath(dumpPath)
		return t
	case "ebiten":
		return ebiten.New(cfg, dumpPath)
	case "none":
		return nil
	default:
		log.Fatalf("Unknown renderer %q (want tui, ebiten or none)", name)
		return nil
	}
}

func main() {
	defaults := generator.DefaultConfig()

	algorithm := flag.String("generator", generator.AlgorithmTree, "dungeon generator: "+strings.Join(generator.Algorithms(), " or "))
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	depth := flag.Int("depth", defaults.Depth, "rooms per branch between the start and boss rooms")
	branches := flag.Int("branches", defaults.Branches, "number of branches leaving the start room")
	width := flag.Int("width", defaults.Width, "grid width in tiles")
	height := flag.Int("height", defaults.Height, "grid height in tiles")
	maxRooms := flag.Int("rooms", generator.DefaultMaxRooms, "room placement attempts for the rooms generator")
	rendererName := flag.String("renderer", "tui", "preview backend: tui, ebiten or none")
	dumpPath := flag.String("dump", "", "write a debug map dump to this file")
	locale := flag.String("locale", "en_GB", "locale for labels and legends")
	flag.Parse()

	initGettext(*locale)
	renderer.InitColors()

	cfg := generator.Config{
		Algorithm: *algorithm,
		Seed:      *seed,
		Depth:     *depth,
		Branches:  *branches,
		Width:     *width,
		Height:    *height,
		MaxRooms:  *maxRooms,
	}

	r := newRenderer(*rendererName, cfg, *dumpPath)

	scene, err := renderer.Generate(cfg)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	log.Printf("Generated %d rooms with seed %d (%d spawns, %d markers)",
		scene.Dungeon.Graph().Len(), scene.Dungeon.Seed(), len(scene.Spawns.Spawns), len(scene.Markers))

	if *dumpPath != "" {
		path, err := devtools.DumpSceneToFile(scene, *dumpPath)
		if err != nil {
			log.Fatalf("Map dump failed: %v", err)
		}
		log.Printf("Map dump written to %s", path)
	}

	if r == nil {
		return
	}

	r.Init()
	if err := run(r, scene); err != nil {
		log.Fatalf("%s renderer: %v", r.Name(), err)
	}
}

// browser is a renderer that can keep a terminal session going
type browser interface {
	Browse(s *renderer.Scene, keys tui.KeySource) error
}

// run browses interactively when stdin is a terminal, otherwise renders once
func run(r renderer.Renderer, scene *renderer.Scene) error {
	b, ok := r.(browser)
	if !ok {
		return r.Render(scene)
	}
	keys, err := input.NewTerminalReader()
	if err != nil {
		return r.Render(scene)
	}
	return b.Browse(scene, keys)
}
