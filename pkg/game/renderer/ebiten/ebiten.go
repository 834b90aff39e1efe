// Package ebiten provides an Ebiten-based windowed preview of a dungeon scene.
package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"roomforge/pkg/game/generator"
	"roomforge/pkg/game/renderer"
)

// Window and drawing defaults
const (
	windowWidth          = 1024
	windowHeight         = 768
	defaultTileSize      = 8
	minTileSize          = 2
	maxTileSize          = 32
	minimapPixelsPerTile = 2
	hudFontSize          = 14
)

// Color palette
var (
	colorBackground = color.RGBA{15, 15, 26, 255}
	colorWall       = color.RGBA{60, 60, 80, 255}
	colorFloor      = color.RGBA{160, 160, 180, 255}
	colorCorridor   = color.RGBA{120, 110, 90, 255}
	colorPlayer     = color.RGBA{0, 255, 0, 255}
	colorEnemy      = color.RGBA{255, 120, 120, 255}
	colorBoss       = color.RGBA{255, 40, 40, 255}
	colorMarker     = color.RGBA{100, 200, 255, 255}
	colorText       = color.RGBA{200, 210, 245, 255}
	colorPanel      = color.RGBA{30, 30, 50, 220}
)

// EbitenRenderer shows a scene in a window and regenerates it on demand.
// Key bindings come from the input package.
type EbitenRenderer struct {
	cfg   generator.Config
	scene *renderer.Scene
	faces renderer.WallFaceSet

	minimap     *ebiten.Image
	showMinimap bool

	tileSize   int
	camX, camY float64

	fontSource *text.GoTextFaceSource
	status     string
	dumpPath   string
}

// New creates an Ebiten renderer. cfg is reused when regenerating and
// dumpPath is where the dump key writes (empty for the default file).
func New(cfg generator.Config, dumpPath string) *EbitenRenderer {
	return &EbitenRenderer{
		cfg:         cfg,
		dumpPath:    dumpPath,
		tileSize:    defaultTileSize,
		showMinimap: true,
	}
}

// Name returns the backend name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init loads the HUD font and configures the window
func (e *EbitenRenderer) Init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("HUD font unavailable, falling back to debug text: %v", err)
	} else {
		e.fontSource = src
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("roomforge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Render opens the window and blocks until it is closed
func (e *EbitenRenderer) Render(s *renderer.Scene) error {
	e.setScene(s)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// setScene swaps in a new scene. The previous scene is left untouched.
func (e *EbitenRenderer) setScene(s *renderer.Scene) {
	e.scene = s
	e.cfg = s.Dungeon.Config()
	e.faces = renderer.WallFaces(s.Tiles())
	e.minimap = nil
	e.status = fmt.Sprintf("seed %d", s.Dungeon.Seed())
}

// regenerate builds a brand-new scene for seed (0 = time-based)
func (e *EbitenRenderer) regenerate(seed int64) {
	cfg := e.cfg
	cfg.Seed = seed
	s, err := renderer.Generate(cfg)
	if err != nil {
		log.Printf("Regeneration failed: %v", err)
		e.status = err.Error()
		return
	}
	log.Printf("Regenerated dungeon with seed %d", s.Dungeon.Seed())
	e.setScene(s)
}

// Layout uses the window size as the screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
