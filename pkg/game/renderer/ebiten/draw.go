package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"roomforge/pkg/engine/input"
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/spawn"
)

// Draw renders the scene (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.scene == nil {
		return
	}

	e.drawTiles(screen)
	e.drawMarkers(screen)
	e.drawSpawns(screen)
	if e.showMinimap {
		e.drawMinimap(screen)
	}
	e.drawHUD(screen)
}

func (e *EbitenRenderer) drawTiles(screen *ebiten.Image) {
	ts := float32(e.tileSize)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	tiles := e.scene.Tiles()
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			sx := float32(float64(x*e.tileSize) - e.camX)
			sy := float32(float64(y*e.tileSize) - e.camY)
			if sx+ts < 0 || sy+ts < 0 || int(sx) > sw || int(sy) > sh {
				continue
			}
			kind, _ := tiles.TileAt(x, y)
			if clr, ok := e.tileColor(x, y, kind); ok {
				vector.DrawFilledRect(screen, sx, sy, ts, ts, clr, false)
			}
		}
	}
}

// tileColor returns the fill for a tile; hidden walls and void are skipped
func (e *EbitenRenderer) tileColor(x, y int, kind world.TileKind) (color.Color, bool) {
	switch kind {
	case world.TileFloor:
		return colorFloor, true
	case world.TileCorridor:
		return colorCorridor, true
	case world.TileWall:
		return colorWall, e.faces.Has(world.Point{X: x, Y: y})
	default:
		return nil, false
	}
}

func (e *EbitenRenderer) drawSpawns(screen *ebiten.Image) {
	for _, sp := range e.scene.Spawns.Spawns {
		cx, cy := e.toScreen(sp.Position)
		radius := float32(e.tileSize) * 0.45
		clr := colorEnemy
		switch sp.Kind {
		case spawn.Player:
			clr = colorPlayer
		case spawn.Boss:
			clr = colorBoss
			radius = float32(e.tileSize) * 0.9
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
	}
}

func (e *EbitenRenderer) drawMarkers(screen *ebiten.Image) {
	for _, m := range e.scene.Markers {
		cx, cy := e.toScreen(m.Position)
		pts := renderer.ArrowPoints(m.Orientation, float64(cx), float64(cy), float64(e.tileSize))
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 2, colorMarker, true)
		}
	}
}

func (e *EbitenRenderer) drawMinimap(screen *ebiten.Image) {
	if e.minimap == nil {
		start, _ := e.scene.PlayerStart()
		img := renderer.PaintMinimap(e.scene.Tiles(), minimapPixelsPerTile, renderer.DefaultPalette, &start)
		e.minimap = ebiten.NewImageFromImage(img)
	}

	mw := e.minimap.Bounds().Dx()
	x := float64(screen.Bounds().Dx() - mw - 10)
	vector.DrawFilledRect(screen, float32(x-4), 6, float32(mw+8), float32(e.minimap.Bounds().Dy()+8), colorPanel, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, 10)
	screen.DrawImage(e.minimap, op)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	cfg := e.scene.Dungeon.Config()
	lines := []string{
		fmt.Sprintf("%s | depth %d | branches %d | %dx%d", e.status, cfg.Depth, cfg.Branches, cfg.Width, cfg.Height),
		fmt.Sprintf("enemies %d | markers %d", e.scene.Spawns.Count(spawn.Enemy), len(e.scene.Markers)),
		strings.Join(input.HelpLine(
			input.ActionRegenerate, input.ActionNextSeed, input.ActionPrevSeed,
			input.ActionToggleMinimap, input.ActionZoomIn, input.ActionDump, input.ActionQuit,
		), "  "),
	}

	if e.fontSource == nil {
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
		}
		return
	}

	face := &text.GoTextFace{Source: e.fontSource, Size: hudFontSize}
	lineHeight := hudFontSize * 1.4
	vector.DrawFilledRect(screen, 4, 4, 720, float32(lineHeight*float64(len(lines))+8), colorPanel, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 8+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, line, face, op)
	}
}

// toScreen returns the screen position of the center of tile p
func (e *EbitenRenderer) toScreen(p world.Point) (float32, float32) {
	wx, wy := renderer.WorldPosition(p, float64(e.tileSize))
	return float32(wx - e.camX), float32(wy - e.camY)
}
