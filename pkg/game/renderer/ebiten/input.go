package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"roomforge/pkg/engine/input"
	"roomforge/pkg/game/devtools"
)

// panSpeed is the camera movement per frame, in tiles
const panSpeed = 0.5

// keyCodes translates Ebiten keys to the shared input codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyEqual:      "=",
	ebiten.KeyKPAdd:      "numpad_add",
	ebiten.KeyMinus:      "-",
	ebiten.KeyKPSubtract: "numpad_subtract",
	ebiten.KeyR:          "r",
	ebiten.KeyN:          "n",
	ebiten.KeyP:          "p",
	ebiten.KeyM:          "m",
	ebiten.KeyD:          "d",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	for key, code := range keyCodes {
		intent := input.MapToIntent(input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: time.Now()})

		// Panning repeats while held, everything else fires once per press
		if isPan(intent.Action) {
			if ebiten.IsKeyPressed(key) {
				e.pan(intent.Action)
			}
			continue
		}
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if intent.Action == input.ActionQuit {
			return ebiten.Termination
		}
		e.apply(intent.Action)
	}
	return nil
}

func isPan(a input.Action) bool {
	return a == input.ActionPanUp || a == input.ActionPanDown || a == input.ActionPanLeft || a == input.ActionPanRight
}

func (e *EbitenRenderer) apply(a input.Action) {
	switch a {
	case input.ActionRegenerate:
		e.regenerate(0)
	case input.ActionNextSeed:
		e.regenerate(e.scene.Dungeon.Seed() + 1)
	case input.ActionPrevSeed:
		if seed := e.scene.Dungeon.Seed() - 1; seed != 0 {
			e.regenerate(seed)
		}
	case input.ActionToggleMinimap:
		e.showMinimap = !e.showMinimap
	case input.ActionZoomIn:
		e.zoom(2)
	case input.ActionZoomOut:
		e.zoom(-2)
	case input.ActionDump:
		if path, err := devtools.DumpSceneToFile(e.scene, e.dumpPath); err != nil {
			log.Printf("Map dump failed: %v", err)
		} else {
			log.Printf("Map dump written to %s", path)
			e.status = "dumped " + path
		}
	}
}

func (e *EbitenRenderer) pan(a input.Action) {
	step := panSpeed * float64(e.tileSize)
	switch a {
	case input.ActionPanLeft:
		e.camX -= step
	case input.ActionPanRight:
		e.camX += step
	case input.ActionPanUp:
		e.camY -= step
	case input.ActionPanDown:
		e.camY += step
	}
}

func (e *EbitenRenderer) zoom(delta int) {
	size := e.tileSize + delta
	if size < minTileSize || size > maxTileSize {
		return
	}
	// Keep the same world point under the camera origin
	e.camX = e.camX / float64(e.tileSize) * float64(size)
	e.camY = e.camY / float64(e.tileSize) * float64(size)
	e.tileSize = size
}
