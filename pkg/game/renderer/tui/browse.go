package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"roomforge/pkg/engine/input"
	"roomforge/pkg/game/devtools"
	"roomforge/pkg/game/renderer"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

// panStep is how many tiles one pan key press scrolls
const panStep = 8

// KeySource supplies key presses to Browse
type KeySource interface {
	ReadInput() (input.RawInput, error)
}

// SetDumpPath sets where the dump key writes (empty for the default file)
func (t *TUIRenderer) SetDumpPath(path string) {
	t.dumpPath = path
}

// Browse renders s and then reacts to keys until quit or the key source is
// exhausted. Regeneration replaces the scene; the previous one is not modified.
func (t *TUIRenderer) Browse(s *renderer.Scene, keys KeySource) error {
	status := ""
	for {
		if !t.plain {
			io.WriteString(t.out, clearScreen)
		}
		if err := t.Render(s); err != nil {
			return err
		}
		if status != "" {
			fmt.Fprintln(t.out, "status: "+status)
		}
		fmt.Fprintln(t.out, strings.Join(input.HelpLine(
			input.ActionRegenerate, input.ActionNextSeed, input.ActionPrevSeed,
			input.ActionPanLeft, input.ActionPanRight, input.ActionDump, input.ActionQuit,
		), "  "))

		ev, err := keys.ReadInput()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		status = ""
		switch input.MapToIntent(ev).Action {
		case input.ActionQuit:
			return nil
		case input.ActionRegenerate:
			s, status = t.regenerate(s, 0)
		case input.ActionNextSeed:
			s, status = t.regenerate(s, s.Dungeon.Seed()+1)
		case input.ActionPrevSeed:
			if seed := s.Dungeon.Seed() - 1; seed != 0 {
				s, status = t.regenerate(s, seed)
			}
		case input.ActionPanLeft:
			t.colOffset -= panStep
		case input.ActionPanRight:
			t.colOffset += panStep
		case input.ActionPanUp:
			t.rowOffset -= panStep
		case input.ActionPanDown:
			t.rowOffset += panStep
		case input.ActionDump:
			path, err := devtools.DumpSceneToFile(s, t.dumpPath)
			if err != nil {
				status = err.Error()
			} else {
				status = "dumped " + path
			}
		}
	}
}

// regenerate returns a new scene for seed, or the current one and the error text
func (t *TUIRenderer) regenerate(s *renderer.Scene, seed int64) (*renderer.Scene, string) {
	cfg := s.Dungeon.Config()
	cfg.Seed = seed
	next, err := renderer.Generate(cfg)
	if err != nil {
		return s, err.Error()
	}
	return next, fmt.Sprintf("seed %d", next.Dungeon.Seed())
}
