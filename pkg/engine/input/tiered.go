package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in a dungeon viewer.
type Action int

const (
	ActionNone Action = iota

	// Camera
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut

	// Generation
	ActionRegenerate // Fresh clock-based seed
	ActionNextSeed
	ActionPrevSeed

	// Meta / UI
	ActionToggleMinimap
	ActionDump
	ActionQuit
)

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device-independent identifier (e.g. "r", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionPanUp,
	"k":           ActionPanUp,
	"arrow_down":  ActionPanDown,
	"j":           ActionPanDown,
	"arrow_left":  ActionPanLeft,
	"h":           ActionPanLeft,
	"arrow_right": ActionPanRight,
	"l":           ActionPanRight,

	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	"r": ActionRegenerate,
	"n": ActionNextSeed,
	"p": ActionPrevSeed,

	"m": ActionToggleMinimap,
	"d": ActionDump,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the bindings to a raw input and returns a high-level Intent.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanUp:
		return "Pan Up"
	case ActionPanDown:
		return "Pan Down"
	case ActionPanLeft:
		return "Pan Left"
	case ActionPanRight:
		return "Pan Right"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionRegenerate:
		return "New Seed"
	case ActionNextSeed:
		return "Next Seed"
	case ActionPrevSeed:
		return "Previous Seed"
	case ActionToggleMinimap:
		return "Minimap"
	case ActionDump:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action, codes sorted.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// HelpLine returns "code Name" pairs for the given actions using the shortest
// bound code of each.
func HelpLine(actions ...Action) []string {
	byAction := GetBindingsByAction()
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		codes := byAction[a]
		if len(codes) == 0 {
			continue
		}
		code := codes[0]
		for _, c := range codes[1:] {
			if len(c) < len(code) {
				code = c
			}
		}
		parts = append(parts, code+" "+ActionName(a))
	}
	return parts
}
