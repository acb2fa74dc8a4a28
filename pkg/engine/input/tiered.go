package input

import (
	"sort"
	"time"

	"cavearena/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionHelp
	ActionQuit
	ActionConfirm  // activate the focused menu item (Enter)
	ActionNewArena // regenerate the current arena (F5 / r)
	ActionDumpMap  // write the arena to a text dump (F9)
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyW", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// NewRawInput stamps a device event with the current time.
func NewRawInput(d Device, code string) RawInput {
	return RawInput{Device: d, Code: code, Timestamp: time.Now()}
}

// DebouncedInput is the representation after debouncing/deduplication.
// Each RawInput is already debounced by the underlying libraries (Ebiten,
// terminal raw mode), but the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
// This is the right place to add key-repeat suppression later.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows and Vim keys)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	"?": ActionHelp,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	"enter": ActionConfirm,

	"r":  ActionNewArena,
	"f5": ActionNewArena,

	"f9": ActionDumpMap,
}

// MapToIntent applies the current bindings to a debounced input and
// returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// MoveDirection resolves a movement action to a grid direction.
// The second return is false for non-movement actions.
func MoveDirection(a Action) (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	}
	return 0, false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionNewArena:
		return "New Arena"
	case ActionDumpMap:
		return "Dump Map"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
