package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Castle activities
	ActionTalk
	ActionPop
	ActionQuests

	// Meta / UI
	ActionHelp
	ActionQuit
	ActionConfirm // dismiss a notification, advance dialogue
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Code keeps the raw code that produced it, for direction parsing and messages.
type Intent struct {
	Action Action
	Code   string
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "t", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Codes are lower-cased and trimmed; repeats are left to the device layer.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,

	// Activities
	"t":      ActionTalk,
	"talk":   ActionTalk,
	"p":      ActionPop,
	"pop":    ActionPop,
	"q":      ActionQuests,
	"quests": ActionQuests,
	"j":      ActionQuests,

	// Help
	"?":    ActionHelp,
	"h":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"exit":   ActionQuit,
	"escape": ActionQuit,

	// Confirm
	"enter": ActionConfirm,
	"space": ActionConfirm,
	"click": ActionConfirm,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Code: ev.Code}
	}
	return Intent{Action: ActionNone, Code: ev.Code}
}

// IntentFromCode runs a code through all layers
func IntentFromCode(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
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
	case ActionTalk:
		return "Talk"
	case ActionPop:
		return "Pop Balloon"
	case ActionQuests:
		return "Quests"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
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
	// Stable ordering within each action so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
