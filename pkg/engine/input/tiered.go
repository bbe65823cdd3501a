// Package input turns device key events into viewer actions. Events pass
// through layers: raw device code, debounced code, binding lookup, intent.
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

// Action represents a high-level intent in a level viewer.
type Action int

const (
	ActionNone Action = iota

	// Scrolling
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollDown
	ActionScrollStart
	ActionScrollEnd

	// Level control
	ActionRegenerate
	ActionHarder
	ActionEasier

	ActionQuit
)

// Intent is the last layer: what the user wants the viewer to do.
type Intent struct {
	Action Action
}

// RawInput is the first-layer event emitted directly from an input device.
// Code is a device-independent name (e.g. "arrow_left", "q", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the second-layer representation. tcell and Ebiten
// already deliver one event per press, so this only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes cannot be rebound
var reserved = map[string]bool{
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
	"ctrl_c":      true,
}

// bindings maps codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_left":  ActionScrollLeft,
	"h":           ActionScrollLeft,
	"arrow_right": ActionScrollRight,
	"l":           ActionScrollRight,
	"arrow_up":    ActionScrollUp,
	"k":           ActionScrollUp,
	"arrow_down":  ActionScrollDown,
	"j":           ActionScrollDown,
	"home":        ActionScrollStart,
	"g":           ActionScrollStart,
	"end":         ActionScrollEnd,
	"G":           ActionScrollEnd,

	"n":               ActionRegenerate,
	"+":               ActionHarder,
	"=":               ActionHarder,
	"numpad_add":      ActionHarder,
	"-":               ActionEasier,
	"numpad_subtract": ActionEasier,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the current bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionFor runs a raw code through every layer and returns the action.
func ActionFor(device Device, code string) Action {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw)).Action
}

// IsScroll reports whether a is one of the scrolling actions. Viewers
// repeat these while the key is held.
func IsScroll(a Action) bool {
	return a >= ActionScrollLeft && a <= ActionScrollDown
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionScrollLeft:
		return "Scroll Left"
	case ActionScrollRight:
		return "Scroll Right"
	case ActionScrollUp:
		return "Scroll Up"
	case ActionScrollDown:
		return "Scroll Down"
	case ActionScrollStart:
		return "Jump to Start"
	case ActionScrollEnd:
		return "Jump to End"
	case ActionRegenerate:
		return "New Level"
	case ActionHarder:
		return "Harder"
	case ActionEasier:
		return "Easier"
	case ActionQuit:
		return "Quit"
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
	// Stable ordering so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for action with code.
// Reserved codes are never removed or rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
