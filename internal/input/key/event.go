package key

import (
	"fmt"
	"strings"
)

// State is the direction of a key transition.
type State uint8

const (
	// Down indicates the key was pressed (or auto-repeated).
	Down State = iota
	// Up indicates the key was released.
	Up
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Location distinguishes keys that exist more than once on a keyboard.
type Location uint8

const (
	// LocationStandard is the default location.
	LocationStandard Location = iota
	// LocationLeft is the left-hand copy of a key, e.g. ShiftLeft.
	LocationLeft
	// LocationRight is the right-hand copy of a key, e.g. ShiftRight.
	LocationRight
	// LocationNumpad is a key on the numeric keypad.
	LocationNumpad
)

// String returns a string representation of the location.
func (l Location) String() string {
	switch l {
	case LocationStandard:
		return "standard"
	case LocationLeft:
		return "left"
	case LocationRight:
		return "right"
	case LocationNumpad:
		return "numpad"
	default:
		return "unknown"
	}
}

// Event represents a single keyboard transition.
type Event struct {
	// State is whether the key went down or up.
	State State

	// Key is the logical key, affected by layout and modifiers.
	Key Key

	// Code is the physical key position.
	Code Code

	// Location is which copy of the key was used.
	Location Location

	// Modifiers contains the modifier keys active at the time of the event.
	Modifiers Modifier

	// IsComposing is true while an IME composition session is active.
	IsComposing bool

	// Repeat is true for auto-repeated Down events.
	Repeat bool
}

// IsDown returns true for key presses.
func (e Event) IsDown() bool {
	return e.State == Down
}

// IsUp returns true for key releases.
func (e Event) IsUp() bool {
	return e.State == Up
}

// String returns a compact representation such as "down Ctrl+a (KeyA)".
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.State.String())
	b.WriteByte(' ')
	if !e.Modifiers.IsEmpty() {
		b.WriteString(e.Modifiers.String())
		b.WriteByte('+')
	}
	b.WriteString(e.Key.String())
	fmt.Fprintf(&b, " (%s", e.Code)
	if e.Location != LocationStandard {
		fmt.Fprintf(&b, ", %s", e.Location)
	}
	b.WriteByte(')')
	if e.Repeat {
		b.WriteString(" repeat")
	}
	return b.String()
}
