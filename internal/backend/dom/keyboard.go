package dom

import (
	"github.com/dshills/uievents/internal/input/key"
)

// KeyboardEvent converts a keydown, keyup or keypress event. keyup is a
// release; keydown and keypress are presses. The second result is false for
// other event types.
func KeyboardEvent(e Event) (key.Event, bool) {
	switch e.Type() {
	case "keyup":
		return keyboardEvent(e, key.Up), true
	case "keydown", "keypress":
		return keyboardEvent(e, key.Down), true
	default:
		return key.Event{}, false
	}
}

// KeydownEvent converts e as a key press regardless of its type.
func KeydownEvent(e Event) key.Event {
	return keyboardEvent(e, key.Down)
}

// KeyupEvent converts e as a key release regardless of its type.
func KeyupEvent(e Event) key.Event {
	return keyboardEvent(e, key.Up)
}

// LocationFromDOM maps KeyboardEvent.location. Unknown values map to
// key.LocationStandard.
func LocationFromDOM(loc int64) key.Location {
	switch loc {
	case 1:
		return key.LocationLeft
	case 2:
		return key.LocationRight
	case 3:
		return key.LocationNumpad
	default:
		return key.LocationStandard
	}
}

func keyboardEvent(e Event, state key.State) key.Event {
	return key.Event{
		State:       state,
		Key:         key.FromString(e.Get("key").String()),
		Code:        key.CodeFromString(e.Get("code").String()),
		Location:    LocationFromDOM(e.Get("location").Int()),
		Modifiers:   modifiers(e.raw),
		IsComposing: e.Get("isComposing").Bool(),
		Repeat:      e.Get("repeat").Bool(),
	}
}
