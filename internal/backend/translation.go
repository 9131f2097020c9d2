package backend

import (
	"fmt"

	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
)

// Translation is one event produced by a reducer: either a
// KeyboardTranslation or a PointerTranslation.
type Translation interface {
	fmt.Stringer
	isTranslation()
}

// KeyboardTranslation carries a keyboard event.
type KeyboardTranslation struct {
	Event key.Event
}

// PointerTranslation carries a pointer event.
type PointerTranslation struct {
	Event pointer.Event
}

func (KeyboardTranslation) isTranslation() {}
func (PointerTranslation) isTranslation()  {}

func (t KeyboardTranslation) String() string {
	return "keyboard " + t.Event.String()
}

func (t PointerTranslation) String() string {
	if t.Event == nil {
		return "pointer <nil>"
	}
	return fmt.Sprintf("pointer %s %s", pointer.Name(t.Event), t.Event.PointerInfo())
}

// Keyboard wraps e as a Translation.
func Keyboard(e key.Event) Translation {
	return KeyboardTranslation{Event: e}
}

// Pointer wraps e as a Translation.
func Pointer(e pointer.Event) Translation {
	return PointerTranslation{Event: e}
}

// PointerEvents extracts the pointer events from ts, in order.
func PointerEvents(ts []Translation) []pointer.Event {
	var out []pointer.Event
	for _, t := range ts {
		if p, ok := t.(PointerTranslation); ok && p.Event != nil {
			out = append(out, p.Event)
		}
	}
	return out
}

// PrimaryResult picks one event out of a multi-event result: the first event
// from the primary pointer, or else the first event. The second result is
// false only when events is empty.
func PrimaryResult(events []pointer.Event) (pointer.Event, bool) {
	if len(events) == 0 {
		return nil, false
	}
	for _, e := range events {
		if pointer.IsPrimaryPointer(e) {
			return e, true
		}
	}
	return events[0], true
}
