package dom

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidEvent is returned when data is not a JSON object with a string
// "type" field.
var ErrInvalidEvent = errors.New("dom: invalid event")

// Event is a serialized DOM event.
type Event struct {
	raw gjson.Result
}

// ParseEvent wraps a JSON-encoded DOM event.
func ParseEvent(data []byte) (Event, error) {
	if !gjson.ValidBytes(data) {
		return Event{}, ErrInvalidEvent
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() || r.Get("type").Type != gjson.String {
		return Event{}, ErrInvalidEvent
	}
	return Event{raw: r}, nil
}

// FromResult wraps an already parsed JSON object.
func FromResult(r gjson.Result) Event {
	return Event{raw: r}
}

// Type returns the DOM event type, such as "pointerdown".
func (e Event) Type() string {
	return e.raw.Get("type").String()
}

// TimeStamp returns the event's timeStamp in milliseconds.
func (e Event) TimeStamp() float64 {
	return e.raw.Get("timeStamp").Float()
}

// Get returns a raw field.
func (e Event) Get(path string) gjson.Result {
	return e.raw.Get(path)
}

// Raw returns the JSON text of the event.
func (e Event) Raw() string {
	return e.raw.Raw
}

// Kind groups DOM event types by the interface that carries them.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPointer
	KindMouse
	KindWheel
	KindTouch
	KindKeyboard
)

var kinds = map[string]Kind{
	"pointerdown":      KindPointer,
	"pointerup":        KindPointer,
	"pointermove":      KindPointer,
	"pointerrawupdate": KindPointer,
	"pointercancel":    KindPointer,
	"pointerenter":     KindPointer,
	"pointerleave":     KindPointer,
	"pointerover":      KindPointer,
	"pointerout":       KindPointer,
	"mousedown":        KindMouse,
	"mouseup":          KindMouse,
	"mousemove":        KindMouse,
	"mouseenter":       KindMouse,
	"mouseleave":       KindMouse,
	"wheel":            KindWheel,
	"touchstart":       KindTouch,
	"touchmove":        KindTouch,
	"touchend":         KindTouch,
	"touchcancel":      KindTouch,
	"keydown":          KindKeyboard,
	"keyup":            KindKeyboard,
	"keypress":         KindKeyboard,
}

// Kind returns the event's kind.
func (e Event) Kind() Kind {
	return kinds[e.Type()]
}
