package pointer

import "fmt"

// Event is a pointer event. The concrete type is one of Down, Up, Move,
// Cancel, Enter, Leave or Scroll.
type Event interface {
	// PointerInfo returns the pointer that produced the event.
	PointerInfo() Info
	isEvent()
}

// ButtonEvent is the payload shared by Down and Up.
type ButtonEvent struct {
	Pointer Info
	// Button is the button that changed; ButtonNone if unknown.
	Button Button
	State  State
}

// Update is the payload of Move.
type Update struct {
	Pointer Info
	Current State
	// Coalesced holds samples the platform batched before Current, ordered
	// by time.
	Coalesced []State
	// Predicted holds forecast samples after Current, ordered by time.
	Predicted []State
}

// ScrollEvent is the payload of Scroll.
type ScrollEvent struct {
	Pointer Info
	Delta   ScrollDelta
	State   State
}

// Down is a button press or a new contact.
type Down ButtonEvent

// Up is a button release or a lifted contact.
type Up ButtonEvent

// Move is a change of position or other state without a button transition.
type Move Update

// Cancel means the platform stopped delivering events for the pointer.
type Cancel Info

// Enter means the pointer entered the window.
type Enter Info

// Leave means the pointer left the window.
type Leave Info

// Scroll is a wheel or scroll gesture.
type Scroll ScrollEvent

func (e Down) PointerInfo() Info   { return e.Pointer }
func (e Up) PointerInfo() Info     { return e.Pointer }
func (e Move) PointerInfo() Info   { return e.Pointer }
func (e Cancel) PointerInfo() Info { return Info(e) }
func (e Enter) PointerInfo() Info  { return Info(e) }
func (e Leave) PointerInfo() Info  { return Info(e) }
func (e Scroll) PointerInfo() Info { return e.Pointer }

func (Down) isEvent()   {}
func (Up) isEvent()     {}
func (Move) isEvent()   {}
func (Cancel) isEvent() {}
func (Enter) isEvent()  {}
func (Leave) isEvent()  {}
func (Scroll) isEvent() {}

// IsPrimaryPointer returns true if e was produced by the primary pointer.
func IsPrimaryPointer(e Event) bool {
	return e != nil && e.PointerInfo().IsPrimary()
}

// StateOf returns the current state carried by e. Cancel, Enter and Leave
// carry no state.
func StateOf(e Event) (State, bool) {
	switch ev := e.(type) {
	case Down:
		return ev.State, true
	case Up:
		return ev.State, true
	case Move:
		return ev.Current, true
	case Scroll:
		return ev.State, true
	default:
		return State{}, false
	}
}

// Name returns the variant name of e.
func Name(e Event) string {
	switch e.(type) {
	case Down:
		return "down"
	case Up:
		return "up"
	case Move:
		return "move"
	case Cancel:
		return "cancel"
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	case Scroll:
		return "scroll"
	default:
		return fmt.Sprintf("%T", e)
	}
}
