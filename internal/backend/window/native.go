package window

import (
	"time"

	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
)

// Event is a native window event. The concrete type is one of
// ModifiersChanged, KeyboardInput, CursorEntered, CursorLeft, CursorMoved,
// MouseInput, MouseWheel, Touch or Focused.
type Event interface {
	isWindowEvent()
}

// ElementState is whether a key or button is pressed.
type ElementState uint8

const (
	// Pressed means the key or button went down.
	Pressed ElementState = iota
	// Released means the key or button went up.
	Released
)

// ModifiersChanged reports the new set of held modifiers.
type ModifiersChanged struct {
	Modifiers key.Modifier
}

// KeyboardInput is a key press or release.
type KeyboardInput struct {
	State    ElementState
	Key      key.Key
	Code     key.Code
	Location key.Location
	Repeat   bool
}

// CursorEntered means the cursor entered the window.
type CursorEntered struct{}

// CursorLeft means the cursor left the window.
type CursorLeft struct{}

// Sample is a historical or predicted cursor position. Offset is relative
// to the time the event was received: negative for history, positive for
// predictions.
type Sample struct {
	Position pointer.Position
	Offset   time.Duration
}

// CursorMoved reports a new cursor position.
type CursorMoved struct {
	Position pointer.Position

	// History holds intermediate positions the platform batched, oldest
	// first.
	History []Sample

	// Predicted holds forecast positions, nearest first.
	Predicted []Sample
}

// MouseButton identifies a mouse button. Values 6 through 32 are the
// extra buttons of many-button mice.
type MouseButton uint8

const (
	MouseLeft    MouseButton = 1
	MouseRight   MouseButton = 2
	MouseMiddle  MouseButton = 3
	MouseBack    MouseButton = 4
	MouseForward MouseButton = 5
)

// MouseInput is a mouse button press or release.
type MouseInput struct {
	State  ElementState
	Button MouseButton
}

// DeltaMode is the unit of a wheel delta.
type DeltaMode uint8

const (
	// DeltaLine is in lines or rows.
	DeltaLine DeltaMode = iota
	// DeltaPixel is in logical pixels.
	DeltaPixel
	// DeltaPage is in pages.
	DeltaPage
)

// MouseWheel is a wheel or trackpad scroll.
type MouseWheel struct {
	Mode DeltaMode
	X    float64
	Y    float64
}

// TouchPhase is the stage of a touch's life.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// String returns a string representation of the phase.
func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "started"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Force is the pressure of a touch.
type Force struct {
	// Calibrated is true when Value is an absolute force; otherwise Value
	// is already normalized to [0, 1].
	Calibrated bool
	Value      float64

	// MaxPossible is the largest calibrated force the device reports, or 0
	// if unknown.
	MaxPossible float64

	// Altitude of a calibrated stylus in radians, if reported.
	Altitude *float64
}

// Tilt is a stylus tilt in degrees, as W3C tiltX/tiltY.
type Tilt struct {
	X float32
	Y float32
}

// Touch is one touch point changing phase or position.
type Touch struct {
	Phase    TouchPhase
	ID       int64
	Location pointer.Position
	Force    *Force
	Tilt     *Tilt

	// Primary is the platform's primary-touch flag, nil if the platform
	// does not have one.
	Primary *bool

	History   []Sample
	Predicted []Sample
}

// Focused reports a change of window focus. Reducers produce nothing for it.
type Focused struct {
	Focused bool
}

func (ModifiersChanged) isWindowEvent() {}
func (KeyboardInput) isWindowEvent()    {}
func (CursorEntered) isWindowEvent()    {}
func (CursorLeft) isWindowEvent()       {}
func (CursorMoved) isWindowEvent()      {}
func (MouseInput) isWindowEvent()       {}
func (MouseWheel) isWindowEvent()       {}
func (Touch) isWindowEvent()            {}
func (Focused) isWindowEvent()          {}
