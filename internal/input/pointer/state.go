package pointer

import (
	"math"

	"github.com/dshills/uievents/internal/input/key"
)

// Position is a point in physical pixels, Y down.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Scale returns p multiplied by f.
func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f}
}

// Size is a width and height in physical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Orientation of a pen or touch contact relative to the input surface.
type Orientation struct {
	// Altitude is the angle between the pointer axis and the surface, in
	// radians. π/2 is perpendicular to the surface.
	Altitude float32

	// Azimuth is the angle of the pointer axis projected onto the surface,
	// in radians, measured from the positive X axis.
	Azimuth float32
}

// DefaultOrientation is a pointer perpendicular to the surface.
var DefaultOrientation = Orientation{Altitude: math.Pi / 2, Azimuth: math.Pi / 2}

// State is a snapshot of a pointer at an instant.
type State struct {
	// Time is nanoseconds since the producing backend's anchor. Zero marks
	// a default state that was never observed.
	Time uint64

	// Position in physical pixels.
	Position Position

	// Buttons currently held.
	Buttons Buttons

	// Modifiers active at the time of the event.
	Modifiers key.Modifier

	// Count is the click or tap count, 0 when not counted.
	Count uint8

	// ContactGeometry is the contact size; 1×1 if not reported.
	ContactGeometry Size

	// Orientation of the pen or contact.
	Orientation Orientation

	// Pressure in [0, 1].
	Pressure float32

	// TangentialPressure in [-1, 1], e.g. a barrel wheel.
	TangentialPressure float32

	// ScaleFactor converts logical units to physical pixels.
	ScaleFactor float64
}

// DefaultState returns a State with unit contact geometry, perpendicular
// orientation and a scale factor of 1.
func DefaultState() State {
	return State{
		ContactGeometry: Size{Width: 1, Height: 1},
		Orientation:     DefaultOrientation,
		ScaleFactor:     1,
	}
}

// scale returns the scale factor, treating unset as 1.
func (s State) scale() float64 {
	if s.ScaleFactor <= 0 || math.IsNaN(s.ScaleFactor) {
		return 1
	}
	return s.ScaleFactor
}

// LogicalPosition returns the position in logical units.
func (s State) LogicalPosition() Position {
	f := s.scale()
	return Position{X: s.Position.X / f, Y: s.Position.Y / f}
}

// LogicalContactGeometry returns the contact size in logical units.
func (s State) LogicalContactGeometry() Size {
	f := s.scale()
	return Size{Width: s.ContactGeometry.Width / f, Height: s.ContactGeometry.Height / f}
}

// DefaultPressure is the pressure reported for an active contact when the
// platform does not report one.
const DefaultPressure float32 = 0.5

// PressureFor returns DefaultPressure when active is true and 0 otherwise.
func PressureFor(active bool) float32 {
	if active {
		return DefaultPressure
	}
	return 0
}
