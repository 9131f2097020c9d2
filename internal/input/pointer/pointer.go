package pointer

import "fmt"

// ID identifies a pointer for as long as it is live.
//
// The zero value means the identity is absent; a live pointer always has a
// non-zero ID.
type ID int64

// Primary is the reserved ID of the primary pointer.
const Primary ID = 1

// NewID returns an ID for n. The second result is false for zero, which is
// not a valid identity.
func NewID(n int64) (ID, bool) {
	if n == 0 {
		return 0, false
	}
	return ID(n), true
}

// IsValid returns true if the ID is present.
func (id ID) IsValid() bool {
	return id != 0
}

// IsPrimary returns true if this is the primary pointer's ID.
func (id ID) IsPrimary() bool {
	return id == Primary
}

// String returns a string representation of the ID.
func (id ID) String() string {
	switch id {
	case 0:
		return "none"
	case Primary:
		return "primary"
	default:
		return fmt.Sprintf("#%d", int64(id))
	}
}

// Type is the kind of device that generated an event.
type Type uint8

const (
	// TypeUnknown means the device could not be determined.
	TypeUnknown Type = iota
	// TypeMouse is a mouse.
	TypeMouse
	// TypePen is a pen or stylus.
	TypePen
	// TypeTouch is a touch contact.
	TypeTouch
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeMouse:
		return "mouse"
	case TypePen:
		return "pen"
	case TypeTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// TypeFromString parses a W3C pointerType value ("mouse", "pen", "touch").
func TypeFromString(s string) Type {
	switch s {
	case "mouse":
		return TypeMouse
	case "pen":
		return TypePen
	case "touch":
		return TypeTouch
	default:
		return TypeUnknown
	}
}

// Info identifies the pointer that produced an event. Two events belong to
// the same logical pointer iff their IDs match.
type Info struct {
	// ID is the pointer's identity, zero if absent.
	ID ID

	// PersistentDeviceID identifies the physical device across sessions
	// where the platform supports it; zero if absent.
	PersistentDeviceID uint64

	// Type is the kind of device.
	Type Type
}

// IsPrimary returns true if the pointer is the primary pointer.
func (i Info) IsPrimary() bool {
	return i.ID.IsPrimary()
}

// String returns a string representation like "mouse(primary)".
func (i Info) String() string {
	return fmt.Sprintf("%s(%s)", i.Type, i.ID)
}

// PrimaryMouse is the Info used for the first mouse of a window.
var PrimaryMouse = Info{ID: Primary, Type: TypeMouse}
