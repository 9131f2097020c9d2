package pointer

import (
	"fmt"
	"math/bits"
	"strings"
)

// Button is a single pointer button. Each button is one bit so that it can
// be combined into Buttons.
//
// B7..B32 exist for devices with many buttons. Windows doesn't support more
// than 32 mouse buttons in most APIs, so 32 is the upper limit.
type Button uint32

const (
	// ButtonNone means the button is unknown or unspecified. It is not the
	// same as "no button event occurred".
	ButtonNone Button = 0

	// ButtonPrimary is the left mouse button, a touch contact or a pen contact.
	ButtonPrimary Button = 1 << 0
	// ButtonSecondary is the right mouse button or a pen barrel button.
	ButtonSecondary Button = 1 << 1
	// ButtonAuxiliary is the middle mouse button.
	ButtonAuxiliary Button = 1 << 2
	// ButtonX1 is the back button.
	ButtonX1 Button = 1 << 3
	// ButtonX2 is the forward button.
	ButtonX2 Button = 1 << 4
	// ButtonPenEraser is the eraser end of a pen.
	ButtonPenEraser Button = 1 << 5

	ButtonB7  Button = 1 << 6
	ButtonB8  Button = 1 << 7
	ButtonB9  Button = 1 << 8
	ButtonB10 Button = 1 << 9
	ButtonB11 Button = 1 << 10
	ButtonB12 Button = 1 << 11
	ButtonB13 Button = 1 << 12
	ButtonB14 Button = 1 << 13
	ButtonB15 Button = 1 << 14
	ButtonB16 Button = 1 << 15
	ButtonB17 Button = 1 << 16
	ButtonB18 Button = 1 << 17
	ButtonB19 Button = 1 << 18
	ButtonB20 Button = 1 << 19
	ButtonB21 Button = 1 << 20
	ButtonB22 Button = 1 << 21
	ButtonB23 Button = 1 << 22
	ButtonB24 Button = 1 << 23
	ButtonB25 Button = 1 << 24
	ButtonB26 Button = 1 << 25
	ButtonB27 Button = 1 << 26
	ButtonB28 Button = 1 << 27
	ButtonB29 Button = 1 << 28
	ButtonB30 Button = 1 << 29
	ButtonB31 Button = 1 << 30
	ButtonB32 Button = 1 << 31
)

// ButtonFromIndex returns the button at zero-based position i in the
// canonical order Primary, Secondary, Auxiliary, X1, X2, PenEraser, B7..B32.
// Out of range indexes return ButtonNone.
func ButtonFromIndex(i int) Button {
	if i < 0 || i > 31 {
		return ButtonNone
	}
	return Button(1) << uint(i)
}

// Index returns the zero-based position of the button, or -1 for
// ButtonNone and values with more than one bit set.
func (b Button) Index() int {
	if b == ButtonNone || b&(b-1) != 0 {
		return -1
	}
	return bits.TrailingZeros32(uint32(b))
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	case ButtonPenEraser:
		return "pen-eraser"
	}
	if i := b.Index(); i >= 6 {
		return fmt.Sprintf("b%d", i+1)
	}
	return fmt.Sprintf("Button(%#x)", uint32(b))
}

// Buttons is a set of pressed buttons.
type Buttons uint32

// NewButtons returns a set containing the given buttons.
func NewButtons(buttons ...Button) Buttons {
	var s Buttons
	for _, b := range buttons {
		s.Insert(b)
	}
	return s
}

// Insert adds the button to the set.
func (s *Buttons) Insert(b Button) {
	*s |= Buttons(b)
}

// Remove removes the button from the set.
func (s *Buttons) Remove(b Button) {
	*s &^= Buttons(b)
}

// Contains returns true if the button is in the set. ButtonNone is never
// contained.
func (s Buttons) Contains(b Button) bool {
	return s&Buttons(b) != 0
}

// ContainsAll returns true if every button in other is in the set.
func (s Buttons) ContainsAll(other Buttons) bool {
	return s&other == other
}

// Extend adds all the buttons in other to the set.
func (s *Buttons) Extend(other Buttons) {
	*s |= other
}

// Clear empties the set.
func (s *Buttons) Clear() {
	*s = 0
}

// IsEmpty returns true if no buttons are in the set.
func (s Buttons) IsEmpty() bool {
	return s == 0
}

// Count returns the number of buttons in the set.
func (s Buttons) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Each calls fn for every button in the set, in index order.
func (s Buttons) Each(fn func(Button)) {
	for v := uint32(s); v != 0; v &= v - 1 {
		fn(Button(v & -v))
	}
}

// String returns the buttons joined with "|", or "none".
func (s Buttons) String() string {
	if s.IsEmpty() {
		return "none"
	}
	var parts []string
	s.Each(func(b Button) {
		parts = append(parts, b.String())
	})
	return strings.Join(parts, "|")
}
