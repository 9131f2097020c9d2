package framestate

import "github.com/dshills/uievents/internal/input/pointer"

// PrimaryPointerState tracks the primary pointer. Events from other
// pointers are ignored. The zero value is ready to use.
type PrimaryPointerState struct {
	justPressed  pointer.Buttons
	justReleased pointer.Buttons
	current      pointer.State
	coalesced    []pointer.State
	predicted    []pointer.State
}

// Process folds e into the state.
func (s *PrimaryPointerState) Process(e pointer.Event) {
	if !pointer.IsPrimaryPointer(e) {
		return
	}

	switch ev := e.(type) {
	case pointer.Down:
		if ev.Button == pointer.ButtonNone {
			return
		}
		s.justPressed.Insert(ev.Button)
		s.swap(ev.State)
	case pointer.Up:
		if ev.Button == pointer.ButtonNone {
			return
		}
		s.justReleased.Insert(ev.Button)
		s.swap(ev.State)
	case pointer.Move:
		s.coalesced = append(s.coalesced, s.current)
		s.current = ev.Current
		s.coalesced = append(s.coalesced, ev.Coalesced...)
		s.predicted = append(s.predicted[:0], ev.Predicted...)
	case pointer.Cancel, pointer.Leave:
		// A pointer that is cancelled or leaves implicitly releases its
		// buttons. No Up is reported for them.
		s.coalesced = s.coalesced[:0]
		s.predicted = s.predicted[:0]
		s.current.Buttons.Clear()
	}
}

// swap replaces the current state with next. The previous state becomes
// history unless it was never observed.
func (s *PrimaryPointerState) swap(next pointer.State) {
	prev := s.current
	s.current = next
	if prev.Time != 0 {
		s.coalesced = append(s.coalesced, prev)
	}
	s.predicted = s.predicted[:0]
}

// ClearFrame ends the frame: just-pressed, just-released and sample history
// are emptied. Held buttons and the current state are kept.
//
// TODO: predictions still ahead of the next frame are discarded as well;
// keep those whose time is after the frame boundary.
func (s *PrimaryPointerState) ClearFrame() {
	s.justPressed.Clear()
	s.justReleased.Clear()
	s.coalesced = s.coalesced[:0]
	s.predicted = s.predicted[:0]
}

// IsJustPressed reports whether b was pressed during this frame.
func (s *PrimaryPointerState) IsJustPressed(b pointer.Button) bool {
	return s.justPressed.Contains(b)
}

// IsJustReleased reports whether b was released during this frame.
func (s *PrimaryPointerState) IsJustReleased(b pointer.Button) bool {
	return s.justReleased.Contains(b)
}

func (s *PrimaryPointerState) IsPrimaryJustPressed() bool {
	return s.IsJustPressed(pointer.ButtonPrimary)
}

func (s *PrimaryPointerState) IsPrimaryJustReleased() bool {
	return s.IsJustReleased(pointer.ButtonPrimary)
}

func (s *PrimaryPointerState) IsSecondaryJustPressed() bool {
	return s.IsJustPressed(pointer.ButtonSecondary)
}

func (s *PrimaryPointerState) IsSecondaryJustReleased() bool {
	return s.IsJustReleased(pointer.ButtonSecondary)
}

func (s *PrimaryPointerState) IsAuxiliaryJustPressed() bool {
	return s.IsJustPressed(pointer.ButtonAuxiliary)
}

func (s *PrimaryPointerState) IsAuxiliaryJustReleased() bool {
	return s.IsJustReleased(pointer.ButtonAuxiliary)
}

// IsDown reports whether b is currently held.
func (s *PrimaryPointerState) IsDown(b pointer.Button) bool {
	return s.current.Buttons.Contains(b)
}

// IsAnyDown reports whether any button is currently held.
func (s *PrimaryPointerState) IsAnyDown() bool {
	return !s.current.Buttons.IsEmpty()
}

// JustPressed returns the buttons pressed during this frame.
func (s *PrimaryPointerState) JustPressed() pointer.Buttons {
	return s.justPressed
}

// JustReleased returns the buttons released during this frame.
func (s *PrimaryPointerState) JustReleased() pointer.Buttons {
	return s.justReleased
}

// Current returns the latest observed state.
func (s *PrimaryPointerState) Current() pointer.State {
	return s.current
}

// Count returns the click count of the latest observed state.
func (s *PrimaryPointerState) Count() uint8 {
	return s.current.Count
}

// CurrentPosition returns the position in physical pixels.
func (s *PrimaryPointerState) CurrentPosition() pointer.Position {
	return s.current.Position
}

// CurrentLogicalPosition returns the position in logical units.
func (s *PrimaryPointerState) CurrentLogicalPosition() pointer.Position {
	return s.current.LogicalPosition()
}

// Motion returns the displacement, in physical pixels, from the first
// sample recorded this frame to the current position. It is zero when no
// history has been recorded.
func (s *PrimaryPointerState) Motion() pointer.Position {
	if len(s.coalesced) == 0 {
		return pointer.Position{}
	}
	return s.current.Position.Sub(s.coalesced[0].Position)
}

// LogicalMotion is Motion in logical units.
func (s *PrimaryPointerState) LogicalMotion() pointer.Position {
	if len(s.coalesced) == 0 {
		return pointer.Position{}
	}
	return s.current.LogicalPosition().Sub(s.coalesced[0].LogicalPosition())
}

// Coalesced returns the samples recorded this frame, oldest first. The
// slice is only valid until the next call to Process or ClearFrame.
func (s *PrimaryPointerState) Coalesced() []pointer.State {
	return s.coalesced
}

// Predicted returns the latest predicted samples. The slice is only valid
// until the next call to Process or ClearFrame.
func (s *PrimaryPointerState) Predicted() []pointer.State {
	return s.predicted
}
