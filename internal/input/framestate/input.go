package framestate

import (
	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
)

// InputState combines the primary pointer and keyboard state.
// The zero value is ready to use.
type InputState struct {
	Pointer  PrimaryPointerState
	Keyboard KeyboardState
}

// Process routes a reducer result to the matching state.
func (s *InputState) Process(t backend.Translation) {
	switch tr := t.(type) {
	case backend.KeyboardTranslation:
		s.Keyboard.Process(tr.Event)
	case backend.PointerTranslation:
		s.Pointer.Process(tr.Event)
	}
}

// ProcessAll routes every result in order.
func (s *InputState) ProcessAll(ts []backend.Translation) {
	for _, t := range ts {
		s.Process(t)
	}
}

// ProcessPointer folds a pointer event.
func (s *InputState) ProcessPointer(e pointer.Event) {
	s.Pointer.Process(e)
}

// ProcessKeyboard folds a keyboard event.
func (s *InputState) ProcessKeyboard(e key.Event) {
	s.Keyboard.Process(e)
}

// ClearFrame ends the frame for both states.
func (s *InputState) ClearFrame() {
	s.Pointer.ClearFrame()
	s.Keyboard.ClearFrame()
}
