package framestate

import "github.com/dshills/uievents/internal/input/pointer"

// Snapshot is a flat, serializable view of an InputState at one instant.
type Snapshot struct {
	Pointer  PointerSnapshot  `json:"pointer"`
	Keyboard KeyboardSnapshot `json:"keyboard"`
}

// PointerSnapshot describes the primary pointer.
type PointerSnapshot struct {
	Position        pointer.Position `json:"position"`
	LogicalPosition pointer.Position `json:"logical_position"`
	Motion          pointer.Position `json:"motion"`
	Down            []string         `json:"down"`
	JustPressed     []string         `json:"just_pressed"`
	JustReleased    []string         `json:"just_released"`
	Count           uint8            `json:"count"`
	Pressure        float32          `json:"pressure"`
	Altitude        float32          `json:"altitude"`
	Azimuth         float32          `json:"azimuth"`
	Coalesced       int              `json:"coalesced"`
	Predicted       int              `json:"predicted"`
}

// KeyboardSnapshot describes the keyboard.
type KeyboardSnapshot struct {
	Down         []string `json:"down"`
	JustPressed  []string `json:"just_pressed"`
	JustReleased []string `json:"just_released"`
	Modifiers    string   `json:"modifiers"`
}

// Snapshot captures the current state. It does not end the frame.
func (s *InputState) Snapshot() Snapshot {
	p := &s.Pointer
	cur := p.Current()
	return Snapshot{
		Pointer: PointerSnapshot{
			Position:        cur.Position,
			LogicalPosition: cur.LogicalPosition(),
			Motion:          p.Motion(),
			Down:            buttonNames(cur.Buttons),
			JustPressed:     buttonNames(p.JustPressed()),
			JustReleased:    buttonNames(p.JustReleased()),
			Count:           cur.Count,
			Pressure:        cur.Pressure,
			Altitude:        cur.Orientation.Altitude,
			Azimuth:         cur.Orientation.Azimuth,
			Coalesced:       len(p.Coalesced()),
			Predicted:       len(p.Predicted()),
		},
		Keyboard: KeyboardSnapshot{
			Down:         keyNames(s.Keyboard.down),
			JustPressed:  keyNames(s.Keyboard.justPressed),
			JustReleased: keyNames(s.Keyboard.justReleased),
			Modifiers:    s.Keyboard.Modifiers().String(),
		},
	}
}

func buttonNames(b pointer.Buttons) []string {
	names := []string{}
	b.Each(func(btn pointer.Button) {
		names = append(names, btn.String())
	})
	return names
}

func keyNames(l keyList) []string {
	names := make([]string, len(l))
	for i, ki := range l {
		names[i] = ki.key.String()
	}
	return names
}
