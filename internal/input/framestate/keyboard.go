package framestate

import "github.com/dshills/uievents/internal/input/key"

type keyInfo struct {
	key      key.Key
	location key.Location
	code     key.Code
}

func infoOf(e key.Event) keyInfo {
	k := e.Key
	if !k.IsCharacter() && k.Named == "" {
		k = key.Named(key.Unidentified)
	}
	return keyInfo{key: k, location: e.Location, code: e.Code}
}

// keyList is an ordered list of key presses, duplicates allowed.
type keyList []keyInfo

func (l keyList) any(match func(keyInfo) bool) bool {
	for _, ki := range l {
		if match(ki) {
			return true
		}
	}
	return false
}

func (l keyList) hasKey(k key.Key) bool {
	return l.any(func(ki keyInfo) bool { return ki.key.Equal(k) })
}

func (l keyList) hasKeyAt(k key.Key, loc key.Location) bool {
	return l.any(func(ki keyInfo) bool { return ki.location == loc && ki.key.Equal(k) })
}

func (l keyList) hasStr(s string) bool {
	return l.any(func(ki keyInfo) bool { return ki.key.IsCharacter() && ki.key.Char == s })
}

func (l keyList) hasStrAt(s string, loc key.Location) bool {
	return l.any(func(ki keyInfo) bool {
		return ki.location == loc && ki.key.IsCharacter() && ki.key.Char == s
	})
}

func (l keyList) hasCode(c key.Code) bool {
	return l.any(func(ki keyInfo) bool { return ki.code == c })
}

func (l keyList) keys() []key.Key {
	if len(l) == 0 {
		return nil
	}
	out := make([]key.Key, len(l))
	for i, ki := range l {
		out[i] = ki.key
	}
	return out
}

// KeyboardState tracks every key, with no notion of a primary keyboard.
// The zero value is ready to use.
type KeyboardState struct {
	justPressed  keyList
	justReleased keyList
	down         keyList
	modifiers    key.Modifier
}

// Process folds e into the state. The modifiers are overwritten by every
// event.
func (s *KeyboardState) Process(e key.Event) {
	s.modifiers = e.Modifiers
	info := infoOf(e)
	switch e.State {
	case key.Down:
		s.justPressed = append(s.justPressed, info)
		s.down = append(s.down, info)
	case key.Up:
		s.justReleased = append(s.justReleased, info)
		kept := s.down[:0]
		for _, ki := range s.down {
			if ki != info {
				kept = append(kept, ki)
			}
		}
		s.down = kept
	}
}

// ClearFrame empties the just-pressed and just-released lists. Held keys
// and modifiers are kept.
func (s *KeyboardState) ClearFrame() {
	s.justPressed = s.justPressed[:0]
	s.justReleased = s.justReleased[:0]
}

// Modifiers returns the modifiers of the latest event.
func (s *KeyboardState) Modifiers() key.Modifier {
	return s.modifiers
}

// IsAnyDown reports whether any key is held.
func (s *KeyboardState) IsAnyDown() bool {
	return len(s.down) > 0
}

// KeyJustPressed reports whether k was pressed this frame at any location.
func (s *KeyboardState) KeyJustPressed(k key.Key) bool {
	return s.justPressed.hasKey(k)
}

func (s *KeyboardState) KeyJustPressedLocation(k key.Key, loc key.Location) bool {
	return s.justPressed.hasKeyAt(k, loc)
}

// KeyStrJustPressed reports whether a character key producing str was
// pressed this frame.
func (s *KeyboardState) KeyStrJustPressed(str string) bool {
	return s.justPressed.hasStr(str)
}

func (s *KeyboardState) KeyStrJustPressedLocation(str string, loc key.Location) bool {
	return s.justPressed.hasStrAt(str, loc)
}

func (s *KeyboardState) CodeJustPressed(c key.Code) bool {
	return s.justPressed.hasCode(c)
}

// KeyJustReleased reports whether k was released this frame at any
// location.
func (s *KeyboardState) KeyJustReleased(k key.Key) bool {
	return s.justReleased.hasKey(k)
}

func (s *KeyboardState) KeyJustReleasedLocation(k key.Key, loc key.Location) bool {
	return s.justReleased.hasKeyAt(k, loc)
}

func (s *KeyboardState) KeyStrJustReleased(str string) bool {
	return s.justReleased.hasStr(str)
}

func (s *KeyboardState) KeyStrJustReleasedLocation(str string, loc key.Location) bool {
	return s.justReleased.hasStrAt(str, loc)
}

func (s *KeyboardState) CodeJustReleased(c key.Code) bool {
	return s.justReleased.hasCode(c)
}

// KeyDown reports whether k is held at any location.
func (s *KeyboardState) KeyDown(k key.Key) bool {
	return s.down.hasKey(k)
}

func (s *KeyboardState) KeyDownLocation(k key.Key, loc key.Location) bool {
	return s.down.hasKeyAt(k, loc)
}

func (s *KeyboardState) KeyStrDown(str string) bool {
	return s.down.hasStr(str)
}

func (s *KeyboardState) KeyStrDownLocation(str string, loc key.Location) bool {
	return s.down.hasStrAt(str, loc)
}

func (s *KeyboardState) CodeDown(c key.Code) bool {
	return s.down.hasCode(c)
}

// Down returns the held keys in the order they were pressed.
func (s *KeyboardState) Down() []key.Key {
	return s.down.keys()
}

// JustPressed returns the keys pressed this frame, in order.
func (s *KeyboardState) JustPressed() []key.Key {
	return s.justPressed.keys()
}

// JustReleased returns the keys released this frame, in order.
func (s *KeyboardState) JustReleased() []key.Key {
	return s.justReleased.keys()
}
