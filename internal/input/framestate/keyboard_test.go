package framestate

import (
	"testing"

	"github.com/dshills/uievents/internal/input/key"
)

func keyEvent(state key.State, k key.Key, loc key.Location, code key.Code) key.Event {
	return key.Event{State: state, Key: k, Location: loc, Code: code}
}

func TestKeyPressAndHold(t *testing.T) {
	var s KeyboardState
	a := key.Character("A")
	s.Process(keyEvent(key.Down, a, key.LocationStandard, key.CodeKeyA))

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"KeyJustPressed", s.KeyJustPressed(a), true},
		{"KeyStrJustPressed", s.KeyStrJustPressed("A"), true},
		{"KeyStrJustPressedLocation standard", s.KeyStrJustPressedLocation("A", key.LocationStandard), true},
		{"KeyStrJustPressedLocation left", s.KeyStrJustPressedLocation("A", key.LocationLeft), false},
		{"CodeJustPressed", s.CodeJustPressed(key.CodeKeyA), true},
		{"KeyDown", s.KeyDown(a), true},
		{"KeyStrDown", s.KeyStrDown("A"), true},
		{"KeyStrDownLocation left", s.KeyStrDownLocation("A", key.LocationLeft), false},
		{"CodeDown", s.CodeDown(key.CodeKeyA), true},
		{"KeyJustReleased", s.KeyJustReleased(a), false},
		{"KeyStrJustReleased", s.KeyStrJustReleased("A"), false},
		{"IsAnyDown", s.IsAnyDown(), true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	s.ClearFrame()

	if s.KeyJustPressed(a) || s.KeyStrJustPressed("A") || s.CodeJustPressed(key.CodeKeyA) {
		t.Error("just-pressed should not survive ClearFrame")
	}
	if !s.KeyDown(a) || !s.KeyStrDownLocation("A", key.LocationStandard) {
		t.Error("held key should survive ClearFrame")
	}
}

func TestKeyPressAndReleaseSameFrame(t *testing.T) {
	var s KeyboardState
	a := key.Character("A")
	s.Process(keyEvent(key.Down, a, key.LocationStandard, key.CodeKeyA))
	s.Process(keyEvent(key.Up, a, key.LocationStandard, key.CodeKeyA))

	if !s.KeyJustPressed(a) || !s.KeyJustReleased(a) {
		t.Error("press and release in one frame should both be reported")
	}
	if !s.KeyStrJustReleasedLocation("A", key.LocationStandard) || s.KeyStrJustReleasedLocation("A", key.LocationLeft) {
		t.Error("release location mismatch")
	}
	if !s.CodeJustReleased(key.CodeKeyA) {
		t.Error("CodeJustReleased(KeyA) = false")
	}
	if s.KeyDown(a) || s.KeyStrDown("A") || s.IsAnyDown() {
		t.Error("key should be up")
	}
}

func TestKeyLocations(t *testing.T) {
	var s KeyboardState
	shift := key.Named(key.Shift)
	s.Process(keyEvent(key.Down, shift, key.LocationLeft, key.CodeShiftLeft))
	s.Process(keyEvent(key.Down, shift, key.LocationRight, key.CodeShiftRight))
	s.ClearFrame()
	s.Process(keyEvent(key.Up, shift, key.LocationLeft, key.CodeShiftLeft))

	if !s.KeyDown(shift) {
		t.Error("right shift is still held")
	}
	if s.KeyDownLocation(shift, key.LocationLeft) || !s.KeyDownLocation(shift, key.LocationRight) {
		t.Error("only the left shift was released")
	}
	if s.CodeDown(key.CodeShiftLeft) || !s.CodeDown(key.CodeShiftRight) {
		t.Error("code lookup disagrees with location lookup")
	}
	if !s.KeyJustReleasedLocation(shift, key.LocationLeft) || s.KeyJustPressedLocation(shift, key.LocationRight) {
		t.Error("per-frame lists mismatch")
	}
	if s.KeyStrDown("Shift") {
		t.Error("named keys should not match character lookups")
	}
}

func TestKeyReleaseMustMatchExactly(t *testing.T) {
	var s KeyboardState
	a := key.Character("a")
	s.Process(keyEvent(key.Down, a, key.LocationStandard, key.CodeKeyA))
	// Released with a different code: the press stays held.
	s.Process(keyEvent(key.Up, a, key.LocationStandard, key.CodeUnidentified))

	if !s.KeyDown(a) {
		t.Error("a release with a different code should not release the key")
	}
}

func TestKeyModifiers(t *testing.T) {
	var s KeyboardState
	e := keyEvent(key.Down, key.Named(key.Control), key.LocationLeft, key.CodeControlLeft)
	e.Modifiers = key.ModCtrl
	s.Process(e)
	if s.Modifiers() != key.ModCtrl {
		t.Errorf("Modifiers() = %v", s.Modifiers())
	}

	e.State = key.Up
	e.Modifiers = key.ModNone
	s.Process(e)
	s.ClearFrame()
	if !s.Modifiers().IsEmpty() {
		t.Errorf("Modifiers() = %v, want none", s.Modifiers())
	}
}

func TestKeyUnidentified(t *testing.T) {
	var s KeyboardState
	s.Process(keyEvent(key.Down, key.Key{}, key.LocationStandard, key.CodeUnidentified))
	if !s.KeyDown(key.Named(key.Unidentified)) {
		t.Error("zero key should match Unidentified")
	}
	s.Process(keyEvent(key.Up, key.Named(key.Unidentified), key.LocationStandard, key.CodeUnidentified))
	if s.IsAnyDown() {
		t.Error("Unidentified release should match the zero key press")
	}
}
