package framestate

import (
	"testing"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
)

func TestInputStateRoutes(t *testing.T) {
	var c clock
	var in InputState
	in.ProcessAll([]backend.Translation{
		backend.Pointer(down(&c, pointer.ButtonPrimary)),
		backend.Keyboard(keyEvent(key.Down, key.Character("x"), key.LocationStandard, key.CodeFromString("KeyX"))),
	})

	if !in.Pointer.IsPrimaryJustPressed() {
		t.Error("pointer translation was not routed")
	}
	if !in.Keyboard.KeyStrJustPressed("x") {
		t.Error("keyboard translation was not routed")
	}

	in.ClearFrame()

	if in.Pointer.IsPrimaryJustPressed() || in.Keyboard.KeyStrJustPressed("x") {
		t.Error("ClearFrame was not forwarded to both states")
	}
	if !in.Pointer.IsDown(pointer.ButtonPrimary) || !in.Keyboard.KeyStrDown("x") {
		t.Error("held state was lost")
	}
}

func TestInputStateDirect(t *testing.T) {
	var c clock
	var in InputState
	in.ProcessPointer(down(&c, pointer.ButtonSecondary))
	in.ProcessKeyboard(keyEvent(key.Down, key.Named(key.Enter), key.LocationStandard, key.CodeEnter))

	if !in.Pointer.IsSecondaryJustPressed() || !in.Keyboard.KeyDown(key.Named(key.Enter)) {
		t.Error("direct processing did not update state")
	}
}

func TestSnapshot(t *testing.T) {
	var c clock
	var in InputState
	in.ProcessPointer(down(&c, pointer.ButtonPrimary))
	in.ProcessPointer(move(&c, pointer.Position{X: 10, Y: 4}, nil, []pointer.Position{{X: 12, Y: 4}}))
	e := keyEvent(key.Down, key.Character("q"), key.LocationStandard, key.CodeFromString("KeyQ"))
	e.Modifiers = key.ModShift
	in.ProcessKeyboard(e)

	snap := in.Snapshot()
	p := snap.Pointer
	if p.Position != (pointer.Position{X: 10, Y: 4}) {
		t.Errorf("Position = %v", p.Position)
	}
	if p.Motion != (pointer.Position{X: 10, Y: 4}) {
		t.Errorf("Motion = %v", p.Motion)
	}
	if len(p.JustPressed) != 1 || p.JustPressed[0] != "primary" {
		t.Errorf("JustPressed = %v", p.JustPressed)
	}
	if p.Down == nil || len(p.JustReleased) != 0 {
		t.Errorf("button lists should be empty, not nil: %v %v", p.Down, p.JustReleased)
	}
	if p.Coalesced != 1 || p.Predicted != 1 {
		t.Errorf("samples = %d coalesced, %d predicted", p.Coalesced, p.Predicted)
	}

	k := snap.Keyboard
	if len(k.Down) != 1 || k.Down[0] != "q" || k.Modifiers != "Shift" {
		t.Errorf("Keyboard = %+v", k)
	}

	in.ClearFrame()
	if after := in.Snapshot(); len(after.Keyboard.JustPressed) != 0 || after.Pointer.Coalesced != 0 {
		t.Errorf("snapshot after ClearFrame = %+v", after)
	}
}
