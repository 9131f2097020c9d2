package dom

import (
	"errors"
	"math"
	"testing"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
)

func mustParse(t *testing.T, s string) Event {
	t.Helper()
	e, err := ParseEvent([]byte(s))
	if err != nil {
		t.Fatalf("ParseEvent(%s): %v", s, err)
	}
	return e
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"pointer", `{"type":"pointerdown","clientX":1}`, true},
		{"not json", `{"type":`, false},
		{"array", `[1,2]`, false},
		{"missing type", `{"clientX":1}`, false},
		{"numeric type", `{"type":3}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvent([]byte(tt.input))
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("err = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestButtonFromDOM(t *testing.T) {
	tests := []struct {
		in   int64
		want pointer.Button
	}{
		{0, pointer.ButtonPrimary},
		{1, pointer.ButtonAuxiliary},
		{2, pointer.ButtonSecondary},
		{3, pointer.ButtonX1},
		{4, pointer.ButtonX2},
		{5, pointer.ButtonPenEraser},
		{6, pointer.ButtonB7},
		{31, pointer.ButtonB32},
		{32, pointer.ButtonNone},
		{-1, pointer.ButtonNone},
	}
	for _, tt := range tests {
		if got := ButtonFromDOM(tt.in); got != tt.want {
			t.Errorf("ButtonFromDOM(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := ButtonsFromDOM(5); got != pointer.NewButtons(pointer.ButtonPrimary, pointer.ButtonAuxiliary) {
		t.Errorf("ButtonsFromDOM(5) = %v", got)
	}
	if got := ButtonsFromDOM(-1); !got.IsEmpty() {
		t.Errorf("ButtonsFromDOM(-1) = %v", got)
	}
}

func TestPointerDown(t *testing.T) {
	e := mustParse(t, `{
		"type": "pointerdown", "timeStamp": 12.5,
		"pointerId": 1, "pointerType": "pen", "isPrimary": true,
		"clientX": 10, "clientY": 20, "button": 0, "buttons": 1,
		"pressure": 0.8, "tangentialPressure": -0.2,
		"tiltX": 0, "tiltY": 0, "width": 2, "height": 3,
		"shiftKey": true, "ctrlKey": false
	}`)
	ev, ok := PointerEvent(e, backend.DefaultOptions().WithScale(2))
	if !ok {
		t.Fatal("no event")
	}
	down, ok := ev.(pointer.Down)
	if !ok {
		t.Fatalf("got %T, want Down", ev)
	}
	if down.Pointer.ID != pointer.Primary || down.Pointer.Type != pointer.TypePen {
		t.Errorf("pointer = %v", down.Pointer)
	}
	if down.Button != pointer.ButtonPrimary || !down.State.Buttons.Contains(pointer.ButtonPrimary) {
		t.Errorf("button = %v, buttons = %v", down.Button, down.State.Buttons)
	}
	s := down.State
	if s.Position != (pointer.Position{X: 20, Y: 40}) {
		t.Errorf("position = %v", s.Position)
	}
	if s.ContactGeometry != (pointer.Size{Width: 4, Height: 6}) {
		t.Errorf("geometry = %v", s.ContactGeometry)
	}
	if s.Time != 12_500_000 {
		t.Errorf("time = %d", s.Time)
	}
	if math.Abs(float64(s.Pressure)-0.8) > 1e-6 || math.Abs(float64(s.TangentialPressure)+0.2) > 1e-6 {
		t.Errorf("pressure = %v / %v", s.Pressure, s.TangentialPressure)
	}
	if s.Modifiers != key.ModShift {
		t.Errorf("modifiers = %v", s.Modifiers)
	}
	if s.ScaleFactor != 2 {
		t.Errorf("scale = %v", s.ScaleFactor)
	}
	if s.LogicalPosition() != (pointer.Position{X: 10, Y: 20}) {
		t.Errorf("logical position = %v", s.LogicalPosition())
	}
}

func TestPointerIdentity(t *testing.T) {
	tests := []struct {
		name string
		json string
		want pointer.Info
	}{
		{"primary", `{"type":"pointerenter","pointerId":9,"isPrimary":true,"pointerType":"touch"}`,
			pointer.Info{ID: pointer.Primary, Type: pointer.TypeTouch}},
		{"secondary", `{"type":"pointerleave","pointerId":9,"isPrimary":false,"pointerType":"touch"}`,
			pointer.Info{ID: 11, Type: pointer.TypeTouch}},
		{"negative", `{"type":"pointercancel","pointerId":-3,"pointerType":"pen"}`,
			pointer.Info{ID: 0, Type: pointer.TypePen}},
		{"device", `{"type":"pointerenter","pointerId":0,"isPrimary":true,"pointerType":"mouse","persistentDeviceId":77}`,
			pointer.Info{ID: pointer.Primary, Type: pointer.TypeMouse, PersistentDeviceID: 77}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := PointerEvent(mustParse(t, tt.json), backend.DefaultOptions())
			if !ok {
				t.Fatal("no event")
			}
			if got := ev.PointerInfo(); got != tt.want {
				t.Errorf("info = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPressureDefaults(t *testing.T) {
	held, _ := PointerEvent(mustParse(t, `{"type":"mousedown","button":0,"buttons":1}`), backend.DefaultOptions())
	if s, _ := pointer.StateOf(held); s.Pressure != pointer.DefaultPressure {
		t.Errorf("held pressure = %v, want 0.5", s.Pressure)
	}
	free, _ := PointerEvent(mustParse(t, `{"type":"mousemove","buttons":0}`), backend.DefaultOptions())
	if s, _ := pointer.StateOf(free); s.Pressure != 0 {
		t.Errorf("free pressure = %v, want 0", s.Pressure)
	}
}

func TestOrientationSources(t *testing.T) {
	ev, _ := PointerEvent(mustParse(t, `{"type":"pointermove","pointerId":2,"pointerType":"pen",
		"altitudeAngle":0.5,"azimuthAngle":1,"tiltX":60,"tiltY":0}`), backend.DefaultOptions())
	s, _ := pointer.StateOf(ev)
	if math.Abs(float64(s.Orientation.Altitude)-0.5) > 1e-6 || math.Abs(float64(s.Orientation.Azimuth)-1) > 1e-6 {
		t.Errorf("native angles not preferred: %+v", s.Orientation)
	}

	ev, _ = PointerEvent(mustParse(t, `{"type":"pointermove","pointerId":2,"pointerType":"pen","tiltX":-45,"tiltY":0}`), backend.DefaultOptions())
	s, _ = pointer.StateOf(ev)
	if math.Abs(float64(s.Orientation.Azimuth)-math.Pi) > 1e-5 {
		t.Errorf("tilt azimuth = %v, want π", s.Orientation.Azimuth)
	}

	ev, _ = PointerEvent(mustParse(t, `{"type":"mousemove"}`), backend.DefaultOptions())
	s, _ = pointer.StateOf(ev)
	if s.Orientation != pointer.DefaultOrientation {
		t.Errorf("default orientation = %+v", s.Orientation)
	}
}

func TestMoveSamples(t *testing.T) {
	const move = `{"type":"pointermove","timeStamp":30,"pointerId":1,"isPrimary":true,"pointerType":"mouse",
		"clientX":30,"clientY":30,
		"coalescedEvents":[{"timeStamp":10,"clientX":10,"clientY":10},{"timeStamp":20,"clientX":20,"clientY":20}],
		"predictedEvents":[{"timeStamp":40,"clientX":40,"clientY":40}]}`

	plain, _ := PointerEvent(mustParse(t, move), backend.DefaultOptions())
	if m := plain.(pointer.Move); len(m.Coalesced) != 0 || len(m.Predicted) != 0 {
		t.Error("samples collected without being requested")
	}

	opts := backend.DefaultOptions().WithCoalesced(true).WithPredicted(true)
	ev, _ := PointerEvent(mustParse(t, move), opts)
	m := ev.(pointer.Move)
	if len(m.Coalesced) != 2 || len(m.Predicted) != 1 {
		t.Fatalf("got %d coalesced, %d predicted", len(m.Coalesced), len(m.Predicted))
	}
	if m.Coalesced[0].Position.X != 10 || m.Coalesced[1].Time != 20_000_000 {
		t.Errorf("coalesced = %+v", m.Coalesced)
	}
	if m.Predicted[0].Time <= m.Current.Time {
		t.Error("predicted sample is not after current")
	}
}

func TestWheel(t *testing.T) {
	tests := []struct {
		name string
		json string
		want pointer.ScrollDelta
	}{
		{"pixel", `{"type":"wheel","deltaMode":0,"deltaX":1,"deltaY":-4}`, pointer.PixelDelta{X: 2, Y: -8}},
		{"line", `{"type":"wheel","deltaMode":1,"deltaY":3}`, pointer.LineDelta{Y: 3}},
		{"page", `{"type":"wheel","deltaMode":2,"deltaX":1}`, pointer.PageDelta{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, _ := PointerEvent(mustParse(t, tt.json), backend.DefaultOptions().WithScale(2))
			scroll, ok := ev.(pointer.Scroll)
			if !ok {
				t.Fatalf("got %T", ev)
			}
			if scroll.Delta != tt.want {
				t.Errorf("delta = %v, want %v", scroll.Delta, tt.want)
			}
		})
	}
}

func TestTouchEvents(t *testing.T) {
	e := mustParse(t, `{"type":"touchstart","timeStamp":5,"changedTouches":[
		{"identifier":4,"clientX":10,"clientY":10,"radiusX":3,"radiusY":2,"force":0},
		{"identifier":7,"clientX":90,"clientY":90,"force":0.4,"touchType":"stylus"}]}`)

	events := PointerEvents(e, backend.DefaultOptions())
	if len(events) != 2 {
		t.Fatalf("got %d events, want one per changed touch", len(events))
	}
	first := events[0].(pointer.Down)
	second := events[1].(pointer.Down)
	if first.Pointer.ID != backend.OffsetID(4) || second.Pointer.ID != backend.OffsetID(7) {
		t.Errorf("ids = %v, %v", first.Pointer.ID, second.Pointer.ID)
	}
	if second.Pointer.Type != pointer.TypePen {
		t.Errorf("stylus type = %v", second.Pointer.Type)
	}
	if first.State.ContactGeometry != (pointer.Size{Width: 6, Height: 4}) {
		t.Errorf("geometry = %v", first.State.ContactGeometry)
	}
	if first.State.Pressure != pointer.DefaultPressure || math.Abs(float64(second.State.Pressure)-0.4) > 1e-6 {
		t.Errorf("pressures = %v, %v", first.State.Pressure, second.State.Pressure)
	}

	if ev, ok := PointerEvent(e, backend.DefaultOptions()); !ok || ev != events[0] {
		t.Error("PointerEvent should fall back to the first touch")
	}
}

func TestKeyboardEvent(t *testing.T) {
	tests := []struct {
		json string
		want key.Event
	}{
		{`{"type":"keydown","key":"a","code":"KeyA","ctrlKey":true}`,
			key.Event{State: key.Down, Key: key.Character("a"), Code: key.CodeKeyA, Modifiers: key.ModCtrl}},
		{`{"type":"keyup","key":"Shift","code":"ShiftRight","location":2}`,
			key.Event{State: key.Up, Key: key.Named(key.Shift), Code: key.CodeShiftRight, Location: key.LocationRight}},
		{`{"type":"keypress","key":"Enter","code":"NumpadEnter","location":3,"repeat":true}`,
			key.Event{State: key.Down, Key: key.Named(key.Enter), Code: "NumpadEnter", Location: key.LocationNumpad, Repeat: true}},
		{`{"type":"keydown","key":"Dead","code":"Mystery","isComposing":true}`,
			key.Event{State: key.Down, Key: key.Named("Dead"), Code: key.CodeUnidentified, IsComposing: true}},
		{`{"type":"keydown","key":"Fancy"}`,
			key.Event{State: key.Down, Key: key.Named(key.Unidentified), Code: key.CodeUnidentified}},
	}
	for _, tt := range tests {
		got, ok := KeyboardEvent(mustParse(t, tt.json))
		if !ok {
			t.Errorf("%s: not a keyboard event", tt.json)
			continue
		}
		if got != tt.want {
			t.Errorf("%s:\n got %+v\nwant %+v", tt.json, got, tt.want)
		}
	}

	if _, ok := KeyboardEvent(mustParse(t, `{"type":"click"}`)); ok {
		t.Error("click should not convert")
	}
	if got := KeyupEvent(mustParse(t, `{"type":"keydown","key":"x"}`)); !got.IsUp() {
		t.Error("KeyupEvent should force Up")
	}
}

func TestUnrecognized(t *testing.T) {
	if events := PointerEvents(mustParse(t, `{"type":"click"}`), backend.DefaultOptions()); len(events) != 0 {
		t.Errorf("click produced %v", events)
	}
	r := NewReducer()
	if ts := r.Reduce(mustParse(t, `{"type":"focus"}`), backend.DefaultOptions()); len(ts) != 0 {
		t.Errorf("focus produced %v", ts)
	}
}

func TestOverAndOutIgnored(t *testing.T) {
	r := NewReducer()
	reduce(t, r, `{"type":"pointerdown","timeStamp":10,"pointerId":1,"isPrimary":true,"pointerType":"touch","button":0,"buttons":1,"clientX":5,"clientY":5}`)

	for _, typ := range []string{"pointerover", "pointerout"} {
		e := mustParse(t, `{"type":"`+typ+`","timeStamp":12,"pointerId":1,"isPrimary":true,"pointerType":"touch"}`)
		if events := PointerEvents(e, backend.DefaultOptions()); len(events) != 0 {
			t.Errorf("%s produced %v", typ, events)
		}
		if ts := r.Reduce(e, backend.DefaultOptions()); len(ts) != 0 {
			t.Errorf("reduced %s produced %v", typ, ts)
		}
	}

	// The press is still live, so its release keeps the count.
	up := reduce(t, r, `{"type":"pointerup","timeStamp":20,"pointerId":1,"isPrimary":true,"pointerType":"touch","button":0,"buttons":0,"clientX":5,"clientY":5}`)
	if s, _ := pointer.StateOf(up[0]); s.Count != 1 {
		t.Errorf("release count = %d, want 1", s.Count)
	}
}
