package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
	"github.com/dshills/uievents/internal/input/tap"
)

var logger = golog.Child("[term]")

// mouseButtons lists the tcell mask bits that are real buttons, in the
// order their Down and Up events are emitted.
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button pointer.Button
}{
	{tcell.ButtonPrimary, pointer.ButtonPrimary},
	{tcell.ButtonSecondary, pointer.ButtonSecondary},
	{tcell.ButtonMiddle, pointer.ButtonAuxiliary},
	{tcell.Button4, pointer.ButtonX1},
	{tcell.Button5, pointer.ButtonX2},
	{tcell.Button6, pointer.ButtonB7},
	{tcell.Button7, pointer.ButtonB8},
	{tcell.Button8, pointer.ButtonB9},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Reducer translates the events of one tcell screen.
// Use NewReducer; a Reducer is not safe for concurrent use.
type Reducer struct {
	clock   backend.Clock
	counter tap.Counter
	mouse   pointer.State
	mask    tcell.ButtonMask
	seen    bool
}

// NewReducer returns a Reducer with no events seen.
func NewReducer() *Reducer {
	return &Reducer{mouse: pointer.DefaultState()}
}

// SetNowFunc replaces the time source used to stamp events.
func (r *Reducer) SetNowFunc(fn func() time.Time) {
	r.clock.SetNowFunc(fn)
}

// Mouse returns the last known state of the mouse.
func (r *Reducer) Mouse() pointer.State {
	return r.mouse
}

// Reduce translates ev. The scale factor in opts converts cells to
// physical units. Resize, paste and other screen events produce no output.
func (r *Reducer) Reduce(opts backend.Options, ev tcell.Event) []backend.Translation {
	scale := opts.Scale()
	now := r.clock.Now()
	r.mouse.Time = now
	r.mouse.ScaleFactor = scale

	switch e := ev.(type) {
	case *tcell.EventKey:
		down := KeyEvent(e)
		r.mouse.Modifiers = down.Modifiers
		up := down
		up.State = key.Up
		return []backend.Translation{backend.Keyboard(down), backend.Keyboard(up)}

	case *tcell.EventMouse:
		return r.mouseEvent(scale, e)

	case *tcell.EventFocus:
		if e.Focused {
			return r.emit(scale, nil, pointer.Enter(pointer.PrimaryMouse))
		}
		return r.emit(scale, nil, pointer.Leave(pointer.PrimaryMouse))

	default:
		logger.Debugf("unhandled terminal event %T", ev)
		return nil
	}
}

func (r *Reducer) mouseEvent(scale float64, e *tcell.EventMouse) []backend.Translation {
	var out []backend.Translation

	x, y := e.Position()
	pos := pointer.Position{X: float64(x), Y: float64(y)}.Scale(scale)
	r.mouse.Modifiers = Modifiers(e.Modifiers())

	if !r.seen || pos != r.mouse.Position {
		r.seen = true
		r.mouse.Position = pos
		out = r.emit(scale, out, pointer.Move{Pointer: pointer.PrimaryMouse, Current: r.mouse})
	}

	mask := e.Buttons() &^ wheelMask
	for _, mb := range mouseButtons {
		was, is := r.mask&mb.mask != 0, mask&mb.mask != 0
		if was == is {
			continue
		}
		if is {
			r.mouse.Buttons.Insert(mb.button)
		} else {
			r.mouse.Buttons.Remove(mb.button)
		}
		r.mouse.Pressure = pointer.PressureFor(!r.mouse.Buttons.IsEmpty())
		be := pointer.ButtonEvent{Pointer: pointer.PrimaryMouse, Button: mb.button, State: r.mouse}
		if is {
			out = r.emit(scale, out, pointer.Down(be))
		} else {
			out = r.emit(scale, out, pointer.Up(be))
		}
	}
	r.mask = mask

	if delta, ok := wheelDelta(e.Buttons()); ok {
		out = append(out, backend.Pointer(pointer.Scroll{
			Pointer: pointer.PrimaryMouse,
			Delta:   delta,
			State:   r.mouse,
		}))
	}
	return out
}

func (r *Reducer) emit(scale float64, out []backend.Translation, e pointer.Event) []backend.Translation {
	return append(out, backend.Pointer(r.counter.Attach(scale, e)))
}

// wheelDelta converts wheel bits to one line per notch. Positive Y scrolls
// down, positive X scrolls right.
func wheelDelta(mask tcell.ButtonMask) (pointer.LineDelta, bool) {
	var d pointer.LineDelta
	if mask&tcell.WheelUp != 0 {
		d.Y--
	}
	if mask&tcell.WheelDown != 0 {
		d.Y++
	}
	if mask&tcell.WheelLeft != 0 {
		d.X--
	}
	if mask&tcell.WheelRight != 0 {
		d.X++
	}
	return d, mask&wheelMask != 0
}
