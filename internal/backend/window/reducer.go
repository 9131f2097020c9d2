package window

import (
	"math"
	"time"

	"github.com/kataras/golog"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
	"github.com/dshills/uievents/internal/input/tap"
)

var logger = golog.Child("[window]")

// Reducer translates the events of one window. It remembers the held
// modifiers and the mouse's position and buttons between calls, so a
// modifier-only event does not lose the cursor position.
//
// Use NewReducer; a Reducer is not safe for concurrent use.
type Reducer struct {
	clock     backend.Clock
	counter   tap.Counter
	touches   backend.TouchMap
	modifiers key.Modifier
	mouse     pointer.State
}

// NewReducer returns a Reducer with no events seen.
func NewReducer() *Reducer {
	return &Reducer{mouse: pointer.DefaultState()}
}

// SetNowFunc replaces the time source used to stamp events.
func (r *Reducer) SetNowFunc(fn func() time.Time) {
	r.clock.SetNowFunc(fn)
}

// Mouse returns the last known state of the primary mouse.
func (r *Reducer) Mouse() pointer.State {
	return r.mouse
}

// Reduce translates e with default options at the given scale factor.
func (r *Reducer) Reduce(scale float64, e Event) []backend.Translation {
	return r.ReduceWith(backend.DefaultOptions().WithScale(scale), e)
}

// ReduceWith translates e. Events the reducer does not handle produce no
// output.
func (r *Reducer) ReduceWith(opts backend.Options, e Event) []backend.Translation {
	scale := opts.Scale()
	now := r.clock.Now()
	r.mouse.Time = now
	r.mouse.ScaleFactor = scale

	switch ev := e.(type) {
	case ModifiersChanged:
		r.modifiers = ev.Modifiers
		r.mouse.Modifiers = ev.Modifiers
		return nil

	case KeyboardInput:
		return []backend.Translation{backend.Keyboard(r.keyboard(ev))}

	case CursorEntered:
		return r.emit(scale, pointer.Enter(pointer.PrimaryMouse))

	case CursorLeft:
		return r.emit(scale, pointer.Leave(pointer.PrimaryMouse))

	case CursorMoved:
		r.mouse.Position = ev.Position.Scale(scale)
		move := pointer.Move{Pointer: pointer.PrimaryMouse, Current: r.mouse}
		if opts.CollectCoalesced {
			move.Coalesced = samples(r.mouse, ev.History, scale)
		}
		if opts.CollectPredicted {
			move.Predicted = samples(r.mouse, ev.Predicted, scale)
		}
		return r.emit(scale, move)

	case MouseInput:
		button := ButtonFromMouse(ev.Button)
		if ev.State == Pressed {
			r.mouse.Buttons.Insert(button)
		} else {
			r.mouse.Buttons.Remove(button)
		}
		r.mouse.Pressure = pointer.PressureFor(!r.mouse.Buttons.IsEmpty())
		be := pointer.ButtonEvent{Pointer: pointer.PrimaryMouse, Button: button, State: r.mouse}
		if ev.State == Pressed {
			return r.emit(scale, pointer.Down(be))
		}
		return r.emit(scale, pointer.Up(be))

	case MouseWheel:
		return []backend.Translation{backend.Pointer(pointer.Scroll{
			Pointer: pointer.PrimaryMouse,
			Delta:   wheelDelta(ev, scale),
			State:   r.mouse,
		})}

	case Touch:
		return r.touch(opts, now, ev)

	default:
		logger.Debugf("unhandled window event %T", e)
		return nil
	}
}

func (r *Reducer) emit(scale float64, e pointer.Event) []backend.Translation {
	return []backend.Translation{backend.Pointer(r.counter.Attach(scale, e))}
}

func (r *Reducer) keyboard(ev KeyboardInput) key.Event {
	state := key.Down
	if ev.State == Released {
		state = key.Up
	}
	return key.Event{
		State:     state,
		Key:       ev.Key,
		Code:      ev.Code,
		Location:  ev.Location,
		Modifiers: r.modifiers,
		Repeat:    ev.Repeat,
	}
}

func (r *Reducer) touch(opts backend.Options, now uint64, ev Touch) []backend.Translation {
	scale := opts.Scale()

	var id pointer.ID
	switch ev.Phase {
	case TouchStarted:
		id = r.touches.Start(ev.ID, backend.HintFromFlag(ev.Primary))
	case TouchEnded, TouchCancelled:
		id = r.touches.End(ev.ID)
	default:
		id = r.touches.ID(ev.ID)
	}
	info := pointer.Info{ID: id, Type: pointer.TypeTouch}

	state := pointer.DefaultState()
	state.Time = now
	state.Position = ev.Location.Scale(scale)
	state.Modifiers = r.modifiers
	state.ScaleFactor = scale
	state.Pressure = touchPressure(ev.Phase, ev.Force)
	state.Orientation = touchOrientation(ev)
	if ev.Phase == TouchStarted || ev.Phase == TouchMoved {
		state.Buttons.Insert(pointer.ButtonPrimary)
	}

	var e pointer.Event
	switch ev.Phase {
	case TouchStarted:
		e = pointer.Down{Pointer: info, Button: pointer.ButtonPrimary, State: state}
	case TouchMoved:
		move := pointer.Move{Pointer: info, Current: state}
		if opts.CollectCoalesced {
			move.Coalesced = samples(state, ev.History, scale)
		}
		if opts.CollectPredicted {
			move.Predicted = samples(state, ev.Predicted, scale)
		}
		e = move
	case TouchEnded:
		e = pointer.Up{Pointer: info, Button: pointer.ButtonPrimary, State: state}
	case TouchCancelled:
		e = pointer.Cancel(info)
	default:
		logger.Debugf("unhandled touch phase %v", ev.Phase)
		return nil
	}
	return r.emit(scale, e)
}

// ButtonFromMouse maps a native mouse button. Unknown buttons map to
// pointer.ButtonNone.
func ButtonFromMouse(b MouseButton) pointer.Button {
	switch b {
	case MouseLeft:
		return pointer.ButtonPrimary
	case MouseRight:
		return pointer.ButtonSecondary
	case MouseMiddle:
		return pointer.ButtonAuxiliary
	case MouseBack:
		return pointer.ButtonX1
	case MouseForward:
		return pointer.ButtonX2
	case 6:
		return pointer.ButtonPenEraser
	}
	if b >= 7 && b <= 32 {
		return pointer.ButtonFromIndex(int(b) - 1)
	}
	return pointer.ButtonNone
}

func wheelDelta(ev MouseWheel, scale float64) pointer.ScrollDelta {
	switch ev.Mode {
	case DeltaPixel:
		return pointer.PixelDelta{X: ev.X * scale, Y: ev.Y * scale}
	case DeltaPage:
		return pointer.PageDelta{X: float32(ev.X), Y: float32(ev.Y)}
	default:
		return pointer.LineDelta{X: float32(ev.X), Y: float32(ev.Y)}
	}
}

// samples expands native samples into states based on current.
func samples(current pointer.State, in []Sample, scale float64) []pointer.State {
	if len(in) == 0 {
		return nil
	}
	out := make([]pointer.State, len(in))
	for i, s := range in {
		st := current
		st.Position = s.Position.Scale(scale)
		st.Time = backend.OffsetTime(current.Time, s.Offset)
		out[i] = st
	}
	return out
}

func touchPressure(phase TouchPhase, f *Force) float32 {
	if phase == TouchEnded || phase == TouchCancelled {
		return 0
	}
	if f == nil {
		return pointer.DefaultPressure
	}
	v := f.Value
	if f.Calibrated {
		if f.MaxPossible > 0 {
			v /= f.MaxPossible
		} else {
			v *= 0.5
		}
	}
	return float32(math.Max(0, math.Min(1, v)))
}

// touchOrientation prefers a reported altitude, taking the azimuth from the
// tilt when there is one.
func touchOrientation(ev Touch) pointer.Orientation {
	var tilt *pointer.Orientation
	if ev.Tilt != nil {
		o := pointer.TiltToOrientation(ev.Tilt.X, ev.Tilt.Y)
		tilt = &o
	}
	if ev.Force != nil && ev.Force.Altitude != nil {
		azimuth := math.Pi / 2
		if tilt != nil {
			azimuth = float64(tilt.Azimuth)
		}
		return pointer.FromAltitudeAzimuth(*ev.Force.Altitude, azimuth)
	}
	if tilt != nil {
		return *tilt
	}
	return pointer.DefaultOrientation
}
