package dom

import (
	"math"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/key"
	"github.com/dshills/uievents/internal/input/pointer"
)

// PointerEvents converts a pointer, mouse, wheel or touch event. Touch
// events produce one event per changed touch; other events produce at most
// one. Unrecognized events produce none.
func PointerEvents(e Event, opts backend.Options) []pointer.Event {
	c := converter{opts: opts, stamp: millisToNanos, touchIDs: offsetTouchIDs}
	return c.pointerEvents(e)
}

// PointerEvent converts e and returns the primary result: the event of the
// primary pointer if there is one, otherwise the first event.
func PointerEvent(e Event, opts backend.Options) (pointer.Event, bool) {
	return backend.PrimaryResult(PointerEvents(e, opts))
}

// ButtonFromDOM maps MouseEvent.button, as numbered by Pointer Events
// Level 2 §5.1.1.2. Values outside 0..31, including the -1 of moves,
// map to pointer.ButtonNone.
func ButtonFromDOM(b int64) pointer.Button {
	switch b {
	case 0:
		return pointer.ButtonPrimary
	case 1:
		return pointer.ButtonAuxiliary
	case 2:
		return pointer.ButtonSecondary
	case 3:
		return pointer.ButtonX1
	case 4:
		return pointer.ButtonX2
	case 5:
		return pointer.ButtonPenEraser
	}
	if b >= 6 && b <= 31 {
		return pointer.ButtonFromIndex(int(b))
	}
	return pointer.ButtonNone
}

// ButtonsFromDOM converts a MouseEvent.buttons bitmask. The DOM bit order
// (primary, secondary, auxiliary, back, forward, eraser) matches
// pointer.Buttons.
func ButtonsFromDOM(mask int64) pointer.Buttons {
	if mask <= 0 {
		return 0
	}
	return pointer.Buttons(uint32(mask))
}

func millisToNanos(ms float64) uint64 {
	if ms <= 0 || math.IsNaN(ms) {
		return 0
	}
	return uint64(ms * 1e6)
}

func offsetTouchIDs(_ string, natives []int64) []pointer.ID {
	ids := make([]pointer.ID, len(natives))
	for i, n := range natives {
		ids[i] = backend.OffsetID(n)
	}
	return ids
}

// converter holds what differs between stateless conversion and a Reducer.
type converter struct {
	opts     backend.Options
	stamp    func(ms float64) uint64
	touchIDs func(typ string, natives []int64) []pointer.ID
}

func (c *converter) pointerEvents(e Event) []pointer.Event {
	switch e.Kind() {
	case KindPointer:
		return c.fromPointer(e)
	case KindMouse:
		return c.fromMouse(e)
	case KindWheel:
		return []pointer.Event{c.fromWheel(e)}
	case KindTouch:
		return c.fromTouch(e)
	default:
		return nil
	}
}

func (c *converter) fromPointer(e Event) []pointer.Event {
	info := pointerInfo(e.raw)
	mods := modifiers(e.raw)

	var ev pointer.Event
	switch e.Type() {
	case "pointerdown":
		ev = pointer.Down{Pointer: info, Button: ButtonFromDOM(e.Get("button").Int()), State: c.current(e, mods)}
	case "pointerup":
		ev = pointer.Up{Pointer: info, Button: ButtonFromDOM(e.Get("button").Int()), State: c.current(e, mods)}
	case "pointermove", "pointerrawupdate":
		ev = c.move(e, info, mods)
	case "pointercancel":
		ev = pointer.Cancel(info)
	case "pointerenter":
		ev = pointer.Enter(info)
	case "pointerleave":
		ev = pointer.Leave(info)
	default:
		return nil
	}
	return []pointer.Event{ev}
}

func (c *converter) fromMouse(e Event) []pointer.Event {
	info := pointer.PrimaryMouse
	mods := modifiers(e.raw)

	var ev pointer.Event
	switch e.Type() {
	case "mousedown":
		ev = pointer.Down{Pointer: info, Button: ButtonFromDOM(e.Get("button").Int()), State: c.current(e, mods)}
	case "mouseup":
		ev = pointer.Up{Pointer: info, Button: ButtonFromDOM(e.Get("button").Int()), State: c.current(e, mods)}
	case "mousemove":
		ev = c.move(e, info, mods)
	case "mouseenter":
		ev = pointer.Enter(info)
	case "mouseleave":
		ev = pointer.Leave(info)
	default:
		return nil
	}
	return []pointer.Event{ev}
}

func (c *converter) fromWheel(e Event) pointer.Event {
	scale := c.opts.Scale()
	dx, dy := e.Get("deltaX").Float(), e.Get("deltaY").Float()

	var delta pointer.ScrollDelta
	switch e.Get("deltaMode").Int() {
	case 1:
		delta = pointer.LineDelta{X: float32(dx), Y: float32(dy)}
	case 2:
		delta = pointer.PageDelta{X: float32(dx), Y: float32(dy)}
	default:
		delta = pointer.PixelDelta{X: dx * scale, Y: dy * scale}
	}
	return pointer.Scroll{
		Pointer: pointer.PrimaryMouse,
		Delta:   delta,
		State:   c.current(e, modifiers(e.raw)),
	}
}

func (c *converter) move(e Event, info pointer.Info, mods key.Modifier) pointer.Move {
	move := pointer.Move{
		Pointer: info,
		Current: c.current(e, mods),
	}
	if c.opts.CollectCoalesced {
		move.Coalesced = c.samples(e, "coalescedEvents", move.Current.Time, mods)
	}
	if c.opts.CollectPredicted {
		move.Predicted = c.samples(e, "predictedEvents", move.Current.Time, mods)
	}
	return move
}

// samples maps the sub-events listed under field. Their times are offsets
// from the event's own timeStamp applied to t, the event's stamped time.
func (c *converter) samples(e Event, field string, t uint64, mods key.Modifier) []pointer.State {
	items := e.Get(field).Array()
	if len(items) == 0 {
		return nil
	}
	base := e.TimeStamp()
	out := make([]pointer.State, 0, len(items))
	for _, item := range items {
		st := t
		if ts := item.Get("timeStamp"); ts.Exists() {
			st = backend.OffsetTime(t, time.Duration((ts.Float()-base)*float64(time.Millisecond)))
		}
		out = append(out, c.state(item, st, mods))
	}
	return out
}

func (c *converter) current(e Event, mods key.Modifier) pointer.State {
	return c.state(e.raw, c.stamp(e.TimeStamp()), mods)
}

// state maps the fields shared by MouseEvent and PointerEvent.
func (c *converter) state(o gjson.Result, t uint64, mods key.Modifier) pointer.State {
	scale := c.opts.Scale()

	s := pointer.DefaultState()
	s.Time = t
	s.ScaleFactor = scale
	s.Position = pointer.Position{X: o.Get("clientX").Float(), Y: o.Get("clientY").Float()}.Scale(scale)
	s.Buttons = ButtonsFromDOM(o.Get("buttons").Int())
	s.Modifiers = mods

	if w := o.Get("width"); w.Exists() {
		s.ContactGeometry.Width = w.Float() * scale
	}
	if h := o.Get("height"); h.Exists() {
		s.ContactGeometry.Height = h.Float() * scale
	}

	if p := o.Get("pressure"); p.Exists() {
		s.Pressure = clamp(p.Float(), 0, 1)
	} else {
		s.Pressure = pointer.PressureFor(!s.Buttons.IsEmpty())
	}
	s.TangentialPressure = clamp(o.Get("tangentialPressure").Float(), -1, 1)
	s.Orientation = orientation(o)
	return s
}

func (c *converter) fromTouch(e Event) []pointer.Event {
	touches := e.Get("changedTouches").Array()
	if len(touches) == 0 {
		return nil
	}
	natives := make([]int64, len(touches))
	for i, t := range touches {
		natives[i] = t.Get("identifier").Int()
	}
	ids := c.touchIDs(e.Type(), natives)

	typ := e.Type()
	mods := modifiers(e.raw)
	now := c.stamp(e.TimeStamp())
	active := typ == "touchstart" || typ == "touchmove"

	out := make([]pointer.Event, 0, len(touches))
	for i, t := range touches {
		info := pointer.Info{ID: ids[i], Type: pointer.TypeTouch}
		if t.Get("touchType").String() == "stylus" {
			info.Type = pointer.TypePen
		}
		state := c.touchState(t, now, mods, active)

		switch typ {
		case "touchstart":
			out = append(out, pointer.Down{Pointer: info, Button: pointer.ButtonPrimary, State: state})
		case "touchmove":
			out = append(out, pointer.Move{Pointer: info, Current: state})
		case "touchend":
			out = append(out, pointer.Up{Pointer: info, Button: pointer.ButtonPrimary, State: state})
		case "touchcancel":
			out = append(out, pointer.Cancel(info))
		}
	}
	return out
}

func (c *converter) touchState(t gjson.Result, now uint64, mods key.Modifier, active bool) pointer.State {
	scale := c.opts.Scale()

	s := pointer.DefaultState()
	s.Time = now
	s.ScaleFactor = scale
	s.Position = pointer.Position{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()}.Scale(scale)
	s.Modifiers = mods
	if rx := t.Get("radiusX").Float(); rx > 0 {
		s.ContactGeometry.Width = 2 * rx * scale
	}
	if ry := t.Get("radiusY").Float(); ry > 0 {
		s.ContactGeometry.Height = 2 * ry * scale
	}

	switch force := t.Get("force").Float(); {
	case !active:
		s.Pressure = 0
	case force > 0:
		s.Pressure = clamp(force, 0, 1)
	default:
		s.Pressure = pointer.DefaultPressure
	}
	if active {
		s.Buttons.Insert(pointer.ButtonPrimary)
	}
	s.Orientation = orientation(t)
	return s
}

func pointerInfo(o gjson.Result) pointer.Info {
	info := pointer.Info{Type: pointer.TypeFromString(o.Get("pointerType").String())}
	if d := o.Get("persistentDeviceId").Int(); d > 0 {
		info.PersistentDeviceID = uint64(d)
	}

	id := o.Get("pointerId")
	switch {
	case !id.Exists():
		info.ID = pointer.Primary
		if info.Type == pointer.TypeUnknown {
			info.Type = pointer.TypeMouse
		}
	case o.Get("isPrimary").Bool():
		info.ID = pointer.Primary
	default:
		info.ID = backend.OffsetID(id.Int())
	}
	return info
}

// orientation prefers altitudeAngle/azimuthAngle and falls back to tilt.
func orientation(o gjson.Result) pointer.Orientation {
	if alt := o.Get("altitudeAngle"); alt.Exists() {
		az := math.Pi / 2
		if a := o.Get("azimuthAngle"); a.Exists() {
			az = a.Float()
		}
		return pointer.FromAltitudeAzimuth(alt.Float(), az)
	}
	tx, ty := o.Get("tiltX"), o.Get("tiltY")
	if tx.Exists() || ty.Exists() {
		return pointer.TiltToOrientation(float32(tx.Float()), float32(ty.Float()))
	}
	return pointer.DefaultOrientation
}

func modifiers(o gjson.Result) key.Modifier {
	var m key.Modifier
	m = m.Set(key.ModCtrl, o.Get("ctrlKey").Bool())
	m = m.Set(key.ModAlt, o.Get("altKey").Bool())
	m = m.Set(key.ModShift, o.Get("shiftKey").Bool())
	m = m.Set(key.ModMeta, o.Get("metaKey").Bool())
	return m
}

func clamp(v, lo, hi float64) float32 {
	if math.IsNaN(v) {
		v = 0
	}
	return float32(math.Max(lo, math.Min(hi, v)))
}
