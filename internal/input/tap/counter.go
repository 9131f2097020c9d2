package tap

import (
	"math"

	"github.com/dshills/uievents/internal/input/pointer"
)

// Window is how long after a release a nearby press still continues the
// sequence, in nanoseconds.
const Window uint64 = 500_000_000

// Slop radii in logical units, before the √2 and scale factor multipliers.
const (
	touchSlop = 12
	penSlop   = 6
	mouseSlop = 2
)

// tapState is one candidate tap site.
type tapState struct {
	pointerID pointer.ID
	downTime  uint64
	upTime    uint64
	count     uint8
	x         float64
	y         float64
}

// pressed reports whether no release has been recorded since the last press.
func (s *tapState) pressed() bool {
	return s.downTime == s.upTime
}

// Counter stamps click/tap counts onto pointer events.
// The zero value is ready to use.
type Counter struct {
	taps []tapState
}

// Slop returns the match radius in physical pixels for a pointer type at the
// given scale factor.
func Slop(t pointer.Type, scaleFactor float64) float64 {
	var base float64
	switch t {
	case pointer.TypeTouch:
		base = touchSlop
	case pointer.TypePen:
		base = penSlop
	default:
		base = mouseSlop
	}
	return base * math.Sqrt2 * scaleFactor
}

// Attach updates the counter with e and returns e with its count stamped.
// Events other than Down, Up, Move, Cancel and Leave are returned unchanged.
func (c *Counter) Attach(scaleFactor float64, e pointer.Event) pointer.Event {
	switch ev := e.(type) {
	case pointer.Down:
		ev.State.Count = c.down(scaleFactor, ev.Pointer, ev.State)
		return ev
	case pointer.Up:
		if s := c.find(ev.Pointer.ID, false); s != nil {
			s.upTime = ev.State.Time
			ev.State.Count = s.count
		}
		return ev
	case pointer.Move:
		if s := c.find(ev.Pointer.ID, true); s != nil {
			ev.Current.Count = s.count
			ev.Coalesced = stamp(ev.Coalesced, s.count)
			ev.Predicted = stamp(ev.Predicted, s.count)
		}
		return ev
	case pointer.Cancel:
		c.forget(ev.ID)
		return ev
	case pointer.Leave:
		c.forget(ev.ID)
		return ev
	default:
		return e
	}
}

// Len returns the number of tap sites currently tracked.
func (c *Counter) Len() int {
	return len(c.taps)
}

// Reset forgets every tap site.
func (c *Counter) Reset() {
	c.taps = c.taps[:0]
}

func (c *Counter) down(scaleFactor float64, info pointer.Info, state pointer.State) uint8 {
	now := state.Time
	x, y := state.Position.X, state.Position.Y
	slop := Slop(info.Type, scaleFactor)

	var count uint8 = 1
	matched := false
	for i := range c.taps {
		s := &c.taps[i]
		if math.Hypot(s.x-x, s.y-y) < slop && s.upTime+Window > now {
			if s.count < math.MaxUint8 {
				s.count++
			}
			s.downTime = now
			s.upTime = now
			s.pointerID = info.ID
			s.x, s.y = x, y
			count = s.count
			matched = true
			break
		}
	}
	if !matched {
		c.taps = append(c.taps, tapState{
			pointerID: info.ID,
			downTime:  now,
			upTime:    now,
			count:     1,
			x:         x,
			y:         y,
		})
	}

	c.expire(now)
	return count
}

// expire drops released sites whose window has elapsed. Held sites are kept.
func (c *Counter) expire(now uint64) {
	kept := c.taps[:0]
	for _, s := range c.taps {
		if !s.pressed() && s.upTime+Window <= now {
			continue
		}
		kept = append(kept, s)
	}
	c.taps = kept
}

// find returns the first site owned by id, optionally requiring it to be
// pressed.
func (c *Counter) find(id pointer.ID, mustBePressed bool) *tapState {
	for i := range c.taps {
		s := &c.taps[i]
		if s.pointerID != id {
			continue
		}
		if mustBePressed && !s.pressed() {
			continue
		}
		return s
	}
	return nil
}

func (c *Counter) forget(id pointer.ID) {
	kept := c.taps[:0]
	for _, s := range c.taps {
		if s.pointerID != id {
			kept = append(kept, s)
		}
	}
	c.taps = kept
}

// stamp returns a copy of states with every Count set to count.
func stamp(states []pointer.State, count uint8) []pointer.State {
	if len(states) == 0 {
		return states
	}
	out := make([]pointer.State, len(states))
	for i, s := range states {
		s.Count = count
		out[i] = s
	}
	return out
}
