package backend

import "time"

// Clock converts native timestamps to nanoseconds since the first event a
// reducer saw. Each reducer owns its own Clock, so reducers for different
// windows never share an anchor.
//
// Results never decrease: a timestamp earlier than the last one returned
// yields the last value again.
//
// The zero value is ready to use and reads time.Now for sources that carry
// no timestamps of their own. A Clock should be fed through either Now or
// Stamp, not both.
type Clock struct {
	now func() time.Time

	wallSet   bool
	wall      time.Time
	nativeSet bool
	native    time.Duration
	last      uint64
}

// NewClock returns a Clock reading the given time source. A nil now means
// time.Now.
func NewClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// SetNowFunc replaces the time source.
func (c *Clock) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		c.now = fn
	}
}

// Now stamps an event that carries no native timestamp.
func (c *Clock) Now() uint64 {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	t := now()
	if !c.wallSet {
		c.wallSet = true
		c.wall = t
	}
	return c.advance(t.Sub(c.wall))
}

// Stamp converts a native timestamp, expressed as a duration since any
// fixed epoch, to nanoseconds since the anchor.
func (c *Clock) Stamp(native time.Duration) uint64 {
	if !c.nativeSet {
		c.nativeSet = true
		c.native = native
	}
	return c.advance(native - c.native)
}

// StampMillis is Stamp for sources that report fractional milliseconds,
// such as DOM Event.timeStamp.
func (c *Clock) StampMillis(ms float64) uint64 {
	return c.Stamp(time.Duration(ms * float64(time.Millisecond)))
}

// Reset drops the anchor; the next event becomes t = 0 again.
func (c *Clock) Reset() {
	*c = Clock{now: c.now}
}

func (c *Clock) advance(d time.Duration) uint64 {
	if d > 0 {
		if t := uint64(d); t > c.last {
			c.last = t
		}
	}
	return c.last
}

// OffsetTime returns t moved by d, stopping at zero. Reducers use it to time
// coalesced and predicted samples relative to their event, so that samples
// never move the Clock.
func OffsetTime(t uint64, d time.Duration) uint64 {
	if d < 0 {
		back := uint64(-d)
		if back > t {
			return 0
		}
		return t - back
	}
	return t + uint64(d)
}
