package dom

import (
	"github.com/kataras/golog"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/input/pointer"
	"github.com/dshills/uievents/internal/input/tap"
)

var logger = golog.Child("[dom]")

// Reducer converts a stream of DOM events from one page. Timestamps are
// anchored at the first event, touch identifiers keep stable pointer IDs,
// and every Down, Up and Move carries a click count.
//
// The zero value is ready to use; a Reducer is not safe for concurrent use.
type Reducer struct {
	clock   backend.Clock
	counter tap.Counter
	touches backend.TouchMap
}

// NewReducer returns a Reducer with no events seen.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce converts e. Unrecognized event types produce no output.
func (r *Reducer) Reduce(e Event, opts backend.Options) []backend.Translation {
	if e.Kind() == KindKeyboard {
		ke, _ := KeyboardEvent(e)
		return []backend.Translation{backend.Keyboard(ke)}
	}

	c := converter{opts: opts, stamp: r.clock.StampMillis, touchIDs: r.touchIDs}
	events := c.pointerEvents(e)
	if len(events) == 0 {
		logger.Debugf("unhandled DOM event %q", e.Type())
		return nil
	}

	out := make([]backend.Translation, len(events))
	for i, ev := range events {
		out[i] = backend.Pointer(r.counter.Attach(opts.Scale(), ev))
	}
	return out
}

// ReducePointer is Reduce for callers that only want the primary pointer
// event.
func (r *Reducer) ReducePointer(e Event, opts backend.Options) (pointer.Event, bool) {
	return backend.PrimaryResult(backend.PointerEvents(r.Reduce(e, opts)))
}

func (r *Reducer) touchIDs(typ string, natives []int64) []pointer.ID {
	ids := make([]pointer.ID, len(natives))
	switch typ {
	case "touchstart":
		return r.touches.StartBatch(natives, nil)
	case "touchend", "touchcancel":
		for i, n := range natives {
			ids[i] = r.touches.End(n)
		}
	default:
		for i, n := range natives {
			ids[i] = r.touches.ID(n)
		}
	}
	return ids
}
