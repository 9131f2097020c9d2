// Package framestate folds a stream of input events into state that an
// immediate-mode application can query once per frame.
//
// Feed every event produced during a frame to InputState.Process, query the
// state while building the frame, then call ClearFrame exactly once before
// the next batch of events:
//
//	var in framestate.InputState
//	for _, t := range reducer.Reduce(opts, ev) {
//	    in.Process(t)
//	}
//	if in.Pointer.IsPrimaryJustPressed() {
//	    // click at in.Pointer.CurrentPosition()
//	}
//	in.ClearFrame()
//
// "Just pressed" and "just released" are per-frame: both can be true for the
// same button or key when a press and release land in one frame. "Down" is
// persistent and survives ClearFrame.
package framestate
