// Package window reduces windowing-system events to pointer and keyboard
// events.
//
// The native event model mirrors what desktop toolkits deliver per window:
// cursor movement and crossing, mouse buttons, wheel deltas, touches with
// optional force and tilt, and keyboard input with a separate modifiers
// notification. Coordinates are logical and are multiplied by the scale
// factor passed to Reduce.
//
// Keep one Reducer per window:
//
//	r := window.NewReducer()
//	for _, t := range r.Reduce(scale, ev) {
//	    state.Process(t)
//	}
package window
