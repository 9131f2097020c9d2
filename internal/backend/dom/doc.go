// Package dom reduces browser DOM events to pointer and keyboard events.
//
// Events arrive as the JSON serialization of a DOM event: the fields of
// PointerEvent, MouseEvent, WheelEvent, TouchEvent or KeyboardEvent, plus
// the "type" and "timeStamp" of Event. Coalesced and predicted pointer
// samples, when the page collects them, are nested arrays named
// coalescedEvents and predictedEvents; touch events carry changedTouches.
//
// Fields are read through gjson without decoding into structs, so any
// subset of fields may be present. Missing fields take DOM defaults.
//
// There are two ways to convert:
//
//   - The stateless functions PointerEvents, PointerEvent and
//     KeyboardEvent convert a single event. Timestamps are the page's
//     timeStamp in nanoseconds and no click counts are attached.
//   - A Reducer keeps a clock anchor, touch identities and a tap counter
//     across events, and should be used for a live stream.
//
// pointerover and pointerout produce no events. Browsers fire them when the
// pointer crosses onto a child element and when a touch lifts, so they say
// nothing about the pointer entering or leaving the surface; pointerenter
// and pointerleave do.
//
// Positions are clientX/clientY multiplied by Options.ScaleFactor; pass the
// page's devicePixelRatio to get physical pixels.
package dom
