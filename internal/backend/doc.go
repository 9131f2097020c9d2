// Package backend holds what every backend reducer shares.
//
// A backend reducer turns events from one native source (a windowing
// system, a browser, a terminal) into pointer.Event and key.Event values.
// Reducers live in the subpackages; this package provides:
//
//   - Options, the per-call tuning knobs (scale factor, sample collection)
//   - Clock, a per-reducer monotonic timestamp anchor
//   - Translation, the sum type a reducer emits
//   - TouchMap, the native touch identifier to pointer.ID mapping
//   - PrimaryResult, for callers that want a single event per native event
//
// Reducers own their state exclusively and are driven from one goroutine.
package backend
