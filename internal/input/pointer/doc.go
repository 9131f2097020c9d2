// Package pointer provides the pointer half of the input vocabulary.
//
// Mouse, pen and touch input are all described by the same types:
//
//   - Info: which pointer produced an event (ID, device, Type)
//   - State: a snapshot of position, buttons, pressure and orientation
//   - Event: a sealed set of variants (Down, Up, Move, Cancel, Enter, Leave,
//     Scroll) that consumers match with a type switch
//   - Buttons: a fixed-width bitset of pressed buttons
//
// Positions are physical pixels with Y pointing down. Times are nanoseconds
// since an anchor chosen by the producing backend.
//
// # Primary pointer
//
// The ID Primary is reserved for the first mouse or the controlling touch.
// Backends map native identifiers so that no other pointer ever reports it.
//
// # Orientation
//
// Pen orientation is expressed as altitude and azimuth angles. Use
// FromAltitudeAzimuth when the platform reports them and TiltToOrientation
// when only tilt angles are available.
package pointer
