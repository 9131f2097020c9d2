// Package key provides the keyboard half of the input vocabulary.
//
// This package defines the types every backend produces and every frame
// aggregator consumes:
//
//   - Key: a named key (Enter, ArrowLeft, ...) or a character key ("a", "é")
//   - Code: the physical key position, independent of layout (KeyA, Digit1)
//   - Location: which copy of a duplicated key was used (left/right/numpad)
//   - Modifier: a bitset of active modifier and lock keys
//   - Event: a single key transition with all of the above
//
// Key and code names follow the W3C UI Events "key" and "code" value
// tables. Names that are not recognized map to Unidentified rather than
// producing an error.
package key
