// Package term reduces terminal input, as delivered by tcell, to pointer
// and keyboard events.
//
// Terminals report mouse state as a button mask at a cell position, so the
// reducer diffs consecutive masks to produce Down and Up events and emits a
// Move whenever the cell changes. Wheel bits become line scrolls. Focus
// reports become Enter and Leave.
//
// Terminals never report key releases. Every key is translated to a Down
// immediately followed by an Up, so frame state sees the key as pressed and
// released within one frame and never as held.
package term
