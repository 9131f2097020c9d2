package key

import (
	"math/bits"
	"strings"
)

// Modifier represents keyboard modifier and lock keys as a bitset.
type Modifier uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << 1

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifier = 1 << 2

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta Modifier = 1 << 3

	// ModAltGraph indicates the AltGr key.
	ModAltGraph Modifier = 1 << 4

	// ModCapsLock indicates Caps Lock is engaged.
	ModCapsLock Modifier = 1 << 5

	// ModNumLock indicates Num Lock is engaged.
	ModNumLock Modifier = 1 << 6

	// ModScrollLock indicates Scroll Lock is engaged.
	ModScrollLock Modifier = 1 << 7

	// ModFn indicates the Fn key.
	ModFn Modifier = 1 << 8

	// ModSuper indicates the Super key, where the platform reports it
	// separately from Meta.
	ModSuper Modifier = 1 << 9
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasAll returns true if m contains every modifier in mods.
func (m Modifier) HasAll(mods Modifier) bool {
	return m&mods == mods
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// Set returns m with mod added when on is true and removed otherwise.
func (m Modifier) Set(mod Modifier, on bool) Modifier {
	if on {
		return m.With(mod)
	}
	return m.Without(mod)
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Count returns the number of modifiers set.
func (m Modifier) Count() int {
	return bits.OnesCount16(uint16(m))
}

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
	{ModAltGraph, "AltGraph"},
	{ModSuper, "Super"},
	{ModFn, "Fn"},
	{ModCapsLock, "CapsLock"},
	{ModNumLock, "NumLock"},
	{ModScrollLock, "ScrollLock"},
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":       ModCtrl,
	"control":    ModCtrl,
	"alt":        ModAlt,
	"option":     ModAlt,
	"opt":        ModAlt,
	"shift":      ModShift,
	"meta":       ModMeta,
	"cmd":        ModMeta,
	"command":    ModMeta,
	"win":        ModMeta,
	"altgraph":   ModAltGraph,
	"altgr":      ModAltGraph,
	"super":      ModSuper,
	"fn":         ModFn,
	"capslock":   ModCapsLock,
	"numlock":    ModNumLock,
	"scrolllock": ModScrollLock,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Ctrl+Alt".
// Unknown names are ignored.
func ParseModifiers(s string) Modifier {
	var result Modifier
	for _, part := range strings.Split(s, "+") {
		result = result.With(ModifierFromName(part))
	}
	return result
}
