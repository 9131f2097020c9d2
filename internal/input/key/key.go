package key

import (
	"strings"
	"unicode/utf8"
)

// NamedKey is the W3C name of a non-character key, such as "Enter".
type NamedKey string

// Named keys used by the backends. Any other recognized W3C key value can be
// obtained through NamedKeyFromString.
const (
	Unidentified NamedKey = "Unidentified"

	Shift      NamedKey = "Shift"
	Control    NamedKey = "Control"
	Alt        NamedKey = "Alt"
	Meta       NamedKey = "Meta"
	AltGraph   NamedKey = "AltGraph"
	Super      NamedKey = "Super"
	CapsLock   NamedKey = "CapsLock"
	NumLock    NamedKey = "NumLock"
	ScrollLock NamedKey = "ScrollLock"

	Backspace  NamedKey = "Backspace"
	Tab        NamedKey = "Tab"
	Enter      NamedKey = "Enter"
	Escape     NamedKey = "Escape"
	Home       NamedKey = "Home"
	End        NamedKey = "End"
	PageUp     NamedKey = "PageUp"
	PageDown   NamedKey = "PageDown"
	Insert     NamedKey = "Insert"
	Delete     NamedKey = "Delete"
	ArrowLeft  NamedKey = "ArrowLeft"
	ArrowRight NamedKey = "ArrowRight"
	ArrowUp    NamedKey = "ArrowUp"
	ArrowDown  NamedKey = "ArrowDown"

	ContextMenu NamedKey = "ContextMenu"
	PrintScreen NamedKey = "PrintScreen"
	Pause       NamedKey = "Pause"
	Clear       NamedKey = "Clear"

	F1  NamedKey = "F1"
	F2  NamedKey = "F2"
	F3  NamedKey = "F3"
	F4  NamedKey = "F4"
	F5  NamedKey = "F5"
	F6  NamedKey = "F6"
	F7  NamedKey = "F7"
	F8  NamedKey = "F8"
	F9  NamedKey = "F9"
	F10 NamedKey = "F10"
	F11 NamedKey = "F11"
	F12 NamedKey = "F12"
)

var namedKeyTable = strings.Fields(`
	Shift Control Alt Meta AltGraph Super Hyper Fn FnLock Symbol SymbolLock
	CapsLock NumLock ScrollLock
	Backspace Tab Enter Escape Home End PageUp PageDown Insert Delete
	ArrowLeft ArrowRight ArrowUp ArrowDown
	ContextMenu PrintScreen Pause Help Clear Execute Print Redo Undo
	Copy Cut Paste Select Find Open Save Props Again Attn Cancel
	BrightnessUp BrightnessDown Power PowerOff LogOff Eject WakeUp Sleep Standby
	Convert NonConvert KanaMode Hiragana Katakana HiraganaKatakana Compose
	F1 F2 F3 F4 F5 F6 F7 F8 F9 F10 F11 F12 F13 F14 F15 F16 F17 F18 F19 F20
	F21 F22 F23 F24 F25 F26 F27 F28 F29 F30 F31 F32 F33 F34 F35
	AudioVolumeUp AudioVolumeDown AudioVolumeMute
	MediaPlayPause MediaStop MediaTrackNext MediaTrackPrevious MediaPlay
	MediaPause MediaRecord MediaRewind MediaFastForward MediaClose
	BrowserBack BrowserForward BrowserHome BrowserRefresh BrowserSearch
	BrowserStop BrowserFavorites
	LaunchMail LaunchApplication1 LaunchApplication2
	Dead Process Unidentified
`)

// legacyKeyNames maps deprecated key values still emitted by some browsers.
var legacyKeyNames = map[string]NamedKey{
	"VolumeUp":   "AudioVolumeUp",
	"VolumeDown": "AudioVolumeDown",
	"VolumeMute": "AudioVolumeMute",
	"Esc":        Escape,
	"Left":       ArrowLeft,
	"Right":      ArrowRight,
	"Up":         ArrowUp,
	"Down":       ArrowDown,
	"Del":        Delete,
	"Apps":       ContextMenu,
	"OS":         Meta,
}

var namedKeys = func() map[string]NamedKey {
	m := make(map[string]NamedKey, len(namedKeyTable)+len(legacyKeyNames))
	for _, name := range namedKeyTable {
		m[name] = NamedKey(name)
	}
	for name, k := range legacyKeyNames {
		m[name] = k
	}
	return m
}()

// NamedKeyFromString returns the named key for a W3C key value.
// The second result is false if s is not a recognized key name.
func NamedKeyFromString(s string) (NamedKey, bool) {
	k, ok := namedKeys[s]
	return k, ok
}

// Key identifies the logical meaning of a key press.
//
// Exactly one of Named and Char is meaningful: a character key has a
// non-empty Char and an empty Named. The zero value is an unidentified key.
type Key struct {
	Named NamedKey
	Char  string
}

// Named returns a Key for the named key n.
func Named(n NamedKey) Key {
	return Key{Named: n}
}

// Character returns a Key producing the text s.
func Character(s string) Key {
	return Key{Char: s}
}

// FromString converts a W3C key value into a Key.
//
// Recognized names become named keys, a single Unicode scalar becomes a
// character key, and anything else is Unidentified.
func FromString(s string) Key {
	if n, ok := NamedKeyFromString(s); ok {
		return Named(n)
	}
	if utf8.RuneCountInString(s) == 1 {
		return Character(s)
	}
	return Named(Unidentified)
}

// IsCharacter returns true if this is a character key.
func (k Key) IsCharacter() bool {
	return k.Char != ""
}

// IsNamed returns true if k is the named key n.
func (k Key) IsNamed(n NamedKey) bool {
	return !k.IsCharacter() && k.normalized().Named == n
}

// IsUnidentified returns true if the key could not be identified.
func (k Key) IsUnidentified() bool {
	return !k.IsCharacter() && k.normalized().Named == Unidentified
}

// Equal compares two keys, treating the zero Key as Unidentified.
func (k Key) Equal(other Key) bool {
	return k.normalized() == other.normalized()
}

func (k Key) normalized() Key {
	if k.Char == "" && k.Named == "" {
		return Key{Named: Unidentified}
	}
	return k
}

// String returns the character for character keys and the name otherwise.
func (k Key) String() string {
	if k.IsCharacter() {
		return k.Char
	}
	return string(k.normalized().Named)
}
