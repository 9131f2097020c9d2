package key

import "strings"

// Code is the W3C name of a physical key position, such as "KeyA".
type Code string

// Codes used by the backends. Any other recognized W3C code value can be
// obtained through CodeFromString.
const (
	CodeUnidentified Code = "Unidentified"

	CodeKeyA   Code = "KeyA"
	CodeKeyZ   Code = "KeyZ"
	CodeDigit1 Code = "Digit1"
	CodeSpace  Code = "Space"
	CodeEnter  Code = "Enter"
	CodeEscape Code = "Escape"
	CodeTab    Code = "Tab"

	CodeShiftLeft    Code = "ShiftLeft"
	CodeShiftRight   Code = "ShiftRight"
	CodeControlLeft  Code = "ControlLeft"
	CodeControlRight Code = "ControlRight"
	CodeAltLeft      Code = "AltLeft"
	CodeAltRight     Code = "AltRight"
	CodeMetaLeft     Code = "MetaLeft"
	CodeMetaRight    Code = "MetaRight"
)

var codeTable = strings.Fields(`
	Fn FnLock
	KeyA KeyB KeyC KeyD KeyE KeyF KeyG KeyH KeyI KeyJ KeyK KeyL KeyM
	KeyN KeyO KeyP KeyQ KeyR KeyS KeyT KeyU KeyV KeyW KeyX KeyY KeyZ
	Digit0 Digit1 Digit2 Digit3 Digit4 Digit5 Digit6 Digit7 Digit8 Digit9
	Numpad0 Numpad1 Numpad2 Numpad3 Numpad4 Numpad5 Numpad6 Numpad7 Numpad8 Numpad9
	Backspace Tab Enter Escape Space
	Backquote Minus Equal BracketLeft BracketRight Backslash Semicolon Quote
	Comma Period Slash
	Home End PageUp PageDown Insert Delete ArrowLeft ArrowRight ArrowUp ArrowDown
	ShiftLeft ShiftRight ControlLeft ControlRight AltLeft AltRight MetaLeft MetaRight
	CapsLock NumLock ScrollLock
	F1 F2 F3 F4 F5 F6 F7 F8 F9 F10 F11 F12 F13 F14 F15 F16 F17 F18 F19 F20
	F21 F22 F23 F24 F25 F26 F27 F28 F29 F30 F31 F32 F33 F34 F35
	NumpadAdd NumpadSubtract NumpadMultiply NumpadDivide NumpadDecimal NumpadEnter
	NumpadBackspace NumpadClear NumpadClearEntry NumpadComma NumpadEqual NumpadHash
	NumpadMemoryAdd NumpadMemoryClear NumpadMemoryRecall NumpadMemoryStore
	NumpadMemorySubtract NumpadParenLeft NumpadParenRight NumpadStar
	IntlBackslash IntlRo IntlYen
	ContextMenu Convert KanaMode Lang1 Lang2 Lang3 Lang4 Lang5 NonConvert
	Help PrintScreen Pause
	BrowserBack BrowserFavorites BrowserForward BrowserHome BrowserRefresh
	BrowserSearch BrowserStop
	Eject LaunchApp1 LaunchApp2 LaunchMail MediaPlayPause MediaSelect MediaStop
	MediaTrackNext MediaTrackPrevious Power Sleep WakeUp
	AudioVolumeDown AudioVolumeMute AudioVolumeUp
	Abort Resume Suspend Again Copy Cut Find Open Paste Props Select Undo
	Hiragana Katakana
`)

var codes = func() map[string]Code {
	m := make(map[string]Code, len(codeTable))
	for _, name := range codeTable {
		m[name] = Code(name)
	}
	return m
}()

// CodeFromString converts a W3C code value into a Code.
// Unrecognized values map to CodeUnidentified.
func CodeFromString(s string) Code {
	if c, ok := codes[s]; ok {
		return c
	}
	return CodeUnidentified
}

// String returns the W3C name of the code.
func (c Code) String() string {
	if c == "" {
		return string(CodeUnidentified)
	}
	return string(c)
}
