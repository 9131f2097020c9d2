package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/uievents/internal/input/key"
)

var namedKeys = map[tcell.Key]key.NamedKey{
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBacktab:    key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyEscape:     key.Escape,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.ArrowUp,
	tcell.KeyDown:       key.ArrowDown,
	tcell.KeyLeft:       key.ArrowLeft,
	tcell.KeyRight:      key.ArrowRight,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// Modifiers converts a tcell modifier mask.
func Modifiers(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	out = out.Set(key.ModShift, m&tcell.ModShift != 0)
	out = out.Set(key.ModCtrl, m&tcell.ModCtrl != 0)
	out = out.Set(key.ModAlt, m&tcell.ModAlt != 0)
	out = out.Set(key.ModMeta, m&tcell.ModMeta != 0)
	return out
}

// KeyEvent converts a tcell key event to a key press.
//
// Control characters arrive from tcell as KeyCtrlA..KeyCtrlZ and are
// reported as the letter with Ctrl held. Keys tcell cannot name are
// Unidentified.
func KeyEvent(ev *tcell.EventKey) key.Event {
	out := key.Event{State: key.Down, Modifiers: Modifiers(ev.Modifiers())}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		out.Key = key.Character(string(r))
		out.Code = codeForRune(r)
	case namedKeys[k] != "":
		n := namedKeys[k]
		out.Key = key.Named(n)
		out.Code = key.CodeFromString(string(n))
		if k == tcell.KeyBacktab {
			out.Modifiers = out.Modifiers.With(key.ModShift)
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := rune('a' + (k - tcell.KeyCtrlA))
		out.Key = key.Character(string(r))
		out.Code = codeForRune(r)
		out.Modifiers = out.Modifiers.With(key.ModCtrl)
	default:
		out.Key = key.Named(key.Unidentified)
		out.Code = key.CodeUnidentified
	}
	return out
}

// codeForRune guesses the physical key of a US layout character.
func codeForRune(r rune) key.Code {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return key.CodeFromString("Key" + string(unicode.ToUpper(r)))
	case r >= '0' && r <= '9':
		return key.CodeFromString("Digit" + string(r))
	case r == ' ':
		return key.CodeSpace
	default:
		return key.CodeUnidentified
	}
}
