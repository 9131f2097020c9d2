package key

import "testing"

func TestModifierBits(t *testing.T) {
	all := []Modifier{
		ModShift, ModCtrl, ModAlt, ModMeta, ModAltGraph,
		ModCapsLock, ModNumLock, ModScrollLock, ModFn, ModSuper,
	}

	var seen Modifier
	for _, m := range all {
		if m.Count() != 1 {
			t.Errorf("%v is not a single bit", m)
		}
		if seen.Has(m) {
			t.Errorf("%v overlaps another modifier", m)
		}
		seen = seen.With(m)
	}
	if seen.Count() != len(all) {
		t.Errorf("Count() = %d, want %d", seen.Count(), len(all))
	}
}

func TestModifierOps(t *testing.T) {
	m := ModShift.With(ModCapsLock)
	if !m.HasShift() || !m.Has(ModCapsLock) || m.HasCtrl() {
		t.Fatalf("With: got %v", m)
	}
	if !m.HasAll(ModShift|ModCapsLock) || m.HasAll(ModShift|ModNumLock) {
		t.Errorf("HasAll on %v", m)
	}
	if !m.HasAll(ModNone) {
		t.Error("every set contains ModNone")
	}

	m = m.Without(ModShift)
	if m != ModCapsLock {
		t.Errorf("Without(Shift) = %v, want CapsLock", m)
	}

	tests := []struct {
		name string
		on   bool
		want Modifier
	}{
		{"set alt", true, ModCapsLock | ModAlt},
		{"clear alt", false, ModCapsLock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Set(ModAlt, tt.on); got != tt.want {
				t.Errorf("Set(Alt, %v) = %v, want %v", tt.on, got, tt.want)
			}
		})
	}

	if !ModNone.IsEmpty() || ModFn.IsEmpty() {
		t.Error("IsEmpty")
	}
	if !ModMeta.HasMeta() || ModSuper.HasMeta() {
		t.Error("Super must stay distinct from Meta")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModShift | ModCtrl, "Ctrl+Shift"},
		{ModAltGraph, "AltGraph"},
		{ModFn | ModSuper, "Super+Fn"},
		{ModShift | ModCapsLock | ModNumLock, "Shift+CapsLock+NumLock"},
		{ModCtrl | ModAlt | ModShift | ModMeta | ModScrollLock, "Ctrl+Alt+Shift+Meta+ScrollLock"},
	}

	for _, tt := range tests {
		got := tt.mod.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if back := ParseModifiers(got); back != tt.mod {
			t.Errorf("ParseModifiers(%q) = %v, want %v", got, back, tt.mod)
		}
	}
}

func TestModifierNames(t *testing.T) {
	tests := []struct {
		in   string
		want Modifier
	}{
		{"Control", ModCtrl},
		{"opt", ModAlt},
		{"command", ModMeta},
		{"win", ModMeta},
		{"AltGr", ModAltGraph},
		{" numlock ", ModNumLock},
		{"hyper", ModNone},
		{"ctrl+shift", ModCtrl | ModShift},
		{"Ctrl + Meta", ModCtrl | ModMeta},
		{"fn+bogus", ModFn},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.in); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if ModifierFromName("ctrl+shift") != ModNone {
		t.Error("ModifierFromName takes a single name")
	}
}
