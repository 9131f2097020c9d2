package backend

import (
	"math"

	"github.com/dshills/uievents/internal/input/pointer"
)

// idOffset keeps offset native ids clear of 0 (absent) and pointer.Primary.
const idOffset = 2

// OffsetID maps a native pointer identifier to a non-primary pointer.ID.
// Negative identifiers, which some platforms report in error, map to the
// absent ID.
func OffsetID(native int64) pointer.ID {
	if native < 0 || native > math.MaxInt64-idOffset {
		return 0
	}
	return pointer.ID(native + idOffset)
}

// PrimaryHint is what a platform says about whether a touch is primary.
type PrimaryHint uint8

const (
	// HintUnknown means the platform has no primary flag.
	HintUnknown PrimaryHint = iota
	// HintPrimary means the platform flagged the touch as primary.
	HintPrimary
	// HintSecondary means the platform flagged the touch as not primary.
	HintSecondary
)

// HintFromFlag converts a platform's optional primary flag.
func HintFromFlag(flag *bool) PrimaryHint {
	switch {
	case flag == nil:
		return HintUnknown
	case *flag:
		return HintPrimary
	default:
		return HintSecondary
	}
}

// TouchMap assigns pointer IDs to native touch identifiers.
//
// A touch keeps the ID it got at Start until it ends. The touch that takes
// the primary slot gets pointer.Primary; every other touch gets
// OffsetID(native). The slot can only be taken while it is free, by the
// touch the platform flags as primary or, without a flag, by the touch that
// starts first. It is released when its touch ends or is cancelled.
//
// The zero value is ready to use.
type TouchMap struct {
	live       map[int64]pointer.ID
	primary    int64
	hasPrimary bool
}

// Start records a new touch and returns its ID. Starting a touch that is
// already live returns the ID it has.
func (m *TouchMap) Start(native int64, hint PrimaryHint) pointer.ID {
	if native < 0 {
		return 0
	}
	if id, ok := m.live[native]; ok {
		return id
	}
	if m.live == nil {
		m.live = make(map[int64]pointer.ID)
	}

	id := OffsetID(native)
	if !m.hasPrimary && hint != HintSecondary {
		m.primary, m.hasPrimary = native, true
		id = pointer.Primary
	}
	m.live[native] = id
	return id
}

// ID returns the ID of a live touch, or OffsetID(native) for a touch that
// was never started.
func (m *TouchMap) ID(native int64) pointer.ID {
	if native < 0 {
		return 0
	}
	if id, ok := m.live[native]; ok {
		return id
	}
	return OffsetID(native)
}

// End returns the ID for a touch that ended or was cancelled, forgets the
// touch, and frees the primary slot if the touch held it.
func (m *TouchMap) End(native int64) pointer.ID {
	id := m.ID(native)
	delete(m.live, native)
	if m.hasPrimary && m.primary == native {
		m.hasPrimary = false
	}
	return id
}

// Primary returns the native identifier holding the primary slot.
func (m *TouchMap) Primary() (int64, bool) {
	return m.primary, m.hasPrimary
}

// Len returns the number of live touches.
func (m *TouchMap) Len() int {
	return len(m.live)
}

// StartBatch records touches that started in the same native event. A
// flagged touch is preferred for a free primary slot; without flags the
// lowest identifier is. The returned IDs are in the order of natives.
func (m *TouchMap) StartBatch(natives []int64, hints []PrimaryHint) []pointer.ID {
	hint := func(i int) PrimaryHint {
		if i < len(hints) {
			return hints[i]
		}
		return HintUnknown
	}

	pick := -1
	for i, n := range natives {
		if n < 0 || hint(i) == HintSecondary {
			continue
		}
		if _, ok := m.live[n]; ok {
			continue
		}
		switch {
		case pick < 0:
			pick = i
		case hint(i) == HintPrimary && hint(pick) != HintPrimary:
			pick = i
		case hint(i) == hint(pick) && n < natives[pick]:
			pick = i
		}
	}
	if pick >= 0 {
		m.Start(natives[pick], hint(pick))
	}

	ids := make([]pointer.ID, len(natives))
	for i, n := range natives {
		ids[i] = m.Start(n, HintSecondary)
	}
	return ids
}
