package main

import (
	"fmt"
	"strings"

	"github.com/dshills/uievents/internal/input/framestate"
)

// render formats a snapshot as screen lines.
func render(frame uint64, s framestate.Snapshot) []string {
	p, k := s.Pointer, s.Keyboard
	return []string{
		fmt.Sprintf("frame %d", frame),
		"",
		fmt.Sprintf("pointer  %.0f,%.0f  (logical %.1f,%.1f)", p.Position.X, p.Position.Y, p.LogicalPosition.X, p.LogicalPosition.Y),
		fmt.Sprintf("motion   %+.0f,%+.0f", p.Motion.X, p.Motion.Y),
		"buttons  " + list(p.Down),
		"pressed  " + list(p.JustPressed),
		"released " + list(p.JustReleased),
		fmt.Sprintf("count    %d", p.Count),
		"",
		"keys     " + list(k.Down),
		"pressed  " + list(k.JustPressed),
		"released " + list(k.JustReleased),
		"mods     " + orDash(k.Modifiers),
		"",
		"Ctrl+C quits",
	}
}

func list(names []string) string {
	return orDash(strings.Join(names, " "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
