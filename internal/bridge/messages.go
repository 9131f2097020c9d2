package bridge

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/dshills/uievents/internal/input/framestate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message types.
const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypeError    = "error"
	TypeFrame    = "frame"
)

// Hello is sent once when a session starts.
type Hello struct {
	Type    string `json:"type"`
	Session string `json:"session"`
}

// SnapshotMessage carries the state at the end of a frame.
type SnapshotMessage struct {
	Type    string              `json:"type"`
	Session string              `json:"session"`
	Frame   uint64              `json:"frame"`
	State   framestate.Snapshot `json:"state"`
}

// ErrorMessage reports a message the session could not use. The session
// stays open.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
