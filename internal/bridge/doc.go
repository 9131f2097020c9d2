// Package bridge serves browser input over a websocket.
//
// A page connects, serializes the DOM events it receives and sends them as
// JSON text messages, one event per message or an array of events. Each
// connection is a session with its own DOM reducer and frame state.
//
// Messages from the page:
//
//	{"type":"pointerdown","timeStamp":12.5,"pointerId":1,...}  a DOM event
//	[{"type":"pointermove",...},{"type":"pointerup",...}]      a batch
//	{"type":"frame"}                                           end the frame
//
// Messages to the page:
//
//	{"type":"hello","session":"<uuid>"}
//	{"type":"snapshot","session":"<uuid>","frame":1,"state":{...}}
//	{"type":"error","message":"..."}
//
// A frame message is answered with a snapshot of the session's state,
// after which the frame is cleared. When a frame interval is configured,
// the server also ends frames on its own timer.
package bridge
