package bridge

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/dshills/uievents/internal/backend/dom"
	"github.com/dshills/uievents/internal/input/framestate"
)

const writeWait = 5 * time.Second

// Session is one connected page.
type Session struct {
	id   uuid.UUID
	conn *websocket.Conn
	opts Options

	writeMu sync.Mutex

	// mu guards the reducer, the state and the frame counter, which are
	// shared between the read loop and the frame timer.
	mu      sync.Mutex
	reducer *dom.Reducer
	state   framestate.InputState
	frame   uint64
}

func newSession(conn *websocket.Conn, opts Options) *Session {
	return &Session{
		id:      uuid.New(),
		conn:    conn,
		opts:    opts,
		reducer: dom.NewReducer(),
	}
}

// ID returns the session id announced in the hello message.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Snapshot returns the current state without ending the frame.
func (s *Session) Snapshot() framestate.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// run serves the connection until it fails or closes.
func (s *Session) run() {
	s.conn.SetReadLimit(s.opts.ReadLimit)
	if err := s.send(Hello{Type: TypeHello, Session: s.id.String()}); err != nil {
		logger.Debugf("session %s: hello: %v", s.id, err)
		return
	}

	stop := make(chan struct{})
	defer close(stop)
	if s.opts.FrameInterval > 0 {
		go s.tick(stop)
	}

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warnf("session %s: %v", s.id, err)
			}
			return
		}
		if err := s.handle(data); err != nil {
			logger.Debugf("session %s: %v", s.id, err)
			if err := s.send(ErrorMessage{Type: TypeError, Message: err.Error()}); err != nil {
				return
			}
		}
	}
}

func (s *Session) tick(stop <-chan struct{}) {
	t := time.NewTicker(s.opts.FrameInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if err := s.endFrame(); err != nil {
				logger.Debugf("session %s: frame: %v", s.id, err)
				return
			}
		}
	}
}

// handle processes one websocket message.
func (s *Session) handle(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", dom.ErrInvalidEvent)
	}
	msg := gjson.ParseBytes(data)
	if !msg.IsArray() {
		return s.handleOne(msg)
	}
	for _, item := range msg.Array() {
		if err := s.handleOne(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) handleOne(r gjson.Result) error {
	if !r.IsObject() {
		return fmt.Errorf("%w: not an object", dom.ErrInvalidEvent)
	}
	if r.Get("type").String() == TypeFrame {
		return s.endFrame()
	}

	s.mu.Lock()
	s.state.ProcessAll(s.reducer.Reduce(dom.FromResult(r), s.opts.Reducer))
	s.mu.Unlock()
	return nil
}

// endFrame sends the state and clears the frame.
func (s *Session) endFrame() error {
	s.mu.Lock()
	s.frame++
	msg := SnapshotMessage{
		Type:    TypeSnapshot,
		Session: s.id.String(),
		Frame:   s.frame,
		State:   s.state.Snapshot(),
	}
	s.state.ClearFrame()
	s.mu.Unlock()

	return s.send(msg)
}

func (s *Session) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %T: %w", v, err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Session) close() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = s.conn.Close()
}
