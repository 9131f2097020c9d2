package bridge

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kataras/golog"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/config"
)

var logger = golog.Child("[bridge]")

// Options configures a Server.
type Options struct {
	// Reducer is passed to every DOM reduction.
	Reducer backend.Options

	// ReadLimit caps the size of one incoming message in bytes.
	ReadLimit int64

	// FrameInterval, if positive, ends every session's frame on a timer.
	FrameInterval time.Duration

	// CheckOrigin decides which pages may connect. Nil allows only
	// same-origin requests.
	CheckOrigin func(r *http.Request) bool
}

// DefaultOptions returns the options for the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig builds server options from loaded settings.
func OptionsFromConfig(c *config.Config) Options {
	return Options{
		Reducer:       c.ToOptions(),
		ReadLimit:     c.Bridge.ReadLimit,
		FrameInterval: c.Bridge.Interval(),
	}
}

// Server accepts websocket connections and runs one Session per
// connection. It implements http.Handler.
type Server struct {
	upgrader websocket.Upgrader

	mu       sync.Mutex
	opts     Options
	sessions map[uuid.UUID]*Session
}

// NewServer returns a Server with no sessions.
func NewServer(opts Options) *Server {
	if opts.ReadLimit <= 0 {
		opts.ReadLimit = config.Default().Bridge.ReadLimit
	}
	return &Server{
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     opts.CheckOrigin,
		},
		sessions: make(map[uuid.UUID]*Session),
	}
}

// ServeHTTP upgrades the request and serves the session until it ends.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		logger.Debugf("upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	s.mu.Lock()
	opts := s.opts
	s.mu.Unlock()

	sess := newSession(conn, opts)
	s.add(sess)
	defer s.remove(sess)

	logger.Infof("session %s connected from %s", sess.id, r.RemoteAddr)
	sess.run()
	logger.Infof("session %s closed", sess.id)
}

// SetReducerOptions changes the reducer options of sessions that connect
// from now on. Live sessions keep the options they started with.
func (s *Server) SetReducerOptions(opts backend.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Reducer = opts
}

// Session returns a live session by id.
func (s *Server) Session(id uuid.UUID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close disconnects every session.
func (s *Server) Close() {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
}

// ListenAndServe serves websocket sessions at /ws on addr until ctx is
// done, then disconnects every session and shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	logger.Infof("listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) add(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
}

func (s *Server) remove(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess.id)
	_ = sess.conn.Close()
}
