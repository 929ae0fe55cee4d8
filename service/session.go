package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
)

// Handshake headers.
const (
	HeaderAuthorization = "Authorization"
	HeaderUserID        = "User-Id"
	HeaderResumeID      = "Andesite-Resume-Id"
	HeaderNodeID        = "Andesite-Node-Id"
	HeaderNodeRegion    = "Andesite-Node-Region"
)

// Backoff returns the delay before the attempt following attempt: floor(attempt^1.5) seconds.
func Backoff(attempt int) time.Duration {
	return time.Duration(math.Floor(math.Pow(float64(attempt), 1.5))) * time.Second
}

// SessionConfig holds what a Session needs to reach one node.
// MaxConnectAttempts is the default attempt limit of Connect; nil means unlimited.
type SessionConfig struct {
	Name               string
	URL                string
	Password           string
	UserID             domain.UserID
	MaxConnectAttempts *int
}

// Session keeps one websocket connection to a node alive. It reconnects with backoff, queues
// messages while disconnected and replays them in FIFO order before anything sent after the
// reconnect, presents the last connection id to resume, and decodes everything it reads into events
// on its hub.
//
// State: Disconnected -> Connecting -> Connected -> Disconnected, and Closed (terminal until Reset)
// after Close or after a connect gave up.
type Session struct {
	name        string
	url         string
	maxAttempts *int
	dialer      interfaces.WebSocketDialer
	clock       interfaces.TimeProvider
	codec       *Codec
	hub         *EventHub
	logger      log.Logger

	// gate allows one connect attempt sequence at a time.
	gate chan struct{}
	// connecting is set while a send-triggered background connect runs.
	connecting atomic.Bool

	mu               sync.Mutex
	header           http.Header
	conn             interfaces.WebSocketConn
	respHeader       http.Header
	closed           bool
	lastConnectionID string
	queue            [][]byte
	// draining is true while queued messages are being replayed on conn; new sends are queued behind them.
	draining   bool
	loopCancel context.CancelFunc
	lifetime   context.Context
	endLife    context.CancelFunc

	// writeMu serialises writes on the connection.
	writeMu sync.Mutex
}

// NewSession creates a disconnected session. Panics on empty name or URL and on nil dialer, clock, codec, hub or logger.
//
// Parameters: cfg — node address and credentials; dialer — opens websocket connections (adapters.WebSocketDialer in prod);
// clock — backoff sleeps; codec — inbound decoding; hub — receives every event of this session; logger — base logger.
//
// Called from NewWebSocketClient.
func NewSession(
	cfg SessionConfig,
	dialer interfaces.WebSocketDialer,
	clock interfaces.TimeProvider,
	codec *Codec,
	hub *EventHub,
	logger log.Logger,
) *Session {
	header := http.Header{}
	if cfg.Password != "" {
		header.Set(HeaderAuthorization, cfg.Password)
	}
	if cfg.UserID != 0 {
		header.Set(HeaderUserID, cfg.UserID.String())
	}
	s := &Session{
		name:        helpers.StrPanic(cfg.Name, "service.session.go: name is required"),
		url:         helpers.StrPanic(cfg.URL, "service.session.go: url is required"),
		maxAttempts: positiveOrNil(cfg.MaxConnectAttempts),
		dialer:      helpers.NilPanic(dialer, "service.session.go: dialer is required"),
		clock:       helpers.NilPanic(clock, "service.session.go: clock is required"),
		codec:       helpers.NilPanic(codec, "service.session.go: codec is required"),
		hub:         helpers.NilPanic(hub, "service.session.go: hub is required"),
		logger:      log.With(helpers.NilPanic(logger, "service.session.go: logger is required"), "component", "session", "node", cfg.Name),
		gate:        make(chan struct{}, 1),
		header:      header,
	}
	s.lifetime, s.endLife = context.WithCancel(context.Background())
	return s
}

// positiveOrNil treats a non-positive attempt limit as no limit.
func positiveOrNil(n *int) *int {
	if n == nil || *n <= 0 {
		return nil
	}
	return n
}

// SetUserID sets the User-Id handshake header used by the next connect.
func (s *Session) SetUserID(id domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header.Set(HeaderUserID, id.String())
}

// Connected reports whether the session has an open connection.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Closed reports whether the session is terminal.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// LastConnectionID returns the id presented as resume token on the next connect, "" if none.
func (s *Session) LastConnectionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastConnectionID
}

// ResponseHeader returns the handshake response headers of the current (or last) connection.
func (s *Session) ResponseHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.respHeader.Clone()
}

// QueueLen returns the number of messages waiting for a connection.
func (s *Session) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Connect connects using the session's default attempt limit. See ConnectWithAttempts.
func (s *Session) Connect(ctx context.Context) error {
	return s.ConnectWithAttempts(ctx, s.maxAttempts)
}

// ConnectWithAttempts dials the node until it succeeds or maxAttempts (nil: unlimited) attempts failed,
// sleeping Backoff(attempt) between attempts. A non-positive maxAttempts falls back to the session's
// default limit. Only one connect runs at a time; a caller that waited for
// another connect to finish returns nil when that one succeeded.
//
// Returns: nil on success; ErrAlreadyConnected when already connected at call time; ErrSessionClosed when
// closed; ErrUserIDRequired without user id; ctx.Err() when ctx ends first (the session stays usable);
// *ConnectionError after exhausting attempts, in which case the session is closed.
//
// Called from Client.Connect, from the read loop after an unexpected disconnect and from Send while disconnected.
func (s *Session) ConnectWithAttempts(ctx context.Context, maxAttempts *int) error {
	if maxAttempts != nil && *maxAttempts <= 0 {
		maxAttempts = s.maxAttempts
	}
	s.mu.Lock()
	closed, connected := s.closed, s.conn != nil
	s.mu.Unlock()
	if closed {
		return ErrSessionClosed
	}
	if connected {
		return ErrAlreadyConnected
	}

	select {
	case s.gate <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.gate }()

	s.mu.Lock()
	closed, connected = s.closed, s.conn != nil
	header := s.header.Clone()
	resumeID := s.lastConnectionID
	s.mu.Unlock()
	if closed {
		return ErrSessionClosed
	}
	if connected {
		return nil
	}
	if header.Get(HeaderUserID) == "" {
		return ErrUserIDRequired
	}
	if resumeID != "" {
		header.Set(HeaderResumeID, resumeID)
	} else {
		header.Del(HeaderResumeID)
	}

	var lastErr error
	made := 0
	for attempt := 1; maxAttempts == nil || attempt <= *maxAttempts; attempt++ {
		made = attempt
		conn, respHeader, err := s.dialer.Dial(ctx, s.url, header)
		if err == nil {
			if ctx.Err() != nil {
				_ = conn.Close()
				return ctx.Err()
			}
			s.attach(conn, respHeader, resumeID != "")
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if maxAttempts != nil && attempt == *maxAttempts {
			break
		}
		delay := Backoff(attempt)
		level.Info(s.logger).Log("msg", "connection unsuccessful, retrying", "attempt", attempt, "delay", delay, "err", err)
		if err := s.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.closed = true
	s.endLife()
	s.mu.Unlock()
	level.Error(s.logger).Log("msg", "giving up connecting, session closed", "attempts", made, "err", lastErr)
	return &ConnectionError{URL: s.url, Attempts: made, Err: lastErr}
}

// attach publishes a fresh connection: starts its read loop, emits ConnectEvent and replays the queue.
// Sends issued from now on are queued behind the replay until the queue is empty.
func (s *Session) attach(conn interfaces.WebSocketConn, respHeader http.Header, resumed bool) {
	s.mu.Lock()
	loopCtx, cancel := context.WithCancel(s.lifetime)
	s.conn = conn
	s.respHeader = respHeader
	s.loopCancel = cancel
	s.draining = true
	s.mu.Unlock()

	level.Info(s.logger).Log("msg", "connected", "resumed", resumed)
	go s.readLoop(loopCtx, cancel, conn)
	s.hub.Dispatch(domain.ConnectEvent{EventBaseNode: domain.EventBaseNode{Node: s.name}, Resumed: resumed})
	s.drain(conn)
}

// drain writes queued messages on conn until the queue is empty, then lets sends go out directly.
func (s *Session) drain(conn interfaces.WebSocketConn) {
	for {
		s.mu.Lock()
		if s.conn != conn {
			s.mu.Unlock()
			return
		}
		batch := s.queue
		s.queue = nil
		if len(batch) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		level.Info(s.logger).Log("msg", "sending queued messages", "count", len(batch))
		s.writeMu.Lock()
		for i, msg := range batch {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.writeMu.Unlock()
				s.handleWriteFailure(conn, batch[i:], err)
				return
			}
		}
		s.writeMu.Unlock()
	}
}

// Send writes msg when connected, otherwise queues it and starts a background connect. A failed
// write puts the message back at the head of the queue and drops the connection; the read loop then
// reconnects. Neither case is reported to the caller.
//
// Returns: nil, or ErrSessionClosed when the session is closed.
func (s *Session) Send(msg []byte) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.conn == nil || s.draining {
		s.queue = append(s.queue, msg)
		needConnect := s.conn == nil
		s.mu.Unlock()
		level.Debug(s.logger).Log("msg", "queued message", "connected", !needConnect)
		if needConnect {
			s.connectInBackground()
		}
		return nil
	}
	conn := s.conn
	s.mu.Unlock()

	s.writeMu.Lock()
	err := conn.WriteMessage(websocket.TextMessage, msg)
	s.writeMu.Unlock()
	if err != nil {
		s.handleWriteFailure(conn, [][]byte{msg}, err)
	}
	return nil
}

// handleWriteFailure requeues msgs ahead of everything queued later. When conn is still the current
// connection it is dropped and closed so the read loop reconnects; when a newer connection is already
// up the queue is drained onto it.
func (s *Session) handleWriteFailure(conn interfaces.WebSocketConn, msgs [][]byte, err error) {
	s.mu.Lock()
	requeued := make([][]byte, 0, len(msgs)+len(s.queue))
	requeued = append(requeued, msgs...)
	s.queue = append(requeued, s.queue...)
	current := s.conn
	startDrain := false
	switch {
	case current == conn:
		s.conn = nil
		s.draining = false
	case current != nil && !s.draining:
		s.draining = true
		startDrain = true
	}
	s.mu.Unlock()

	level.Warn(s.logger).Log("msg", "write failed, message requeued", "count", len(msgs), "err", err)
	_ = conn.Close()
	if startDrain {
		go s.drain(current)
	}
}

// connectInBackground starts Connect on its own goroutine unless one is already running. A failure is
// logged and emitted as ConnectErrorEvent.
func (s *Session) connectInBackground() {
	if !s.connecting.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	ctx := s.lifetime
	s.mu.Unlock()
	go func() {
		defer s.connecting.Store(false)
		s.reportConnectError(ctx, s.Connect(ctx))
	}()
}

func (s *Session) reportConnectError(ctx context.Context, err error) {
	if err == nil || errors.Is(err, ErrAlreadyConnected) || ctx.Err() != nil {
		return
	}
	level.Error(s.logger).Log("msg", "background connect failed", "err", err)
	s.hub.Dispatch(domain.ConnectErrorEvent{EventBaseNode: domain.EventBaseNode{Node: s.name}, Err: err})
}

// readLoop reads conn until it fails. A failure after ctx was cancelled is a deliberate disconnect and
// ends the loop silently; any other failure emits DisconnectEvent{Deliberate: false} and reconnects
// (the new connection gets its own loop).
func (s *Session) readLoop(ctx context.Context, cancel context.CancelFunc, conn interfaces.WebSocketConn) {
	defer cancel()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.mu.Lock()
			if s.conn == conn {
				s.conn = nil
				s.draining = false
			}
			s.mu.Unlock()
			_ = conn.Close()
			level.Error(s.logger).Log("msg", "disconnected from websocket, trying to reconnect", "err", err)
			s.hub.Dispatch(domain.DisconnectEvent{EventBaseNode: domain.EventBaseNode{Node: s.name}})
			err := s.Connect(ctx)
			if !errors.Is(err, ErrSessionClosed) {
				s.reportConnectError(ctx, err)
			}
			return
		}
		s.handleFrame(data)
	}
}

// handleFrame decodes one frame. Malformed JSON, non-object payloads, messages without op and unknown
// ops are logged and dropped.
func (s *Session) handleFrame(data []byte) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil || body == nil {
		level.Warn(s.logger).Log("msg", "dropping frame that is not a JSON object", "frame", string(data), "err", err)
		return
	}
	node := domain.EventBaseNode{Node: s.name}
	s.hub.Dispatch(domain.RawReceiveEvent{EventBaseNode: node, Body: body})

	op, err := s.codec.Decode(body)
	if err != nil {
		level.Warn(s.logger).Log("msg", "dropping undecodable message", "frame", string(data), "err", err)
		return
	}
	if unknown, ok := op.(domain.UnknownOperation); ok {
		level.Warn(s.logger).Log("msg", "dropping message with unknown op", "op", unknown.Name)
		return
	}
	if cu, ok := op.(domain.ConnectionUpdate); ok {
		s.mu.Lock()
		s.lastConnectionID = cu.ID
		s.mu.Unlock()
	}
	s.hub.Dispatch(domain.ReceiveEvent{EventBaseNode: node, Operation: op})
}

// Disconnect stops the read loop and closes the connection, emitting DisconnectEvent{Deliberate: true}.
// A running reconnect is aborted. No-op when not connected; the session stays usable.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	conn := s.conn
	cancel := s.loopCancel
	s.conn = nil
	s.draining = false
	s.loopCancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn == nil {
		return nil
	}
	err := conn.Close()
	level.Info(s.logger).Log("msg", "disconnected")
	s.hub.Dispatch(domain.DisconnectEvent{EventBaseNode: domain.EventBaseNode{Node: s.name}, Deliberate: true})
	return err
}

// Close disconnects and makes the session terminal; pending background connects are cancelled.
func (s *Session) Close() error {
	err := s.Disconnect()
	s.mu.Lock()
	s.closed = true
	s.endLife()
	s.mu.Unlock()
	return err
}

// Reset disconnects, drops queued messages and the resume id, and reopens a closed session.
func (s *Session) Reset() error {
	err := s.Disconnect()
	s.mu.Lock()
	s.queue = nil
	s.lastConnectionID = ""
	s.closed = false
	s.endLife()
	s.lifetime, s.endLife = context.WithCancel(context.Background())
	s.mu.Unlock()
	return err
}
