package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultRequestTimeout bounds GetPlayer, GetStats, Ping and WaitForResponse without explicit timeout.
	DefaultRequestTimeout = 10 * time.Second
	// stateTimeout bounds one state handler call made from the read loop.
	stateTimeout = 5 * time.Second
)

// ClientConfig configures a WebSocketClient. RequestTimeout 0 means DefaultRequestTimeout.
type ClientConfig struct {
	Node           domain.NodeConfig
	UserID         domain.UserID
	RequestTimeout time.Duration
}

// WebSocketClient is the client of one Andesite node: a Session plus request/response correlation,
// node identity and player state tracking.
type WebSocketClient struct {
	Operations

	name           string
	region         string
	session        *Session
	hub            *EventHub
	clock          interfaces.TimeProvider
	logger         log.Logger
	requestTimeout time.Duration

	mu       sync.RWMutex
	state    interfaces.StateHandler
	stats    *domain.Stats
	metadata map[string]json.RawMessage
}

var _ interfaces.NodeClient = (*WebSocketClient)(nil)

// NewWebSocketClient creates a disconnected client for cfg.Node. Player state is tracked in a MemoryState
// until SetStateHandler replaces it (a Pool sets its own handler).
//
// Parameters: dialer — websocket dialer (adapters.WebSocketDialer in prod); clock — backoff sleeps and
// ping timing; logger — base logger.
func NewWebSocketClient(cfg ClientConfig, dialer interfaces.WebSocketDialer, clock interfaces.TimeProvider, logger log.Logger) *WebSocketClient {
	logger = helpers.NilPanic(logger, "service.client.go: logger is required")
	hub := NewEventHub()
	c := &WebSocketClient{
		name:           cfg.Node.Name,
		region:         cfg.Node.Region,
		hub:            hub,
		clock:          helpers.NilPanic(clock, "service.client.go: clock is required"),
		logger:         log.With(logger, "component", "client", "node", cfg.Node.Name),
		requestTimeout: cfg.RequestTimeout,
		state:          NewMemoryState(),
	}
	if c.requestTimeout <= 0 {
		c.requestTimeout = DefaultRequestTimeout
	}
	c.session = NewSession(SessionConfig{
		Name:               cfg.Node.Name,
		URL:                cfg.Node.WebSocketURL,
		Password:           cfg.Node.Password,
		UserID:             cfg.UserID,
		MaxConnectAttempts: cfg.Node.MaxConnectAttempts,
	}, dialer, clock, NewCodec(), hub, logger)
	c.Operations = Operations{sender: c}
	hub.Subscribe(c.track)
	return c
}

func (c *WebSocketClient) Name() string { return c.name }

// Session exposes the underlying transport session.
func (c *WebSocketClient) Session() *Session { return c.session }

func (c *WebSocketClient) Connect(ctx context.Context) error { return c.session.Connect(ctx) }
func (c *WebSocketClient) Disconnect() error                 { return c.session.Disconnect() }
func (c *WebSocketClient) Close() error                      { return c.session.Close() }
func (c *WebSocketClient) Connected() bool                   { return c.session.Connected() }
func (c *WebSocketClient) Closed() bool                      { return c.session.Closed() }

// Reset resets the session and forgets the cached stats and metadata.
func (c *WebSocketClient) Reset() error {
	err := c.session.Reset()
	c.mu.Lock()
	c.stats = nil
	c.metadata = nil
	c.mu.Unlock()
	return err
}

// SetUserID sets the bot user id presented on the next connect.
func (c *WebSocketClient) SetUserID(id domain.UserID) { c.session.SetUserID(id) }

func (c *WebSocketClient) Subscribe(fn func(domain.Event)) func() { return c.hub.Subscribe(fn) }

// ConnectionID is the id the node assigned to the current or last connection, "" before the first.
func (c *WebSocketClient) ConnectionID() string { return c.session.LastConnectionID() }

// NodeID comes from the handshake response, falling back to the metadata message.
func (c *WebSocketClient) NodeID() string {
	if id := c.session.ResponseHeader().Get(HeaderNodeID); id != "" {
		return id
	}
	return c.metadataString("nodeId")
}

// NodeRegion comes from the handshake response, the metadata message or the configured region, in that order.
func (c *WebSocketClient) NodeRegion() string {
	if region := c.session.ResponseHeader().Get(HeaderNodeRegion); region != "" {
		return region
	}
	if region := c.metadataString("nodeRegion"); region != "" {
		return region
	}
	return c.region
}

func (c *WebSocketClient) metadataString(key string) string {
	c.mu.RLock()
	raw, ok := c.metadata[key]
	c.mu.RUnlock()
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (c *WebSocketClient) LastStats() (domain.Stats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.stats == nil {
		return domain.Stats{}, false
	}
	return *c.stats, true
}

// SetStateHandler replaces the player state handler; nil disables state tracking.
func (c *WebSocketClient) SetStateHandler(h interfaces.StateHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = h
}

func (c *WebSocketClient) StateHandler() interfaces.StateHandler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Send encodes op for guildID and hands it to the session. A voice-server-update is recorded in the
// state handler first. Returns encoding errors and ErrSessionClosed; connection problems are not returned.
func (c *WebSocketClient) Send(ctx context.Context, guildID domain.GuildID, op domain.SendOperation) error {
	payload, err := EncodeSendOperation(guildID, op)
	if err != nil {
		return err
	}
	if vsu, ok := op.(domain.VoiceServerUpdate); ok {
		if h := c.StateHandler(); h != nil {
			if err := h.HandleVoiceServerUpdate(ctx, guildID, vsu); err != nil {
				level.Error(c.logger).Log("msg", "state handler failed on voice server update", "guild_id", guildID, "err", err)
			}
		}
	}
	c.hub.Dispatch(domain.RawSendEvent{EventBaseNode: domain.EventBaseNode{Node: c.name}, GuildID: guildID, Op: op.Op(), Body: payload})
	return c.session.Send(payload)
}

// track keeps stats, metadata and player state current from inbound operations.
func (c *WebSocketClient) track(evt domain.Event) {
	re, ok := evt.(domain.ReceiveEvent)
	if !ok {
		return
	}
	switch op := re.Operation.(type) {
	case domain.StatsUpdate:
		stats := op.Stats
		c.mu.Lock()
		c.stats = &stats
		c.mu.Unlock()
	case domain.MetadataUpdate:
		c.mu.Lock()
		c.metadata = op.Data
		c.mu.Unlock()
	case domain.PlayerUpdate:
		c.withState(op.GuildID, func(ctx context.Context, h interfaces.StateHandler) error {
			return h.HandlePlayerUpdate(ctx, op)
		})
	case domain.AndesiteEvent:
		c.withState(op.Guild(), func(ctx context.Context, h interfaces.StateHandler) error {
			return h.HandleEvent(ctx, op)
		})
	}
}

func (c *WebSocketClient) withState(guildID domain.GuildID, fn func(context.Context, interfaces.StateHandler) error) {
	h := c.StateHandler()
	if h == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()
	if err := fn(ctx, h); err != nil {
		level.Error(c.logger).Log("msg", "state handler failed", "guild_id", guildID, "err", err)
	}
}

// WaitForResponse waits for the next inbound op (for guildID when not nil). timeout 0 uses the client's
// request timeout. Returns (nil, false) on timeout.
func (c *WebSocketClient) WaitForResponse(ctx context.Context, op string, guildID *domain.GuildID, timeout time.Duration) (domain.ReceiveOperation, bool) {
	if timeout <= 0 {
		timeout = c.requestTimeout
	}
	evt, ok := c.hub.Expect(matchReceive(op, guildID)).Wait(ctx, timeout)
	if !ok {
		return nil, false
	}
	return evt.(domain.ReceiveEvent).Operation, true
}

// request registers the wait for respOp before sending op, so a fast answer cannot be missed.
func (c *WebSocketClient) request(ctx context.Context, guildID domain.GuildID, op domain.SendOperation, respOp string, byGuild bool) (domain.ReceiveOperation, bool, error) {
	var filter *domain.GuildID
	if byGuild {
		filter = &guildID
	}
	w := c.hub.Expect(matchReceive(respOp, filter))
	if err := c.Send(ctx, guildID, op); err != nil {
		w.Cancel()
		return nil, false, err
	}
	evt, ok := w.Wait(ctx, c.requestTimeout)
	if !ok {
		return nil, false, nil
	}
	return evt.(domain.ReceiveEvent).Operation, true, nil
}

// GetPlayer asks the node for the guild's player. ok is false on timeout.
func (c *WebSocketClient) GetPlayer(ctx context.Context, guildID domain.GuildID) (*domain.Player, bool, error) {
	resp, ok, err := c.request(ctx, guildID, domain.GetPlayer{}, domain.OpPlayerUpdate, true)
	if !ok || err != nil {
		return nil, false, err
	}
	player := resp.(domain.PlayerUpdate).State
	return &player, true, nil
}

// GetStats asks the node for its statistics. The answer carries no guild, so any stats message counts.
func (c *WebSocketClient) GetStats(ctx context.Context, guildID domain.GuildID) (*domain.Stats, bool, error) {
	resp, ok, err := c.request(ctx, guildID, domain.GetStats{}, domain.OpStats, false)
	if !ok || err != nil {
		return nil, false, err
	}
	stats := resp.(domain.StatsUpdate).Stats
	return &stats, true, nil
}

// Ping measures the round trip of a ping for guildID.
func (c *WebSocketClient) Ping(ctx context.Context, guildID domain.GuildID) (time.Duration, bool, error) {
	start := c.clock.Now()
	_, ok, err := c.request(ctx, guildID, domain.Ping{}, domain.OpPong, true)
	if !ok || err != nil {
		return 0, false, err
	}
	return c.clock.Now().Sub(start), true, nil
}

// LoadPlayerState recreates state on this node: the voice-server-update, then play at the last known
// position and an update restoring filters, pause and volume. Only the voice session is sent when no
// track is playing.
func (c *WebSocketClient) LoadPlayerState(ctx context.Context, state domain.PlayerState) error {
	if state.VoiceServerUpdate != nil {
		if err := c.Send(ctx, state.GuildID, *state.VoiceServerUpdate); err != nil {
			return err
		}
	}
	if state.Track == "" {
		return nil
	}
	play := domain.Play{Track: state.Track}
	p := state.Player
	if p != nil {
		play.Start = p.Position
		play.Pause = helpers.Ptr(p.Paused)
		play.Volume = helpers.Ptr(p.Volume)
	}
	if err := c.Send(ctx, state.GuildID, play); err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	return c.Send(ctx, state.GuildID, domain.Update{
		Pause:    helpers.Ptr(p.Paused),
		Position: p.Position,
		Volume:   helpers.Ptr(p.Volume),
		Filters:  helpers.Ptr(p.Filters),
	})
}
