package interfaces

import (
	"context"
	"time"

	"myandesite/domain"
)

// Sendable is anything that accepts outbound operations for a guild: a single node client or a pool.
type Sendable interface {
	// Send encodes op for guildID and sends it, queueing it while disconnected.
	// A closed connection during the write is recovered internally and not returned.
	Send(ctx context.Context, guildID domain.GuildID, op domain.SendOperation) error
}

// Connectable controls the lifecycle of a node connection.
type Connectable interface {
	// Connect opens the connection, retrying with backoff. Returns ErrAlreadyConnected when already open and
	// *ConnectionError when every attempt failed (the client is closed afterwards).
	Connect(ctx context.Context) error
	// Disconnect closes the connection deliberately; the client stays reusable. No-op when not connected.
	Disconnect() error
	// Close disconnects and makes the client terminal.
	Close() error
	// Reset disconnects, clears the queue and the resume id and makes a closed client usable again.
	Reset() error
	Connected() bool
	Closed() bool
}

// NodeInfo exposes what is known about the node behind a client. Empty strings mean "not known yet".
type NodeInfo interface {
	Name() string
	ConnectionID() string
	NodeID() string
	NodeRegion() string
	// LastStats returns the most recent statistics the node pushed or answered with.
	LastStats() (domain.Stats, bool)
}

// EventSource delivers client events synchronously, in the order they happened.
type EventSource interface {
	// Subscribe registers fn and returns a function removing it.
	Subscribe(fn func(domain.Event)) (unsubscribe func())
}

// StatefulClient tracks player state through a StateHandler and can replay it.
type StatefulClient interface {
	SetStateHandler(h StateHandler)
	StateHandler() StateHandler
	// LoadPlayerState sends the voice-server-update, play and update operations recreating state on the node.
	LoadPlayerState(ctx context.Context, state domain.PlayerState) error
}

// NodeClient is the single-node websocket client managed by service.Pool.
//
//go:generate moq -stub -out mock/node_client.go -pkg mock . NodeClient
type NodeClient interface {
	Sendable
	Connectable
	NodeInfo
	EventSource
	StatefulClient

	// WaitForResponse waits for an inbound operation named op (for guildID when non-nil).
	// Returns (nil, false) when timeout or ctx expire first.
	WaitForResponse(ctx context.Context, op string, guildID *domain.GuildID, timeout time.Duration) (domain.ReceiveOperation, bool)
	// GetPlayer, GetStats and Ping register their wait before sending. ok is false on timeout.
	GetPlayer(ctx context.Context, guildID domain.GuildID) (player *domain.Player, ok bool, err error)
	GetStats(ctx context.Context, guildID domain.GuildID) (stats *domain.Stats, ok bool, err error)
	Ping(ctx context.Context, guildID domain.GuildID) (rtt time.Duration, ok bool, err error)
}
