package domain

import "encoding/json"

// Event is emitted by clients and pools to their subscribers. Node names the emitting client.
type Event interface {
	NodeName() string
	event()
}

// EventBaseNode is embedded by every Event.
type EventBaseNode struct {
	Node string
}

func (e EventBaseNode) NodeName() string { return e.Node }
func (EventBaseNode) event()             {}

// ConnectEvent follows a successful handshake, before the queued messages are replayed.
type ConnectEvent struct {
	EventBaseNode
	Resumed bool
}

// DisconnectEvent follows the loss of a connection. Deliberate is true when the caller asked for it.
type DisconnectEvent struct {
	EventBaseNode
	Deliberate bool
}

// ConnectErrorEvent reports a background connect (triggered by a send) that gave up.
type ConnectErrorEvent struct {
	EventBaseNode
	Err error
}

// RawReceiveEvent carries every JSON object read from the node, before decoding.
type RawReceiveEvent struct {
	EventBaseNode
	Body map[string]json.RawMessage
}

// ReceiveEvent carries a decoded inbound operation.
type ReceiveEvent struct {
	EventBaseNode
	Operation ReceiveOperation
}

// RawSendEvent is emitted when a message is handed to the session (sent or queued).
type RawSendEvent struct {
	EventBaseNode
	GuildID GuildID
	Op      string
	Body    []byte
}

// ClientAddEvent and ClientRemoveEvent are emitted by a pool when its membership changes.
type ClientAddEvent struct {
	EventBaseNode
}

type ClientRemoveEvent struct {
	EventBaseNode
	Guilds []GuildID
}
