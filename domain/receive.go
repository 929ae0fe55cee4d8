package domain

import "encoding/json"

// Inbound operation names and event types.
const (
	OpConnectionID = "connection-id"
	OpMetadata     = "metadata"
	OpStats        = "stats"
	OpPlayerUpdate = "player-update"
	OpPong         = "pong"
	OpEvent        = "event"

	EventTrackStart      = "TrackStartEvent"
	EventTrackEnd        = "TrackEndEvent"
	EventTrackException  = "TrackExceptionEvent"
	EventTrackStuck      = "TrackStuckEvent"
	EventWebSocketClosed = "WebSocketClosedEvent"
)

// ReceiveOperation is a decoded message sent by a node. The set of variants is closed: only types of
// this package implement it, UnknownOperation and UnknownEvent carry anything the decoder did not know.
type ReceiveOperation interface {
	Op() string
	receiveOperation()
}

// GuildScoped is implemented by inbound operations that belong to a guild.
type GuildScoped interface {
	Guild() GuildID
}

// AndesiteEvent is an inbound "event" operation, further tagged by Type.
type AndesiteEvent interface {
	ReceiveOperation
	GuildScoped
	EventType() string
}

// ConnectionUpdate carries the connection id a later handshake can present to resume.
type ConnectionUpdate struct {
	ID string `json:"id"`
}

// MetadataUpdate carries the handshake metadata (version, node id/region, ...).
type MetadataUpdate struct {
	Data map[string]json.RawMessage `json:"data"`
}

type StatsUpdate struct {
	UserID UserID `json:"userId"`
	Stats  Stats  `json:"stats"`
}

type PlayerUpdate struct {
	UserID  UserID  `json:"userId"`
	GuildID GuildID `json:"guildId"`
	State   Player  `json:"state"`
}

type PongResponse struct {
	UserID  UserID  `json:"userId"`
	GuildID GuildID `json:"guildId"`
}

// UnknownOperation is any message whose op is not registered. Body is the whole object.
type UnknownOperation struct {
	Name string
	Body map[string]json.RawMessage
}

// EventBase holds the fields every event shares.
type EventBase struct {
	Type    string  `json:"type"`
	UserID  UserID  `json:"userId"`
	GuildID GuildID `json:"guildId"`
}

type TrackStartEvent struct {
	EventBase
	Track string `json:"track"`
}

// TrackEndReason tells why a track stopped.
type TrackEndReason string

const (
	TrackEndFinished   TrackEndReason = "FINISHED"
	TrackEndLoadFailed TrackEndReason = "LOAD_FAILED"
	TrackEndStopped    TrackEndReason = "STOPPED"
	TrackEndReplaced   TrackEndReason = "REPLACED"
	TrackEndCleanup    TrackEndReason = "CLEANUP"
)

type TrackEndEvent struct {
	EventBase
	Track        string         `json:"track"`
	Reason       TrackEndReason `json:"reason"`
	MayStartNext bool           `json:"mayStartNext"`
}

type TrackExceptionEvent struct {
	EventBase
	Track     string    `json:"track"`
	Error     string    `json:"error"`
	Exception ErrorInfo `json:"exception"`
}

type TrackStuckEvent struct {
	EventBase
	Track     string   `json:"track"`
	Threshold Duration `json:"threshold"`
}

// WebSocketClosedEvent means the node lost its voice websocket for the guild.
type WebSocketClosedEvent struct {
	EventBase
	Reason   string `json:"reason"`
	Code     int    `json:"code"`
	ByRemote bool   `json:"byRemote"`
}

// UnknownEvent is an event whose type is not registered. Body is the whole object.
type UnknownEvent struct {
	EventBase
	Body map[string]json.RawMessage `json:"-"`
}

func (ConnectionUpdate) Op() string { return OpConnectionID }
func (MetadataUpdate) Op() string   { return OpMetadata }
func (StatsUpdate) Op() string      { return OpStats }
func (PlayerUpdate) Op() string     { return OpPlayerUpdate }
func (PongResponse) Op() string     { return OpPong }
func (u UnknownOperation) Op() string {
	return u.Name
}
func (EventBase) Op() string { return OpEvent }

func (ConnectionUpdate) receiveOperation() {}
func (MetadataUpdate) receiveOperation()   {}
func (StatsUpdate) receiveOperation()      {}
func (PlayerUpdate) receiveOperation()     {}
func (PongResponse) receiveOperation()     {}
func (UnknownOperation) receiveOperation() {}
func (EventBase) receiveOperation()        {}

func (p PlayerUpdate) Guild() GuildID { return p.GuildID }
func (p PongResponse) Guild() GuildID { return p.GuildID }
func (e EventBase) Guild() GuildID    { return e.GuildID }
func (e EventBase) EventType() string { return e.Type }
