package domain

// Outbound operation names.
const (
	OpVoiceServerUpdate = "voice-server-update"
	OpPlay              = "play"
	OpPause             = "pause"
	OpStop              = "stop"
	OpSeek              = "seek"
	OpVolume            = "volume"
	OpUpdate            = "update"
	OpFilters           = "filters"
	OpMixer             = "mixer"
	OpDestroy           = "destroy"
	OpGetPlayer         = "get-player"
	OpGetStats          = "get-stats"
	OpPing              = "ping"
)

// SendOperation is a message the client sends to a node. The codec stamps "op" and "guildId" onto the
// JSON object produced from the operation's own fields.
type SendOperation interface {
	Op() string
}

// VoiceServerEvent is Discord's VOICE_SERVER_UPDATE dispatch payload.
type VoiceServerEvent struct {
	Token    string  `json:"token"`
	GuildID  GuildID `json:"guild_id"`
	Endpoint string  `json:"endpoint"`
}

// VoiceServerUpdate hands the node the voice session of a guild.
type VoiceServerUpdate struct {
	SessionID string           `json:"sessionId"`
	Event     VoiceServerEvent `json:"event"`
}

// Play starts a track. Nil fields keep the node's defaults.
type Play struct {
	Track     string    `json:"track"`
	Start     *Duration `json:"start,omitempty"`
	End       *Duration `json:"end,omitempty"`
	Pause     *bool     `json:"pause,omitempty"`
	Volume    *Volume   `json:"volume,omitempty"`
	NoReplace bool      `json:"noReplace,omitempty"`
}

type Pause struct {
	Pause bool `json:"pause"`
}

type Stop struct{}

type Seek struct {
	Position Duration `json:"position"`
}

// SetVolume changes the player volume.
type SetVolume struct {
	Volume Volume `json:"volume"`
}

// FilterUpdate replaces the filters present in the map.
type FilterUpdate struct {
	Filters
}

// Update changes several player properties at once.
type Update struct {
	Pause    *bool     `json:"pause,omitempty"`
	Position *Duration `json:"position,omitempty"`
	Volume   *Volume   `json:"volume,omitempty"`
	Filters  *Filters  `json:"filters,omitempty"`
}

// MixerPlayerUpdate configures one mixer source; a non-empty Track starts playback on it.
type MixerPlayerUpdate struct {
	Track    string    `json:"track,omitempty"`
	Start    *Duration `json:"start,omitempty"`
	End      *Duration `json:"end,omitempty"`
	Pause    *bool     `json:"pause,omitempty"`
	Position *Duration `json:"position,omitempty"`
	Volume   *Volume   `json:"volume,omitempty"`
	Filters  *Filters  `json:"filters,omitempty"`
}

// MixerUpdate enables/disables the mixer and configures its players.
type MixerUpdate struct {
	Enable  *bool                        `json:"enable,omitempty"`
	Players map[string]MixerPlayerUpdate `json:"players,omitempty"`
}

// Destroy removes the player of the guild from the node.
type Destroy struct {
	Cleanup *bool `json:"cleanup,omitempty"`
}

type GetPlayer struct{}

type GetStats struct{}

type Ping struct{}

func (VoiceServerUpdate) Op() string { return OpVoiceServerUpdate }
func (Play) Op() string              { return OpPlay }
func (Pause) Op() string             { return OpPause }
func (Stop) Op() string              { return OpStop }
func (Seek) Op() string              { return OpSeek }
func (SetVolume) Op() string         { return OpVolume }
func (FilterUpdate) Op() string      { return OpFilters }
func (Update) Op() string            { return OpUpdate }
func (MixerUpdate) Op() string       { return OpMixer }
func (Destroy) Op() string           { return OpDestroy }
func (GetPlayer) Op() string         { return OpGetPlayer }
func (GetStats) Op() string          { return OpGetStats }
func (Ping) Op() string              { return OpPing }
