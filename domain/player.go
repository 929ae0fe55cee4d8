package domain

// FrameStats reports audio frames sent to Discord in the last minute for one player.
type FrameStats struct {
	Loss    int  `json:"loss"`
	Success int  `json:"success"`
	Usable  bool `json:"usable"`
}

// MixerPlayer is one source of a player's mixer.
type MixerPlayer struct {
	Time     Timestamp  `json:"time"`
	Position *Duration  `json:"position"`
	Paused   bool       `json:"paused"`
	Volume   Volume     `json:"volume"`
	Filters  Filters    `json:"filters"`
	Frame    FrameStats `json:"frame"`
}

// Player is the state Andesite reports for a guild. Position is nil when nothing is playing.
type Player struct {
	Time         Timestamp              `json:"time"`
	Position     *Duration              `json:"position"`
	Paused       bool                   `json:"paused"`
	Volume       Volume                 `json:"volume"`
	Filters      Filters                `json:"filters"`
	Frame        FrameStats             `json:"frame"`
	Mixer        map[string]MixerPlayer `json:"mixer,omitempty"`
	MixerEnabled bool                   `json:"mixerEnabled"`
}

// PlayerState is what the client remembers per guild so a guild can be replayed onto another node.
// Track is the base64 track that is currently playing, empty when idle.
type PlayerState struct {
	GuildID           GuildID            `json:"guildId"`
	Player            *Player            `json:"player,omitempty"`
	Track             string             `json:"track,omitempty"`
	VoiceServerUpdate *VoiceServerUpdate `json:"voiceServerUpdate,omitempty"`
}

// ApplyEvent updates the tracked track: a start sets it, an end, exception or stuck event of the
// current track clears it. Returns whether the state changed.
func (s *PlayerState) ApplyEvent(evt AndesiteEvent) bool {
	switch e := evt.(type) {
	case TrackStartEvent:
		s.Track = e.Track
		return true
	case TrackEndEvent:
		return s.clearTrack(e.Track)
	case TrackExceptionEvent:
		return s.clearTrack(e.Track)
	case TrackStuckEvent:
		return s.clearTrack(e.Track)
	}
	return false
}

// clearTrack forgets the current track unless a different one has started since.
func (s *PlayerState) clearTrack(track string) bool {
	if s.Track == "" || (track != "" && track != s.Track) {
		return false
	}
	s.Track = ""
	return true
}
