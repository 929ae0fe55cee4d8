package interfaces

import (
	"context"

	"myandesite/domain"
)

// StateHandler records player state per guild from the traffic of a client.
// Implementations: service.MemoryState (in process) and myredis.PlayerStateStore (shared across processes).
//
//go:generate moq -stub -out mock/state_handler.go -pkg mock . StateHandler
type StateHandler interface {
	// HandlePlayerUpdate stores the reported player.
	HandlePlayerUpdate(ctx context.Context, update domain.PlayerUpdate) error
	// HandleEvent sets the track on TrackStartEvent and clears it on end, exception and stuck events.
	HandleEvent(ctx context.Context, event domain.AndesiteEvent) error
	// HandleVoiceServerUpdate stores the last voice-server-update submitted for the guild.
	HandleVoiceServerUpdate(ctx context.Context, guildID domain.GuildID, update domain.VoiceServerUpdate) error
	// Get returns the state of the guild; (nil, nil) when nothing is known.
	Get(ctx context.Context, guildID domain.GuildID) (*domain.PlayerState, error)
	// Delete forgets the guild.
	Delete(ctx context.Context, guildID domain.GuildID) error
}
