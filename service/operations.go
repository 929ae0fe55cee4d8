package service

import (
	"context"

	"myandesite/domain"
	"myandesite/interfaces"
)

// Operations turns player commands into send operations. It is embedded by WebSocketClient and Pool,
// so the same calls work against one node or against the node a pool assigned to the guild.
type Operations struct {
	sender interfaces.Sendable
}

// VoiceServerUpdate hands the node the Discord voice session of the guild. Must precede Play.
func (o Operations) VoiceServerUpdate(ctx context.Context, guildID domain.GuildID, sessionID string, event domain.VoiceServerEvent) error {
	return o.sender.Send(ctx, guildID, domain.VoiceServerUpdate{SessionID: sessionID, Event: event})
}

// Play starts track. start/end nil play the whole track; pause and volume nil keep the player's values.
func (o Operations) Play(ctx context.Context, guildID domain.GuildID, track string, opts PlayOptions) error {
	return o.sender.Send(ctx, guildID, domain.Play{
		Track:     track,
		Start:     opts.Start,
		End:       opts.End,
		Pause:     opts.Pause,
		Volume:    opts.Volume,
		NoReplace: opts.NoReplace,
	})
}

// PlayOptions are the optional fields of Play.
type PlayOptions struct {
	Start     *domain.Duration
	End       *domain.Duration
	Pause     *bool
	Volume    *domain.Volume
	NoReplace bool
}

func (o Operations) Pause(ctx context.Context, guildID domain.GuildID, pause bool) error {
	return o.sender.Send(ctx, guildID, domain.Pause{Pause: pause})
}

func (o Operations) Stop(ctx context.Context, guildID domain.GuildID) error {
	return o.sender.Send(ctx, guildID, domain.Stop{})
}

func (o Operations) Seek(ctx context.Context, guildID domain.GuildID, position domain.Duration) error {
	return o.sender.Send(ctx, guildID, domain.Seek{Position: position})
}

func (o Operations) SetVolume(ctx context.Context, guildID domain.GuildID, volume domain.Volume) error {
	return o.sender.Send(ctx, guildID, domain.SetVolume{Volume: volume})
}

// SetFilters validates filters and sends the ones that are set.
func (o Operations) SetFilters(ctx context.Context, guildID domain.GuildID, filters domain.Filters) error {
	if err := filters.Validate(); err != nil {
		return err
	}
	return o.sender.Send(ctx, guildID, domain.FilterUpdate{Filters: filters})
}

// Update changes several player properties in one message.
func (o Operations) Update(ctx context.Context, guildID domain.GuildID, update domain.Update) error {
	if update.Filters != nil {
		if err := update.Filters.Validate(); err != nil {
			return err
		}
	}
	return o.sender.Send(ctx, guildID, update)
}

func (o Operations) Mixer(ctx context.Context, guildID domain.GuildID, update domain.MixerUpdate) error {
	return o.sender.Send(ctx, guildID, update)
}

// Destroy removes the guild's player from the node. cleanup nil leaves the node's default.
func (o Operations) Destroy(ctx context.Context, guildID domain.GuildID, cleanup *bool) error {
	return o.sender.Send(ctx, guildID, domain.Destroy{Cleanup: cleanup})
}
