package service

import (
	"context"
	"testing"

	"myandesite/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryState(t *testing.T) {
	ctx := context.Background()
	guild := domain.GuildID(42)

	t.Run("unknown_guild", func(t *testing.T) {
		m := NewMemoryState()
		s, err := m.Get(ctx, guild)
		require.NoError(t, err)
		assert.Nil(t, s)
	})
	t.Run("collects_state", func(t *testing.T) {
		m := NewMemoryState()
		vsu := domain.VoiceServerUpdate{SessionID: "sess", Event: domain.VoiceServerEvent{Token: "tok", GuildID: guild, Endpoint: "eu-west12.discord.media:443"}}
		require.NoError(t, m.HandleVoiceServerUpdate(ctx, guild, vsu))
		require.NoError(t, m.HandleEvent(ctx, domain.TrackStartEvent{EventBase: domain.EventBase{GuildID: guild}, Track: "QAAA"}))
		pos := domain.Duration(30_000_000_000)
		require.NoError(t, m.HandlePlayerUpdate(ctx, domain.PlayerUpdate{GuildID: guild, State: domain.Player{Position: &pos, Volume: 0.5}}))

		s, err := m.Get(ctx, guild)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, guild, s.GuildID)
		assert.Equal(t, "QAAA", s.Track)
		assert.Equal(t, &vsu, s.VoiceServerUpdate)
		require.NotNil(t, s.Player)
		assert.Equal(t, domain.Volume(0.5), s.Player.Volume)
		assert.Equal(t, []domain.GuildID{guild}, m.Guilds())
	})
	t.Run("get_returns_copy", func(t *testing.T) {
		m := NewMemoryState()
		require.NoError(t, m.HandlePlayerUpdate(ctx, domain.PlayerUpdate{GuildID: guild, State: domain.Player{Paused: true}}))
		s, _ := m.Get(ctx, guild)
		s.Player.Paused = false
		s.Track = "changed"
		again, _ := m.Get(ctx, guild)
		assert.True(t, again.Player.Paused)
		assert.Empty(t, again.Track)
	})
	t.Run("track_end_clears", func(t *testing.T) {
		m := NewMemoryState()
		require.NoError(t, m.HandleEvent(ctx, domain.TrackStartEvent{EventBase: domain.EventBase{GuildID: guild}, Track: "QAAA"}))
		require.NoError(t, m.HandleEvent(ctx, domain.TrackEndEvent{EventBase: domain.EventBase{GuildID: guild}, Track: "QAAA", Reason: domain.TrackEndFinished}))
		s, _ := m.Get(ctx, guild)
		assert.Empty(t, s.Track)
	})
	t.Run("delete", func(t *testing.T) {
		m := NewMemoryState()
		require.NoError(t, m.HandleVoiceServerUpdate(ctx, guild, domain.VoiceServerUpdate{SessionID: "s"}))
		require.NoError(t, m.Delete(ctx, guild))
		s, _ := m.Get(ctx, guild)
		assert.Nil(t, s)
		assert.Empty(t, m.Guilds())
	})
}
