package myredis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache is an in-memory interfaces.Cache recording the TTL of each write.
type mapCache struct {
	mu       sync.Mutex
	items    map[string]domain.PlayerState
	ttls     map[string]int
	writes   int
	writeErr error
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string]domain.PlayerState{}, ttls: map[string]int{}}
}

func (m *mapCache) WriteValue(_ context.Context, key string, item domain.PlayerState, ttlMs int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.items[key], m.ttls[key] = item, ttlMs
	m.writes++
	return nil
}

func (m *mapCache) ReadValue(_ context.Context, key string) (domain.PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	if !ok {
		return domain.PlayerState{}, service.NewEntityNotFoundError("Entity not found", nil)
	}
	return item, nil
}

func (m *mapCache) DeleteValue(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *mapCache) ListAllValues(context.Context) ([]domain.PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}
	out := make([]domain.PlayerState, 0, len(m.items))
	for _, v := range m.items {
		out = append(out, v)
	}
	return out, nil
}

func startEvent(guild domain.GuildID, track string) domain.TrackStartEvent {
	return domain.TrackStartEvent{EventBase: domain.EventBase{Type: "TrackStartEvent", GuildID: guild}, Track: track}
}

func endEvent(guild domain.GuildID, track string) domain.TrackEndEvent {
	return domain.TrackEndEvent{EventBase: domain.EventBase{Type: "TrackEndEvent", GuildID: guild}, Track: track, Reason: "FINISHED"}
}

func TestNewPlayerStateStore_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.myredis.player_state.go: cache is required", func() {
		NewPlayerStateStore(nil, time.Hour)
	})
}

func TestPlayerStateStore(t *testing.T) {
	ctx := context.Background()
	cache := newMapCache()
	store := NewPlayerStateStore(cache, time.Minute)
	const guild = domain.GuildID(42)

	got, err := store.Get(ctx, guild)
	require.NoError(t, err)
	assert.Nil(t, got, "unknown guild")

	vsu := domain.VoiceServerUpdate{SessionID: "sess", Event: domain.VoiceServerEvent{Token: "tok", GuildID: guild, Endpoint: "eu-west123.discord.media:443"}}
	require.NoError(t, store.HandleVoiceServerUpdate(ctx, guild, vsu))
	require.NoError(t, store.HandlePlayerUpdate(ctx, domain.PlayerUpdate{GuildID: guild, State: domain.Player{Paused: true, Volume: 0.5, Position: helpers.Ptr(domain.Duration(3 * time.Second))}}))
	require.NoError(t, store.HandleEvent(ctx, startEvent(guild, "track-a")))

	got, err = store.Get(ctx, guild)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, guild, got.GuildID)
	assert.Equal(t, "track-a", got.Track)
	assert.Equal(t, &vsu, got.VoiceServerUpdate)
	require.NotNil(t, got.Player)
	assert.True(t, got.Player.Paused)
	assert.Equal(t, 60000, cache.ttls[guild.String()])

	t.Run("end_of_other_track_is_ignored", func(t *testing.T) {
		before := cache.writes
		require.NoError(t, store.HandleEvent(ctx, endEvent(guild, "track-b")))
		assert.Equal(t, before, cache.writes, "unchanged state is not written")
		got, _ := store.Get(ctx, guild)
		assert.Equal(t, "track-a", got.Track)
	})
	t.Run("end_clears_track", func(t *testing.T) {
		require.NoError(t, store.HandleEvent(ctx, endEvent(guild, "track-a")))
		got, _ := store.Get(ctx, guild)
		assert.Empty(t, got.Track)
		assert.NotNil(t, got.VoiceServerUpdate, "voice state survives")
	})
	t.Run("states_and_delete", func(t *testing.T) {
		states, err := store.States(ctx)
		require.NoError(t, err)
		assert.Len(t, states, 1)
		require.NoError(t, store.Delete(ctx, guild))
		states, err = store.States(ctx)
		require.NoError(t, err)
		assert.Empty(t, states)
	})
	t.Run("write_error_is_returned", func(t *testing.T) {
		cache.writeErr = service.NewInternalServerError("Redis write key error", errors.New("down"))
		err := store.HandleEvent(ctx, startEvent(7, "x"))
		assert.True(t, service.IsAPIError(err, service.ErrInternalServerError))
	})
}

func TestPlayerStateStore_Redis(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t, PlayerStatePrefix)
	store := NewPlayerStateStore(NewPlayerStateCache(client), DefaultPlayerStateTTL)
	const guild = domain.GuildID(549904277108424715)

	require.NoError(t, store.HandleVoiceServerUpdate(ctx, guild, domain.VoiceServerUpdate{SessionID: "sess", Event: domain.VoiceServerEvent{Token: "tok", GuildID: guild, Endpoint: "us-east1.discord.media"}}))
	require.NoError(t, store.HandleEvent(ctx, startEvent(guild, "track-a")))
	require.NoError(t, store.HandlePlayerUpdate(ctx, domain.PlayerUpdate{GuildID: guild, State: domain.Player{Volume: 0.8}}))

	raw, err := client.Get(ctx, PlayerStatePrefix+":"+guild.String()).Result()
	require.NoError(t, err)
	assert.Contains(t, raw, `"guildId":"549904277108424715"`)

	// a second store (another process) sees the same state
	other := NewPlayerStateStore(NewPlayerStateCache(client), DefaultPlayerStateTTL)
	got, err := other.Get(ctx, guild)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "track-a", got.Track)
	assert.Equal(t, "sess", got.VoiceServerUpdate.SessionID)
	assert.InDelta(t, 0.8, float64(got.Player.Volume), 1e-9)

	require.NoError(t, other.Delete(ctx, guild))
	got, err = store.Get(ctx, guild)
	require.NoError(t, err)
	assert.Nil(t, got)
}
