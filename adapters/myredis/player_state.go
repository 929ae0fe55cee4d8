package myredis

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"
	"myandesite/service"

	"github.com/go-redis/redis/v8"
)

// PlayerStatePrefix is the key prefix of player states ("player_state:<guild id>").
const PlayerStatePrefix = "player_state"

// DefaultPlayerStateTTL expires states of guilds that stopped producing traffic.
const DefaultPlayerStateTTL = 24 * time.Hour

// PlayerStateStore is an interfaces.StateHandler persisting one JSON document per guild, so another
// process can replay a guild after this one died. Updates are read-modify-write; writes from this
// process are serialised, concurrent writers in other processes for the same guild are last-write-wins.
type PlayerStateStore struct {
	cache interfaces.Cache[domain.PlayerState]
	ttlMs int

	mu sync.Mutex
}

var _ interfaces.StateHandler = (*PlayerStateStore)(nil)

// NewPlayerStateStore stores states in cache; every write refreshes the TTL. ttl <= 0 keeps states forever.
// Panics on nil cache.
func NewPlayerStateStore(cache interfaces.Cache[domain.PlayerState], ttl time.Duration) *PlayerStateStore {
	return &PlayerStateStore{
		cache: helpers.NilPanic(cache, "adapters.myredis.player_state.go: cache is required"),
		ttlMs: int(ttl.Milliseconds()),
	}
}

// NewPlayerStateCache is the redis cache of player states under PlayerStatePrefix.
func NewPlayerStateCache(client redis.UniversalClient) interfaces.Cache[domain.PlayerState] {
	return NewCache[domain.PlayerState](client, PlayerStatePrefix, marshalPlayerState, unmarshalPlayerState)
}

func marshalPlayerState(s domain.PlayerState) ([]byte, error) { return json.Marshal(s) }

func unmarshalPlayerState(b []byte) (domain.PlayerState, error) {
	var s domain.PlayerState
	err := json.Unmarshal(b, &s)
	return s, err
}

// update loads the state of guildID (a fresh one when absent), applies fn and writes it back when fn
// reports a change.
func (s *PlayerStateStore) update(ctx context.Context, guildID domain.GuildID, fn func(*domain.PlayerState) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.cache.ReadValue(ctx, guildID.String())
	if service.IsAPIError(err, service.ErrEntityNotFound) {
		state, err = domain.PlayerState{GuildID: guildID}, nil
	}
	if err != nil {
		return err
	}
	if !fn(&state) {
		return nil
	}
	return s.cache.WriteValue(ctx, guildID.String(), state, s.ttlMs)
}

func (s *PlayerStateStore) HandlePlayerUpdate(ctx context.Context, update domain.PlayerUpdate) error {
	return s.update(ctx, update.GuildID, func(st *domain.PlayerState) bool {
		player := update.State
		st.Player = &player
		return true
	})
}

func (s *PlayerStateStore) HandleEvent(ctx context.Context, event domain.AndesiteEvent) error {
	return s.update(ctx, event.Guild(), func(st *domain.PlayerState) bool {
		return st.ApplyEvent(event)
	})
}

func (s *PlayerStateStore) HandleVoiceServerUpdate(ctx context.Context, guildID domain.GuildID, update domain.VoiceServerUpdate) error {
	return s.update(ctx, guildID, func(st *domain.PlayerState) bool {
		st.VoiceServerUpdate = &update
		return true
	})
}

func (s *PlayerStateStore) Get(ctx context.Context, guildID domain.GuildID) (*domain.PlayerState, error) {
	state, err := s.cache.ReadValue(ctx, guildID.String())
	if service.IsAPIError(err, service.ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *PlayerStateStore) Delete(ctx context.Context, guildID domain.GuildID) error {
	return s.cache.DeleteValue(ctx, guildID.String())
}

// States returns every stored state; an empty slice when there is none.
func (s *PlayerStateStore) States(ctx context.Context) ([]domain.PlayerState, error) {
	states, err := s.cache.ListAllValues(ctx)
	if service.IsAPIError(err, service.ErrEntityNotFound) {
		return []domain.PlayerState{}, nil
	}
	return states, err
}
