package service

import (
	"context"
	"sync"

	"myandesite/domain"
	"myandesite/interfaces"
)

// MemoryState is the in-process StateHandler. Get returns copies; callers cannot mutate the store.
type MemoryState struct {
	mu     sync.RWMutex
	guilds map[domain.GuildID]*domain.PlayerState
}

var _ interfaces.StateHandler = (*MemoryState)(nil)

func NewMemoryState() *MemoryState {
	return &MemoryState{guilds: make(map[domain.GuildID]*domain.PlayerState)}
}

func (m *MemoryState) entry(guildID domain.GuildID) *domain.PlayerState {
	s, ok := m.guilds[guildID]
	if !ok {
		s = &domain.PlayerState{GuildID: guildID}
		m.guilds[guildID] = s
	}
	return s
}

func (m *MemoryState) HandlePlayerUpdate(_ context.Context, update domain.PlayerUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	player := update.State
	m.entry(update.GuildID).Player = &player
	return nil
}

func (m *MemoryState) HandleEvent(_ context.Context, event domain.AndesiteEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(event.Guild()).ApplyEvent(event)
	return nil
}

func (m *MemoryState) HandleVoiceServerUpdate(_ context.Context, guildID domain.GuildID, update domain.VoiceServerUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(guildID).VoiceServerUpdate = &update
	return nil
}

func (m *MemoryState) Get(_ context.Context, guildID domain.GuildID) (*domain.PlayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.guilds[guildID]
	if !ok {
		return nil, nil
	}
	out := *s
	if s.Player != nil {
		p := *s.Player
		out.Player = &p
	}
	if s.VoiceServerUpdate != nil {
		v := *s.VoiceServerUpdate
		out.VoiceServerUpdate = &v
	}
	return &out, nil
}

func (m *MemoryState) Delete(_ context.Context, guildID domain.GuildID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.guilds, guildID)
	return nil
}

// Guilds returns the guilds with recorded state.
func (m *MemoryState) Guilds() []domain.GuildID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.GuildID, 0, len(m.guilds))
	for id := range m.guilds {
		out = append(out, id)
	}
	return out
}
