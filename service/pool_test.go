package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"myandesite/domain"
	"myandesite/interfaces"
	"myandesite/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a NodeClientMock with switchable connectivity and a captured event subscriber.
type fakeNode struct {
	*mock.NodeClientMock
	connected atomic.Bool
	closed    atomic.Bool
	region    string

	mu           sync.Mutex
	subscriber   func(domain.Event)
	unsubscribed bool
	handler      interfaces.StateHandler
}

func newFakeNode(name, region string) *fakeNode {
	n := &fakeNode{region: region}
	n.connected.Store(true)
	n.NodeClientMock = &mock.NodeClientMock{
		NameFunc:       func() string { return name },
		NodeRegionFunc: func() string { return n.region },
		ConnectedFunc:  func() bool { return n.connected.Load() },
		ClosedFunc:     func() bool { return n.closed.Load() },
		CloseFunc: func() error {
			n.closed.Store(true)
			return nil
		},
		SubscribeFunc: func(fn func(domain.Event)) func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			n.subscriber = fn
			return func() {
				n.mu.Lock()
				defer n.mu.Unlock()
				n.unsubscribed = true
			}
		},
		SetStateHandlerFunc: func(h interfaces.StateHandler) {
			n.mu.Lock()
			defer n.mu.Unlock()
			n.handler = h
		},
	}
	return n
}

func (n *fakeNode) emit(evt domain.Event) {
	n.mu.Lock()
	fn := n.subscriber
	n.mu.Unlock()
	fn(evt)
}

func newTestPool(cfg PoolConfig) *Pool {
	if cfg.Pick == nil {
		cfg.Pick = func(int) int { return 0 }
	}
	return NewPool(cfg, log.NewNopLogger())
}

func TestPool_Membership(t *testing.T) {
	p := newTestPool(PoolConfig{})
	a := newFakeNode("a", "")

	var events []domain.Event
	p.Subscribe(func(evt domain.Event) { events = append(events, evt) })

	require.NoError(t, p.AddClient(a))
	assert.ErrorIs(t, p.AddClient(a), ErrClientAlreadyInPool)
	assert.Same(t, p.StateHandler(), a.handler, "members share the pool state handler")

	a.emit(domain.ConnectEvent{EventBaseNode: domain.EventBaseNode{Node: "a"}})

	_, err := p.AssignClient(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, p.RemoveClient(a))
	assert.ErrorIs(t, p.RemoveClient(a), ErrClientNotInPool)
	assert.True(t, a.unsubscribed)
	assert.Nil(t, a.handler)
	assert.Nil(t, p.GetClient(1), "removal purges the guild mappings")
	assert.Empty(t, p.Clients())

	require.Len(t, events, 3)
	assert.IsType(t, domain.ClientAddEvent{}, events[0])
	assert.IsType(t, domain.ConnectEvent{}, events[1])
	assert.Equal(t, domain.ClientRemoveEvent{EventBaseNode: domain.EventBaseNode{Node: "a"}, Guilds: []domain.GuildID{1}}, events[2])
}

func TestPool_EmptySend(t *testing.T) {
	p := newTestPool(PoolConfig{})
	err := p.Send(context.Background(), 42, domain.Play{Track: "QAAA"})

	var empty *PoolEmptyError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, domain.GuildID(42), empty.GuildID)
	assert.ErrorIs(t, err, ErrPoolEmpty)

	t.Run("only_closed_members", func(t *testing.T) {
		a := newFakeNode("a", "")
		a.closed.Store(true)
		require.NoError(t, p.AddClient(a))
		assert.ErrorIs(t, p.Send(context.Background(), 42, domain.Stop{}), ErrPoolEmpty)
	})
}

func TestPool_AssignClient(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		p := newTestPool(PoolConfig{Pick: func(n int) int { return n - 1 }})
		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, p.AddClient(newFakeNode(name, "")))
		}
		first, err := p.AssignClient(ctx, 7)
		require.NoError(t, err)
		second, err := p.AssignClient(ctx, 7)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Same(t, first, p.GetClient(7))
	})
	t.Run("connected_beats_disconnected", func(t *testing.T) {
		p := newTestPool(PoolConfig{})
		down, up := newFakeNode("down", ""), newFakeNode("up", "")
		down.connected.Store(false)
		require.NoError(t, p.AddClient(down))
		require.NoError(t, p.AddClient(up))
		c, err := p.AssignClient(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "up", c.Name())
	})
	t.Run("fewer_guilds_wins", func(t *testing.T) {
		p := newTestPool(PoolConfig{})
		a, b := newFakeNode("a", ""), newFakeNode("b", "")
		require.NoError(t, p.AddClient(a))
		require.NoError(t, p.AddClient(b))
		for g := domain.GuildID(1); g <= 4; g++ {
			_, err := p.AssignClient(ctx, g)
			require.NoError(t, err)
		}
		assert.Len(t, p.GuildsOf(a), 2)
		assert.Len(t, p.GuildsOf(b), 2)
	})
	t.Run("region_affinity_from_voice_server_update", func(t *testing.T) {
		p := newTestPool(PoolConfig{})
		eu, us := newFakeNode("eu", "eu-west"), newFakeNode("us", "us-east")
		require.NoError(t, p.AddClient(eu))
		require.NoError(t, p.AddClient(us))

		vsu := domain.VoiceServerUpdate{SessionID: "s", Event: domain.VoiceServerEvent{GuildID: 5, Endpoint: "us-east123.discord.media:443"}}
		require.NoError(t, p.Send(ctx, 5, vsu))
		assert.Equal(t, "us", p.GetClient(5).Name())
		require.Len(t, us.SendCalls(), 1)
		assert.Empty(t, eu.SendCalls())
	})
	t.Run("scoring_error", func(t *testing.T) {
		boom := errors.New("boom")
		p := newTestPool(PoolConfig{Scoring: func(context.Context, ScoringInput) (domain.Score, error) { return nil, boom }})
		require.NoError(t, p.AddClient(newFakeNode("a", "")))
		_, err := p.AssignClient(ctx, 1)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, p.GetClient(1))
	})
	t.Run("closed_client_dropped_lazily", func(t *testing.T) {
		p := newTestPool(PoolConfig{})
		a, b := newFakeNode("a", ""), newFakeNode("b", "")
		require.NoError(t, p.AddClient(a))
		c, err := p.AssignClient(ctx, 1)
		require.NoError(t, err)
		require.Same(t, a, c.(*fakeNode))
		require.NoError(t, p.AddClient(b))

		a.closed.Store(true)
		assert.Nil(t, p.GetClient(1))
		c, err = p.AssignClient(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "b", c.Name())
	})
}

func TestPool_TieBreakIsUniform(t *testing.T) {
	p := NewPool(PoolConfig{
		Scoring: func(context.Context, ScoringInput) (domain.Score, error) { return domain.Score{1}, nil },
	}, log.NewNopLogger())
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, p.AddClient(newFakeNode(name, "")))
	}

	const rounds = 3000
	counts := map[string]int{}
	for g := domain.GuildID(1); g <= rounds; g++ {
		c, err := p.AssignClient(context.Background(), g)
		require.NoError(t, err)
		counts[c.Name()]++
	}
	require.Len(t, counts, 3)
	for name, n := range counts {
		assert.InDelta(t, rounds/3, n, 150, "node %s", name)
	}
}

func TestPool_PullClient(t *testing.T) {
	ctx := context.Background()
	preferA := func(_ context.Context, in ScoringInput) (domain.Score, error) {
		if in.Client.Name() == "a" {
			return domain.Score{1}, nil
		}
		return domain.Score{0}, nil
	}

	t.Run("moves_guilds_and_replays_state", func(t *testing.T) {
		state := NewMemoryState()
		p := newTestPool(PoolConfig{Scoring: preferA, StateHandler: state, ReplayState: true})
		a, b, c := newFakeNode("a", ""), newFakeNode("b", ""), newFakeNode("c", "")
		for _, n := range []*fakeNode{a, b, c} {
			require.NoError(t, p.AddClient(n))
		}
		for g := domain.GuildID(1); g <= 4; g++ {
			_, err := p.AssignClient(ctx, g)
			require.NoError(t, err)
		}
		require.Len(t, p.GuildsOf(a), 4)
		require.NoError(t, state.HandleEvent(ctx, domain.TrackStartEvent{EventBase: domain.EventBase{GuildID: 2}, Track: "QAAA"}))

		moved, err := p.PullClient(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, []domain.GuildID{1, 2, 3, 4}, moved)

		assert.Empty(t, p.GuildsOf(a))
		assert.Len(t, append(p.GuildsOf(b), p.GuildsOf(c)...), 4)
		for g := domain.GuildID(1); g <= 4; g++ {
			owner := p.GetClient(g)
			require.NotNil(t, owner)
			assert.NotEqual(t, "a", owner.Name())
		}

		destroyed := map[domain.GuildID]bool{}
		for _, call := range a.SendCalls() {
			assert.Equal(t, domain.OpDestroy, call.Op.Op())
			destroyed[call.GuildID] = true
		}
		assert.Len(t, destroyed, 4)

		loads := append(b.LoadPlayerStateCalls(), c.LoadPlayerStateCalls()...)
		require.Len(t, loads, 1)
		assert.Equal(t, "QAAA", loads[0].State.Track)
		assert.Equal(t, domain.GuildID(2), loads[0].State.GuildID)
	})
	t.Run("disconnected_node_not_destroyed", func(t *testing.T) {
		p := newTestPool(PoolConfig{Scoring: preferA})
		a, b := newFakeNode("a", ""), newFakeNode("b", "")
		require.NoError(t, p.AddClient(a))
		require.NoError(t, p.AddClient(b))
		_, err := p.AssignClient(ctx, 1)
		require.NoError(t, err)
		a.connected.Store(false)

		moved, err := p.PullClient(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, []domain.GuildID{1}, moved)
		assert.Empty(t, a.SendCalls())
		assert.Empty(t, b.LoadPlayerStateCalls(), "replay disabled")
		assert.Equal(t, "b", p.GetClient(1).Name())
	})
	t.Run("last_member", func(t *testing.T) {
		p := newTestPool(PoolConfig{})
		a := newFakeNode("a", "")
		require.NoError(t, p.AddClient(a))
		_, err := p.AssignClient(ctx, 1)
		require.NoError(t, err)

		moved, err := p.PullClient(ctx, a)
		assert.ErrorIs(t, err, ErrPoolEmpty)
		assert.Equal(t, []domain.GuildID{1}, moved, "reported even when the migration failed")
		moved, err = p.PullClient(ctx, a)
		assert.ErrorIs(t, err, ErrClientNotInPool)
		assert.Nil(t, moved)
	})
}

func TestPool_Lifecycle(t *testing.T) {
	ctx := context.Background()
	p := newTestPool(PoolConfig{})
	a, b := newFakeNode("a", ""), newFakeNode("b", "")
	a.ConnectFunc = func(context.Context) error { return ErrAlreadyConnected }
	b.ConnectFunc = func(context.Context) error { return errors.New("refused") }
	require.NoError(t, p.AddClient(a))
	require.NoError(t, p.AddClient(b))

	err := p.Connect(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect b")
	assert.NotContains(t, err.Error(), "connect a")

	assert.Same(t, b, p.ClientByName("b").(*fakeNode))
	assert.Nil(t, p.ClientByName("x"))
	assert.True(t, p.Connected())

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, a.closed.Load())
	assert.True(t, b.closed.Load())
	assert.ErrorIs(t, p.AddClient(newFakeNode("c", "")), ErrPoolClosed)
	assert.ErrorIs(t, p.Send(ctx, 1, domain.Stop{}), ErrPoolClosed)
}
