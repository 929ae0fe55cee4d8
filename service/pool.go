package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

// PoolConfig configures a Pool. Zero values: DefaultScoringFunc(DefaultRegionComparator), a fresh
// MemoryState, no state replay on migration, uniform random tie-break.
type PoolConfig struct {
	Scoring      ScoringFunc
	StateHandler interfaces.StateHandler
	// ReplayState makes PullClient load each migrated guild's last state onto its new client.
	ReplayState bool
	// Pick returns a uniformly random index in [0, n); replaceable for tests.
	Pick func(n int) int
}

// member is one client of the pool with its event forwarding subscription.
type member struct {
	client      interfaces.NodeClient
	unsubscribe func()
}

// Pool routes guilds to member clients. A guild stays on the client it was assigned to until that
// client is removed, pulled or found closed. Events of every member are re-emitted on the pool.
//
// Fields: scoring, state (shared by all members), replay, pick, logger, hub; under mu: members (in
// join order), guilds (guild → client), regions (guild → region hint), closed.
type Pool struct {
	Operations

	scoring ScoringFunc
	state   interfaces.StateHandler
	replay  bool
	pick    func(n int) int
	logger  log.Logger
	hub     *EventHub

	mu      sync.RWMutex
	members []*member
	guilds  map[domain.GuildID]interfaces.NodeClient
	regions map[domain.GuildID]string
	closed  bool
}

var _ interfaces.Sendable = (*Pool)(nil)

// NewPool creates an empty pool. Panics on nil logger.
//
// Called from cmd/main with one client per configured node, and from the scenarios.
func NewPool(cfg PoolConfig, logger log.Logger) *Pool {
	p := &Pool{
		scoring: cfg.Scoring,
		state:   cfg.StateHandler,
		replay:  cfg.ReplayState,
		pick:    cfg.Pick,
		logger:  log.With(helpers.NilPanic(logger, "service.pool.go: logger is required"), "component", "pool"),
		hub:     NewEventHub(),
		guilds:  make(map[domain.GuildID]interfaces.NodeClient),
		regions: make(map[domain.GuildID]string),
	}
	if p.scoring == nil {
		p.scoring = DefaultScoringFunc(DefaultRegionComparator)
	}
	if p.state == nil {
		p.state = NewMemoryState()
	}
	if p.pick == nil {
		p.pick = rand.Intn
	}
	p.Operations = Operations{sender: p}
	return p
}

// StateHandler returns the handler shared by all members.
func (p *Pool) StateHandler() interfaces.StateHandler { return p.state }

// Subscribe registers fn for the events of every member plus ClientAddEvent and ClientRemoveEvent.
func (p *Pool) Subscribe(fn func(domain.Event)) func() { return p.hub.Subscribe(fn) }

func (p *Pool) indexLocked(c interfaces.NodeClient) int {
	for i, m := range p.members {
		if m.client == c {
			return i
		}
	}
	return -1
}

// AddClient makes c a member: its events are forwarded to the pool's subscribers and its state
// handler becomes the pool's.
//
// Returns: nil; ErrPoolClosed after Close; ErrClientAlreadyInPool when c is a member.
func (p *Pool) AddClient(c interfaces.NodeClient) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	if p.indexLocked(c) >= 0 {
		p.mu.Unlock()
		return ErrClientAlreadyInPool
	}
	c.SetStateHandler(p.state)
	p.members = append(p.members, &member{client: c, unsubscribe: c.Subscribe(p.hub.Dispatch)})
	p.mu.Unlock()

	level.Info(p.logger).Log("msg", "client added", "node", c.Name())
	p.hub.Dispatch(domain.ClientAddEvent{EventBaseNode: domain.EventBaseNode{Node: c.Name()}})
	return nil
}

// RemoveClient drops c from the pool. Its guilds become unassigned; nothing is migrated (see PullClient).
//
// Returns: nil; ErrClientNotInPool when c is not a member.
func (p *Pool) RemoveClient(c interfaces.NodeClient) error {
	_, err := p.detach(c)
	return err
}

// detach removes c with all its guild mappings and returns the guilds it owned, sorted.
func (p *Pool) detach(c interfaces.NodeClient) ([]domain.GuildID, error) {
	p.mu.Lock()
	i := p.indexLocked(c)
	if i < 0 {
		p.mu.Unlock()
		return nil, ErrClientNotInPool
	}
	m := p.members[i]
	p.members = append(p.members[:i:i], p.members[i+1:]...)
	var guilds []domain.GuildID
	for g, owner := range p.guilds {
		if owner == c {
			guilds = append(guilds, g)
			delete(p.guilds, g)
		}
	}
	p.mu.Unlock()

	sort.Slice(guilds, func(a, b int) bool { return guilds[a] < guilds[b] })
	m.unsubscribe()
	c.SetStateHandler(nil)
	level.Info(p.logger).Log("msg", "client removed", "node", c.Name(), "guilds", len(guilds))
	p.hub.Dispatch(domain.ClientRemoveEvent{EventBaseNode: domain.EventBaseNode{Node: c.Name()}, Guilds: guilds})
	return guilds, nil
}

// PullClient removes c and moves each of its guilds to another member, concurrently. Per guild: the
// player on c is destroyed when c is still connected (failures are only logged), a new client is
// assigned and, with ReplayState, the guild's last state is loaded onto it.
//
// Returns the guilds that were detached from c, sorted, also when some migrations failed, and: nil;
// ErrClientNotInPool; otherwise the first migration error (*PoolEmptyError when no member is left).
// Guilds that failed stay unassigned and are placed on their next send.
//
// Called from the admin API (POST /v1/nodes/:name/pull) and the pool_migration scenario.
func (p *Pool) PullClient(ctx context.Context, c interfaces.NodeClient) ([]domain.GuildID, error) {
	guilds, err := p.detach(c)
	if err != nil {
		return nil, err
	}
	var g errgroup.Group
	for _, guildID := range guilds {
		guildID := guildID
		g.Go(func() error {
			if err := p.migrate(ctx, c, guildID); err != nil {
				level.Error(p.logger).Log("msg", "guild migration failed", "guild_id", guildID, "from", c.Name(), "err", err)
				return fmt.Errorf("migrate guild %s: %w", guildID, err)
			}
			return nil
		})
	}
	return guilds, g.Wait()
}

func (p *Pool) migrate(ctx context.Context, from interfaces.NodeClient, guildID domain.GuildID) error {
	state, err := p.state.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("read player state: %w", err)
	}
	if from.Connected() {
		if err := from.Send(ctx, guildID, domain.Destroy{}); err != nil {
			level.Warn(p.logger).Log("msg", "could not destroy player on old node", "guild_id", guildID, "node", from.Name(), "err", err)
		}
	}
	to, err := p.AssignClient(ctx, guildID)
	if err != nil {
		return err
	}
	level.Info(p.logger).Log("msg", "guild migrated", "guild_id", guildID, "from", from.Name(), "to", to.Name())
	if !p.replay || state == nil {
		return nil
	}
	return to.LoadPlayerState(ctx, *state)
}

// GetClient returns the client assigned to guildID, or nil. A mapping to a closed client is dropped
// and reported as nil.
func (p *Pool) GetClient(guildID domain.GuildID) interfaces.NodeClient {
	p.mu.RLock()
	c := p.guilds[guildID]
	p.mu.RUnlock()
	if c == nil || !c.Closed() {
		return c
	}
	p.mu.Lock()
	if p.guilds[guildID] == c {
		delete(p.guilds, guildID)
	}
	p.mu.Unlock()
	level.Debug(p.logger).Log("msg", "dropped guild mapping to closed client", "guild_id", guildID, "node", c.Name())
	return nil
}

// AssignClient returns the client of guildID, assigning one when there is none. All members that are
// not closed are scored concurrently; the highest score wins and equal best scores are broken uniformly
// at random.
//
// Returns: (client, nil); (nil, ErrPoolClosed); (nil, *PoolEmptyError) when no member can take the guild;
// (nil, err) when scoring failed.
func (p *Pool) AssignClient(ctx context.Context, guildID domain.GuildID) (interfaces.NodeClient, error) {
	for {
		if c := p.GetClient(guildID); c != nil {
			return c, nil
		}
		inputs, err := p.candidates(guildID)
		if err != nil {
			return nil, err
		}
		chosen, err := p.choose(ctx, inputs)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		if existing := p.guilds[guildID]; existing != nil {
			// assigned concurrently; GetClient on the next round decides whether it is usable
			p.mu.Unlock()
			continue
		}
		if p.indexLocked(chosen) < 0 {
			// removed while scoring
			p.mu.Unlock()
			continue
		}
		p.guilds[guildID] = chosen
		p.mu.Unlock()
		level.Debug(p.logger).Log("msg", "guild assigned", "guild_id", guildID, "node", chosen.Name())
		return chosen, nil
	}
}

// candidates snapshots the scoring inputs of every member that is not closed.
func (p *Pool) candidates(guildID domain.GuildID) ([]ScoringInput, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrPoolClosed
	}
	load := make(map[interfaces.NodeClient][]domain.GuildID, len(p.members))
	for g, c := range p.guilds {
		load[c] = append(load[c], g)
	}
	inputs := make([]ScoringInput, 0, len(p.members))
	for _, m := range p.members {
		if m.client.Closed() {
			continue
		}
		inputs = append(inputs, ScoringInput{
			Client:  m.client,
			Guilds:  load[m.client],
			GuildID: guildID,
			Region:  p.regions[guildID],
		})
	}
	if len(inputs) == 0 {
		return nil, &PoolEmptyError{GuildID: guildID}
	}
	return inputs, nil
}

// choose scores inputs concurrently and picks among the best at random.
func (p *Pool) choose(ctx context.Context, inputs []ScoringInput) (interfaces.NodeClient, error) {
	scores := make([]domain.Score, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			s, err := p.scoring(gctx, in)
			if err != nil {
				return fmt.Errorf("score %s: %w", in.Client.Name(), err)
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := []int{0}
	for i := 1; i < len(scores); i++ {
		switch scores[i].Compare(scores[best[0]]) {
		case 1:
			best = append(best[:0], i)
		case 0:
			best = append(best, i)
		}
	}
	return inputs[best[p.pick(len(best))]].Client, nil
}

// SetGuildRegion records the voice region of a guild for region-aware scoring of its next assignment.
func (p *Pool) SetGuildRegion(guildID domain.GuildID, region string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if region == "" {
		delete(p.regions, guildID)
		return
	}
	p.regions[guildID] = region
}

// Send delivers op through the guild's client, assigning one first when needed. A voice-server-update
// also records the region of its endpoint as the guild's region hint.
//
// Returns: the client's Send error; ErrPoolClosed; *PoolEmptyError when there is no usable member.
func (p *Pool) Send(ctx context.Context, guildID domain.GuildID, op domain.SendOperation) error {
	if vsu, ok := op.(domain.VoiceServerUpdate); ok {
		if region := domain.RegionFromEndpoint(vsu.Event.Endpoint); region != "" {
			p.SetGuildRegion(guildID, region)
		}
	}
	c, err := p.AssignClient(ctx, guildID)
	if err != nil {
		return err
	}
	return c.Send(ctx, guildID, op)
}

// Clients returns the members in join order.
func (p *Pool) Clients() []interfaces.NodeClient {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]interfaces.NodeClient, len(p.members))
	for i, m := range p.members {
		out[i] = m.client
	}
	return out
}

// ClientByName returns the member called name, or nil.
func (p *Pool) ClientByName(name string) interfaces.NodeClient {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, m := range p.members {
		if m.client.Name() == name {
			return m.client
		}
	}
	return nil
}

// GuildsOf returns the guilds assigned to c, sorted.
func (p *Pool) GuildsOf(c interfaces.NodeClient) []domain.GuildID {
	p.mu.RLock()
	var out []domain.GuildID
	for g, owner := range p.guilds {
		if owner == c {
			out = append(out, g)
		}
	}
	p.mu.RUnlock()
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// Connected reports whether any member is connected.
func (p *Pool) Connected() bool {
	for _, c := range p.Clients() {
		if c.Connected() {
			return true
		}
	}
	return false
}

// Connect connects every member concurrently. Members that are already connected are skipped.
// Returns the joined errors of the members that failed.
func (p *Pool) Connect(ctx context.Context) error {
	clients := p.Clients()
	errs := make([]error, len(clients))
	var g errgroup.Group
	for i, c := range clients {
		i, c := i, c
		g.Go(func() error {
			if err := c.Connect(ctx); err != nil && !errors.Is(err, ErrAlreadyConnected) {
				errs[i] = fmt.Errorf("connect %s: %w", c.Name(), err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Close closes every member concurrently and the pool itself. Idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	members := p.members
	p.members = nil
	p.guilds = make(map[domain.GuildID]interfaces.NodeClient)
	p.mu.Unlock()

	var g errgroup.Group
	for _, m := range members {
		m.unsubscribe()
		g.Go(m.client.Close)
	}
	return g.Wait()
}
