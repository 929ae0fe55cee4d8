package service

import (
	"context"
	"errors"
	"net"
	"sync"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// RESTPool spreads REST requests over several nodes in round-robin order. A node whose request timed
// out (while the caller's context was still alive) is dropped and the request is retried on the next one.
type RESTPool struct {
	logger log.Logger

	mu      sync.Mutex
	clients []interfaces.RESTClient
	rr      int
}

var _ interfaces.RESTClient = (*RESTPool)(nil)

// NewRESTPool creates a pool over clients. Panics on nil logger.
func NewRESTPool(clients []interfaces.RESTClient, logger log.Logger) *RESTPool {
	return &RESTPool{
		logger:  log.With(helpers.NilPanic(logger, "service.rest_pool.go: logger is required"), "component", "rest_pool"),
		clients: append([]interfaces.RESTClient(nil), clients...),
	}
}

func (p *RESTPool) Name() string { return "rest-pool" }

// Add appends c to the rotation.
func (p *RESTPool) Add(c interfaces.RESTClient) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clients = append(p.clients, c)
}

// Remove drops c; returns false when c was not in the pool.
func (p *RESTPool) Remove(c interfaces.RESTClient) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.clients {
		if p.clients[i] == c {
			p.clients = append(p.clients[:i:i], p.clients[i+1:]...)
			if p.rr >= len(p.clients) {
				p.rr = 0
			}
			return true
		}
	}
	return false
}

// Clients returns the clients in rotation order.
func (p *RESTPool) Clients() []interfaces.RESTClient {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interfaces.RESTClient(nil), p.clients...)
}

// Next returns the next client in round-robin order, or *PoolEmptyError when there is none.
func (p *RESTPool) Next() (interfaces.RESTClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.clients) == 0 {
		return nil, &PoolEmptyError{}
	}
	idx := p.rr % len(p.clients)
	p.rr = (idx + 1) % len(p.clients)
	return p.clients[idx], nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// withClient runs fn on the next client until one answers without timing out.
func withClient[T any](ctx context.Context, p *RESTPool, fn func(interfaces.RESTClient) (T, error)) (T, error) {
	for {
		c, err := p.Next()
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := fn(c)
		if err != nil && isTimeout(err) && ctx.Err() == nil {
			level.Warn(p.logger).Log("msg", "rest client timed out, removing it", "node", c.Name(), "err", err)
			p.Remove(c)
			continue
		}
		return v, err
	}
}

func (p *RESTPool) GetStats(ctx context.Context) (*domain.Stats, error) {
	return withClient(ctx, p, func(c interfaces.RESTClient) (*domain.Stats, error) {
		return c.GetStats(ctx)
	})
}

func (p *RESTPool) LoadTracks(ctx context.Context, identifier string) (*domain.LoadedTrack, error) {
	return withClient(ctx, p, func(c interfaces.RESTClient) (*domain.LoadedTrack, error) {
		return c.LoadTracks(ctx, identifier)
	})
}

// LoadTracksSafe loads identifier without search prefix interpretation.
func (p *RESTPool) LoadTracksSafe(ctx context.Context, identifier string) (*domain.LoadedTrack, error) {
	return p.LoadTracks(ctx, domain.RawIdentifier(identifier))
}

// SearchTracks searches query with searcher.
func (p *RESTPool) SearchTracks(ctx context.Context, searcher domain.Searcher, query string) (*domain.LoadedTrack, error) {
	return p.LoadTracks(ctx, domain.SearchIdentifier(searcher, query))
}

func (p *RESTPool) DecodeTrack(ctx context.Context, track string) (*domain.TrackInfo, error) {
	return withClient(ctx, p, func(c interfaces.RESTClient) (*domain.TrackInfo, error) {
		return c.DecodeTrack(ctx, track)
	})
}

func (p *RESTPool) DecodeTracks(ctx context.Context, tracks []string) ([]domain.TrackInfo, error) {
	return withClient(ctx, p, func(c interfaces.RESTClient) ([]domain.TrackInfo, error) {
		return c.DecodeTracks(ctx, tracks)
	})
}
