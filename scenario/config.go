package scenario

import (
	"context"
	"fmt"
	"io"
	"time"

	"myandesite/domain"
	"myandesite/interfaces"
	"myandesite/service"

	"github.com/go-kit/log"
)

// Config holds what scenarios need to reach the nodes. GuildID is the guild used for requests; it does
// not have to be a guild the bot is in. Out receives the progress report.
type Config struct {
	Nodes          []domain.NodeConfig
	UserID         domain.UserID
	GuildID        domain.GuildID
	RequestTimeout time.Duration
	Dialer         interfaces.WebSocketDialer
	Clock          interfaces.TimeProvider
	Logger         log.Logger
	Out            io.Writer
}

func (c *Config) newClient(node domain.NodeConfig) *service.WebSocketClient {
	return service.NewWebSocketClient(service.ClientConfig{
		Node:           node,
		UserID:         c.UserID,
		RequestTimeout: c.RequestTimeout,
	}, c.Dialer, c.Clock, c.Logger)
}

func (c *Config) report(format string, args ...any) {
	if c.Out != nil {
		fmt.Fprintf(c.Out, format+"\n", args...)
	}
}

// eventTap buffers the events of a client or pool so a scenario can wait for them in order.
type eventTap struct {
	events      chan domain.Event
	unsubscribe func()
}

func tap(src interfaces.EventSource) *eventTap {
	t := &eventTap{events: make(chan domain.Event, 256)}
	t.unsubscribe = src.Subscribe(func(evt domain.Event) {
		select {
		case t.events <- evt:
		default:
		}
	})
	return t
}

// next returns the next event matching match, skipping the others.
func (t *eventTap) next(ctx context.Context, what string, match func(domain.Event) bool) (domain.Event, error) {
	for {
		select {
		case evt := <-t.events:
			if match(evt) {
				return evt, nil
			}
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", what, ctx.Err())
		}
	}
}

func isConnect(evt domain.Event) bool {
	_, ok := evt.(domain.ConnectEvent)
	return ok
}

func isConnectionID(evt domain.Event) bool {
	r, ok := evt.(domain.ReceiveEvent)
	if !ok {
		return false
	}
	_, ok = r.Operation.(domain.ConnectionUpdate)
	return ok
}

func connectionIDOf(evt domain.Event) string {
	return evt.(domain.ReceiveEvent).Operation.(domain.ConnectionUpdate).ID
}
