package service

import (
	"context"
	"sync"
	"time"

	"myandesite/domain"
)

// EventHub fans events out to subscribers. Dispatch calls every subscriber synchronously, in
// subscription order, on the dispatching goroutine; events from one goroutine therefore arrive in the
// order they were dispatched. Subscribers may subscribe/unsubscribe from inside a callback.
type EventHub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

type subscription struct {
	id uint64
	fn func(domain.Event)
}

// NewEventHub creates an empty hub.
func NewEventHub() *EventHub {
	return &EventHub{}
}

// Subscribe registers fn and returns a function that removes it. Calling the returned function more than once is a no-op.
func (h *EventHub) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, fn: fn})
	h.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *EventHub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers evt to the subscribers registered at the time of the call.
func (h *EventHub) Dispatch(evt domain.Event) {
	h.mu.RLock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()
	for _, s := range subs {
		s.fn(evt)
	}
}

// Waiter receives the first event accepted by the match function given to Expect.
type Waiter struct {
	ch          chan domain.Event
	unsubscribe func()
}

// Expect registers a one-shot subscription immediately, so an answer that arrives before Wait is
// called is not lost. Callers must Wait or Cancel.
func (h *EventHub) Expect(match func(domain.Event) bool) *Waiter {
	w := &Waiter{ch: make(chan domain.Event, 1)}
	var once sync.Once
	w.unsubscribe = h.Subscribe(func(evt domain.Event) {
		if !match(evt) {
			return
		}
		once.Do(func() {
			w.ch <- evt
		})
	})
	return w
}

// Wait returns the matched event, or (nil, false) when timeout (if > 0) or ctx expire first.
// The subscription is removed in every case.
func (w *Waiter) Wait(ctx context.Context, timeout time.Duration) (domain.Event, bool) {
	defer w.unsubscribe()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	select {
	case evt := <-w.ch:
		return evt, true
	case <-ctx.Done():
		return nil, false
	}
}

// Cancel removes the subscription without waiting.
func (w *Waiter) Cancel() {
	w.unsubscribe()
}

// matchReceive builds an Expect matcher for a ReceiveEvent carrying op (and guildID, when given).
func matchReceive(op string, guildID *domain.GuildID) func(domain.Event) bool {
	return func(evt domain.Event) bool {
		re, ok := evt.(domain.ReceiveEvent)
		if !ok || re.Operation.Op() != op {
			return false
		}
		if guildID == nil {
			return true
		}
		scoped, ok := re.Operation.(domain.GuildScoped)
		return ok && scoped.Guild() == *guildID
	}
}
