package service

import (
	"context"
	"time"

	"myandesite/helpers"
	"myandesite/interfaces"
)

// timeProvider implements interfaces.TimeProvider with an injected clock and a context-aware timer sleep.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
//
// Called from cmd/main and from NewSession when no clock is configured.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}

// Sleep blocks for d or until ctx is done. A non-positive d returns immediately (after checking ctx).
func (t *timeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
