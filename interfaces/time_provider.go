package interfaces

import (
	"context"
	"time"
)

// TimeProvider supplies the current time and the backoff sleep of connect attempts.
// Injected so tests can use a fixed clock and record backoff delays instead of waiting.
//
// Constructed in cmd/main as service.NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; fixed in tests). Used for ping round trips and state timestamps.
	Now() time.Time

	// Sleep waits for d or until ctx is done; returns ctx.Err() in the latter case.
	// Called from service.Session between failed connect attempts.
	Sleep(ctx context.Context, d time.Duration) error
}
