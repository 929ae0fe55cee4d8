package handlers

import (
	"context"
	"sync"
	"time"

	"myandesite/domain"
	"myandesite/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Connectivity reports whether at least one node is usable.
type Connectivity interface {
	Connected() bool
}

// HealthReporter mirrors the pool's connectivity into a gRPC health server: SERVING while any node is
// connected, NOT_SERVING otherwise. The overall status ("") is the one updated.
type HealthReporter struct {
	server *health.Server
	pool   Connectivity
	logger log.Logger

	mu   sync.Mutex
	last grpc_health_v1.HealthCheckResponse_ServingStatus
}

// NewHealthReporter panics on nil server, pool or logger.
func NewHealthReporter(server *health.Server, pool Connectivity, logger log.Logger) *HealthReporter {
	return &HealthReporter{
		server: helpers.NilPanic(server, "handlers.health.go: health server is required"),
		pool:   helpers.NilPanic(pool, "handlers.health.go: pool is required"),
		logger: log.With(helpers.NilPanic(logger, "handlers.health.go: logger is required"), "component", "health"),
		last:   grpc_health_v1.HealthCheckResponse_UNKNOWN,
	}
}

// Update sets the status from the pool's current connectivity and returns it.
func (r *HealthReporter) Update() grpc_health_v1.HealthCheckResponse_ServingStatus {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if r.pool.Connected() {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if status != r.last {
		level.Info(r.logger).Log("msg", "health status changed", "from", r.last, "to", status)
		r.last = status
	}
	r.server.SetServingStatus("", status)
	return status
}

// OnEvent updates the status on connects and disconnects; pass it to Pool.Subscribe.
func (r *HealthReporter) OnEvent(evt domain.Event) {
	switch evt.(type) {
	case domain.ConnectEvent, domain.DisconnectEvent, domain.ClientAddEvent, domain.ClientRemoveEvent:
		r.Update()
	}
}

// Run updates the status every interval until ctx is done, then reports NOT_SERVING.
func (r *HealthReporter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	r.Update()
	for {
		select {
		case <-ctx.Done():
			r.server.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
			return
		case <-ticker.C:
			r.Update()
		}
	}
}
