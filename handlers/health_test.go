package handlers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"myandesite/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type switchPool struct{ up atomic.Bool }

func (p *switchPool) Connected() bool { return p.up.Load() }

func status(t *testing.T, s *health.Server) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.Status
}

func TestNewHealthReporter_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "handlers.health.go: health server is required", func() {
		NewHealthReporter(nil, &switchPool{}, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "handlers.health.go: pool is required", func() {
		NewHealthReporter(health.NewServer(), nil, log.NewNopLogger())
	})
}

func TestHealthReporter_Update(t *testing.T) {
	server := health.NewServer()
	pool := &switchPool{}
	r := NewHealthReporter(server, pool, log.NewNopLogger())

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, r.Update())
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, server))

	pool.up.Store(true)
	r.OnEvent(domain.ReceiveEvent{})
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, server), "unrelated event")
	r.OnEvent(domain.ConnectEvent{})
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, server))

	pool.up.Store(false)
	r.OnEvent(domain.DisconnectEvent{})
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, server))
}

func TestHealthReporter_Run(t *testing.T) {
	server := health.NewServer()
	pool := &switchPool{}
	pool.up.Store(true)
	r := NewHealthReporter(server, pool, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx, 10*time.Millisecond)
	}()
	require.Eventually(t, func() bool {
		return status(t, server) == grpc_health_v1.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	pool.up.Store(false)
	require.Eventually(t, func() bool {
		return status(t, server) == grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	pool.up.Store(true)
	cancel()
	<-done
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, server), "stopped reporter is not serving")
}
