package main

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"myandesite/handlers"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type fixedPool struct{ up atomic.Bool }

func (p *fixedPool) Connected() bool { return p.up.Load() }

func TestHealthCheck(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	pool := &fixedPool{}
	reporter := handlers.NewHealthReporter(healthServer, pool, log.NewNopLogger())

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()
	defer grpcServer.GracefulStop()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	healthClient := grpc_health_v1.NewHealthClient(conn)

	check := func() grpc_health_v1.HealthCheckResponse_ServingStatus {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		resp, err := healthClient.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: ""})
		require.NoError(t, err)
		return resp.Status
	}

	reporter.Update()
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(), "no node connected")

	pool.up.Store(true)
	reporter.Update()
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check())
}
