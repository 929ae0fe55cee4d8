package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myandesite/adapters"
	"myandesite/adapters/myredis"
	"myandesite/api"
	"myandesite/domain"
	"myandesite/handlers"
	"myandesite/interfaces"
	"myandesite/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting myandesite")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"nodes", len(config.Nodes),
		"scoring", config.Scoring,
		"redis_addr", config.RedisAddr,
	)

	clock := service.NewTimeProvider(func() time.Time {
		return time.Now().UTC()
	})

	var stateHandler interfaces.StateHandler
	{
		stateHandler = service.NewMemoryState()
		if config.RedisAddr != "" {
			redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
			if err != nil {
				level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
				os.Exit(1)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = redisClient.Ping(ctx).Err()
			cancel()
			if err != nil {
				level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
				os.Exit(1)
			}
			level.Info(logger).Log("msg", "Connected to Redis")
			stateHandler = myredis.NewPlayerStateStore(myredis.NewPlayerStateCache(redisClient), myredis.DefaultPlayerStateTTL)
		}
	}

	var pool *service.Pool
	{
		var regionCmp service.RegionComparator
		if config.RegionAffinity {
			regionCmp = service.DefaultRegionComparator
		}
		scoring := service.DefaultScoringFunc(regionCmp)
		if config.Scoring == scoringPenalty {
			scoring = service.PenaltyScoringFunc(regionCmp)
		}
		pool = service.NewPool(service.PoolConfig{
			Scoring:      scoring,
			StateHandler: stateHandler,
			ReplayState:  config.ReplayState,
		}, logger)
		pool.Subscribe(logPoolEvent(logger))

		dialer := adapters.WebSocketDialer(10 * time.Second)
		for _, node := range config.Nodes {
			client := service.NewWebSocketClient(service.ClientConfig{
				Node:           node,
				UserID:         config.UserID,
				RequestTimeout: config.RequestTimeout,
			}, dialer, clock, logger)
			if err := pool.AddClient(client); err != nil {
				level.Error(logger).Log("msg", "Failed to add node", "node", node.Name, "err", err)
				os.Exit(1)
			}
		}
	}

	var tracks interfaces.RESTClient
	{
		httpClient := &http.Client{Timeout: 10 * time.Second}
		var restClients []interfaces.RESTClient
		for _, node := range config.Nodes {
			if node.RESTURL != "" {
				restClients = append(restClients, adapters.NewRESTClient(node.Name, node.RESTURL, node.Password, httpClient, logger))
			}
		}
		if len(restClients) > 0 {
			tracks = service.NewRESTPool(restClients, logger)
		}
	}

	var e *echo.Echo
	{
		validator, err := handlers.OpenAPIValidator(api.AdminOpenAPI)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load API document", "err", err)
			os.Exit(1)
		}
		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		e.Use(validator)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(pool, tracks, logger))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var grpcServer *grpc.Server
	{
		grpcServer = grpc.NewServer()
		healthServer := health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
		reflection.Register(grpcServer)

		reporter := handlers.NewHealthReporter(healthServer, pool, logger)
		pool.Subscribe(reporter.OnEvent)
		go reporter.Run(ctx, config.HealthInterval)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen", "err", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := pool.Connect(ctx); err != nil {
			level.Warn(logger).Log("msg", "Some nodes could not be connected", "err", err)
		}
	}()
	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down...")
	stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during HTTP server shutdown", "err", err)
	}
	grpcServer.GracefulStop()
	if err := pool.Close(); err != nil {
		level.Error(logger).Log("msg", "Error closing nodes", "err", err)
	}
	level.Info(logger).Log("msg", "Server stopped")
}

// logPoolEvent logs connection changes of the pool members.
func logPoolEvent(logger log.Logger) func(domain.Event) {
	logger = log.With(logger, "component", "pool_events")
	return func(evt domain.Event) {
		switch e := evt.(type) {
		case domain.ConnectEvent:
			level.Info(logger).Log("msg", "node connected", "node", e.NodeName(), "resumed", e.Resumed)
		case domain.DisconnectEvent:
			level.Warn(logger).Log("msg", "node disconnected", "node", e.NodeName(), "deliberate", e.Deliberate)
		case domain.ConnectErrorEvent:
			level.Error(logger).Log("msg", "node gave up connecting", "node", e.NodeName(), "err", e.Err)
		case domain.ClientRemoveEvent:
			level.Info(logger).Log("msg", "node removed", "node", e.NodeName(), "guilds", len(e.Guilds))
		}
	}
}
