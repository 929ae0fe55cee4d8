package scenario

import (
	"context"
	"fmt"
	"net/http"

	"myandesite/adapters"
	"myandesite/domain"
)

func init() {
	Register("ping", runPing)
}

// runPing connects to every node in turn and checks ping and stats round trips. Nodes with a REST URL
// also get their stats fetched over HTTP.
func runPing(ctx context.Context, cfg *Config) error {
	if len(cfg.Nodes) == 0 {
		return fmt.Errorf("ping needs a node")
	}
	for _, node := range cfg.Nodes {
		if err := pingNode(ctx, cfg, node); err != nil {
			return fmt.Errorf("node %s: %w", node.Name, err)
		}
	}
	return nil
}

func pingNode(ctx context.Context, cfg *Config, node domain.NodeConfig) error {
	client := cfg.newClient(node)
	defer client.Close()
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	rtt, ok, err := client.Ping(ctx, cfg.GuildID)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if !ok {
		return fmt.Errorf("ping: no pong before timeout")
	}
	stats, ok, err := client.GetStats(ctx, cfg.GuildID)
	if err != nil {
		return fmt.Errorf("get-stats: %w", err)
	}
	if !ok {
		return fmt.Errorf("get-stats: no stats before timeout")
	}
	cfg.report("%s: node_id=%q region=%q rtt=%s players=%d playing=%d",
		node.Name, client.NodeID(), client.NodeRegion(), rtt, stats.Players.Total, stats.Players.Playing)

	if node.RESTURL == "" {
		return nil
	}
	rest := adapters.NewRESTClient(node.Name, node.RESTURL, node.Password, &http.Client{Timeout: cfg.RequestTimeout}, cfg.Logger)
	restStats, err := rest.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("rest stats: %w", err)
	}
	cfg.report("%s: rest players=%d playing=%d", node.Name, restStats.Players.Total, restStats.Players.Playing)
	return nil
}
