package scenario

import (
	"context"
	"fmt"

	"myandesite/domain"
	"myandesite/service"
)

func init() {
	Register("pool_migration", runPoolMigration)
}

// runPoolMigration places the guild in a pool of all nodes, creates a player for it, pulls its node and
// checks the guild lands on another connected node with its state replayed.
func runPoolMigration(ctx context.Context, cfg *Config) error {
	if len(cfg.Nodes) < 2 {
		return fmt.Errorf("pool_migration needs at least two nodes, got %d", len(cfg.Nodes))
	}
	pool := service.NewPool(service.PoolConfig{ReplayState: true}, cfg.Logger)
	defer pool.Close()
	for _, node := range cfg.Nodes {
		if err := pool.AddClient(cfg.newClient(node)); err != nil {
			return err
		}
	}
	if err := pool.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	from, err := pool.AssignClient(ctx, cfg.GuildID)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	// a placeholder voice session so the guild has state worth replaying
	voice := domain.VoiceServerEvent{Token: "andesite-check", GuildID: cfg.GuildID, Endpoint: "localhost"}
	if err := pool.VoiceServerUpdate(ctx, cfg.GuildID, "andesite-check", voice); err != nil {
		return fmt.Errorf("voice-server-update: %w", err)
	}
	if err := pool.SetVolume(ctx, cfg.GuildID, 0.5); err != nil {
		return fmt.Errorf("volume: %w", err)
	}
	if _, ok, err := from.GetPlayer(ctx, cfg.GuildID); err != nil || !ok {
		return fmt.Errorf("player on %s: ok=%v err=%v", from.Name(), ok, err)
	}
	cfg.report("guild %s on %s", cfg.GuildID, from.Name())

	if _, err := pool.PullClient(ctx, from); err != nil {
		return fmt.Errorf("pull %s: %w", from.Name(), err)
	}
	to := pool.GetClient(cfg.GuildID)
	if to == nil || to == from {
		return fmt.Errorf("guild was not moved off %s", from.Name())
	}
	if !to.Connected() {
		return fmt.Errorf("guild moved to disconnected node %s", to.Name())
	}
	if _, ok, err := to.GetPlayer(ctx, cfg.GuildID); err != nil || !ok {
		return fmt.Errorf("player on %s after migration: ok=%v err=%v", to.Name(), ok, err)
	}
	cfg.report("guild %s moved %s -> %s", cfg.GuildID, from.Name(), to.Name())
	_ = from.Close()
	return pool.Destroy(ctx, cfg.GuildID, nil)
}
