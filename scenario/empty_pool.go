package scenario

import (
	"context"
	"errors"
	"fmt"

	"myandesite/service"
)

func init() {
	Register("empty_pool", runEmptyPool)
}

// runEmptyPool checks that a pool without usable nodes rejects sends with a pool-empty error, both
// when it has no members and when its only member is closed.
func runEmptyPool(ctx context.Context, cfg *Config) error {
	pool := service.NewPool(service.PoolConfig{}, cfg.Logger)
	defer pool.Close()
	if err := expectPoolEmpty(pool.Stop(ctx, cfg.GuildID)); err != nil {
		return fmt.Errorf("no members: %w", err)
	}
	if len(cfg.Nodes) == 0 {
		cfg.report("empty pool rejected the send")
		return nil
	}

	client := cfg.newClient(cfg.Nodes[0])
	if err := pool.AddClient(client); err != nil {
		return err
	}
	if err := client.Close(); err != nil {
		return err
	}
	if err := expectPoolEmpty(pool.Stop(ctx, cfg.GuildID)); err != nil {
		return fmt.Errorf("closed member: %w", err)
	}
	cfg.report("pool without usable nodes rejected the send")
	return nil
}

func expectPoolEmpty(err error) error {
	var empty *service.PoolEmptyError
	if !errors.As(err, &empty) {
		return fmt.Errorf("expected *PoolEmptyError, got %v", err)
	}
	return nil
}
