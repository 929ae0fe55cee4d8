package scenario

import (
	"context"
	"fmt"

	"myandesite/domain"
)

func init() {
	Register("resume", runResume)
}

// runResume connects to the first node, reconnects with the received connection id and checks the
// second handshake is a resume.
func runResume(ctx context.Context, cfg *Config) error {
	if len(cfg.Nodes) == 0 {
		return fmt.Errorf("resume needs a node")
	}
	client := cfg.newClient(cfg.Nodes[0])
	defer client.Close()
	events := tap(client)
	defer events.unsubscribe()

	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	evt, err := events.next(ctx, "connect", isConnect)
	if err != nil {
		return err
	}
	if evt.(domain.ConnectEvent).Resumed {
		return fmt.Errorf("first connect presented a resume id")
	}
	evt, err = events.next(ctx, "connection id", isConnectionID)
	if err != nil {
		return err
	}
	firstID := connectionIDOf(evt)
	cfg.report("%s: connection id %s", client.Name(), firstID)

	if err := client.Disconnect(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}
	evt, err = events.next(ctx, "reconnect", isConnect)
	if err != nil {
		return err
	}
	if !evt.(domain.ConnectEvent).Resumed {
		return fmt.Errorf("reconnect did not present the resume id")
	}
	evt, err = events.next(ctx, "connection id after resume", isConnectionID)
	if err != nil {
		return err
	}
	cfg.report("%s: resumed with %s, node answered %s", client.Name(), firstID, connectionIDOf(evt))
	return nil
}
