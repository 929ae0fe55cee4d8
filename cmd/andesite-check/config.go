package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"myandesite/adapters"
	"myandesite/domain"
	"myandesite/scenario"
	"myandesite/service"

	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

// Defaults of the check command.
const (
	envPrefix        = "ANDESITE"
	defaultGuildID   = "1"
	defaultTimeout   = 10 * time.Second
	defaultDeadline  = 60 * time.Second
	handshakeTimeout = 10 * time.Second
)

// checkNode is one entry of the "nodes" list, the same shape the daemon's config file uses.
type checkNode struct {
	Name               string `mapstructure:"name"`
	WebSocketURL       string `mapstructure:"websocket_url"`
	RESTURL            string `mapstructure:"rest_url"`
	Password           string `mapstructure:"password"`
	Region             string `mapstructure:"region"`
	MaxConnectAttempts *int   `mapstructure:"max_connect_attempts"`
}

// newViper binds ANDESITE_* environment variables: ANDESITE_USER_ID sets --user-id and so on.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("guild-id", defaultGuildID)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("deadline", defaultDeadline)
	return v
}

// loadScenarioConfig builds the scenario config from flags, environment and the optional config file.
// Nodes come from the file only; a run without file has no nodes, which only empty_pool accepts.
func loadScenarioConfig(v *viper.Viper, logger log.Logger) (*scenario.Config, error) {
	if path := v.GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigType("yaml")
		if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	var raw []checkNode
	if err := v.UnmarshalKey("nodes", &raw); err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	defaultAttempts := v.GetInt("max_connect_attempts")
	nodes := make([]domain.NodeConfig, 0, len(raw))
	for _, n := range raw {
		attempts := n.MaxConnectAttempts
		if attempts == nil && defaultAttempts != 0 {
			attempts = &defaultAttempts
		}
		nodes = append(nodes, domain.NodeConfig{
			Name:               n.Name,
			WebSocketURL:       n.WebSocketURL,
			RESTURL:            n.RESTURL,
			Password:           n.Password,
			Region:             n.Region,
			MaxConnectAttempts: attempts,
		})
	}
	if len(nodes) > 0 {
		if err := domain.ValidateNodeConfigs(nodes); err != nil {
			return nil, err
		}
	}

	userID := v.GetUint64("user-id")
	if userID == 0 {
		return nil, fmt.Errorf("user id is required (--user-id or %s_USER_ID)", envPrefix)
	}
	guildID, err := domain.ParseGuildID(v.GetString("guild-id"))
	if err != nil {
		return nil, err
	}
	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	return &scenario.Config{
		Nodes:          nodes,
		UserID:         domain.UserID(userID),
		GuildID:        guildID,
		RequestTimeout: timeout,
		Dialer:         adapters.WebSocketDialer(handshakeTimeout),
		Clock:          service.NewTimeProvider(time.Now),
		Logger:         logger,
	}, nil
}
