package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"myandesite/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath = "CONFIG_PATH"
	envUserID     = "ANDESITE_USER_ID"
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envGRPCPort   = "SERVICE_PORT_GRPC"
	envRedisAddr  = "REDIS_ADDR"
)

// Scoring names accepted in the YAML "scoring" field.
const (
	scoringDefault = "default"
	scoringPenalty = "penalty"
)

// Config is the daemon configuration: ports, user id and Redis address from the environment, nodes and
// pool behaviour from the YAML file at CONFIG_PATH. RedisAddr "" keeps player state in memory.
type Config struct {
	HTTPPort       int
	GRPCPort       int
	UserID         domain.UserID
	RedisAddr      string
	Nodes          []domain.NodeConfig
	ReplayState    bool
	RegionAffinity bool
	Scoring        string
	RequestTimeout time.Duration
	HealthInterval time.Duration
}

// yamlConfig is the root of the YAML file.
type yamlConfig struct {
	MaxConnectAttempts int        `yaml:"max_connect_attempts"`
	ReplayPlayerState  *bool      `yaml:"replay_player_state"`
	RegionAffinity     *bool      `yaml:"region_affinity"`
	Scoring            string     `yaml:"scoring"`
	RequestTimeoutMs   int        `yaml:"request_timeout_ms"`
	HealthIntervalMs   int        `yaml:"health_interval_ms"`
	Nodes              []yamlNode `yaml:"nodes"`
}

// yamlNode is one node entry; max_connect_attempts overrides the top-level default.
type yamlNode struct {
	Name               string `yaml:"name"`
	WebSocketURL       string `yaml:"websocket_url"`
	RESTURL            string `yaml:"rest_url"`
	Password           string `yaml:"password"`
	Region             string `yaml:"region"`
	MaxConnectAttempts *int   `yaml:"max_connect_attempts"`
}

// loadYAMLConfig reads the YAML file at path. ${VAR} references are expanded from the environment so
// passwords can stay out of the file.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func portFromEnv(name string) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	port, err := strconv.Atoi(raw)
	if err != nil || raw == "" {
		return 0, fmt.Errorf("%s must be a valid port (1-65535)", name)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", name, port)
	}
	return port, nil
}

// LoadConfig builds the daemon config from the environment and the YAML file at CONFIG_PATH.
// SERVICE_PORT_HTTP, SERVICE_PORT_GRPC, ANDESITE_USER_ID and CONFIG_PATH are required; CONFIG_PATH is
// made absolute. Defaults: replay_player_state true, region_affinity true, scoring "default",
// request_timeout_ms 10000, health_interval_ms 5000, max_connect_attempts unlimited.
//
// Returns: (*Config, nil); (nil, error) on a missing or invalid variable, an unreadable file, an
// unknown scoring or an invalid node (*domain.NodeConfigError).
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPort, err := portFromEnv(envHTTPPort)
	if err != nil {
		return nil, err
	}
	grpcPort, err := portFromEnv(envGRPCPort)
	if err != nil {
		return nil, err
	}
	userIDStr := strings.TrimSpace(os.Getenv(envUserID))
	if userIDStr == "" {
		return nil, fmt.Errorf("%s is required", envUserID)
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil || userID == 0 {
		return nil, fmt.Errorf("%s must be a positive user id", envUserID)
	}
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	cfg := &Config{
		HTTPPort:       httpPort,
		GRPCPort:       grpcPort,
		UserID:         domain.UserID(userID),
		RedisAddr:      strings.TrimSpace(os.Getenv(envRedisAddr)),
		ReplayState:    raw.ReplayPlayerState == nil || *raw.ReplayPlayerState,
		RegionAffinity: raw.RegionAffinity == nil || *raw.RegionAffinity,
		Scoring:        strings.TrimSpace(raw.Scoring),
		RequestTimeout: 10 * time.Second,
		HealthInterval: 5 * time.Second,
	}
	switch cfg.Scoring {
	case "":
		cfg.Scoring = scoringDefault
	case scoringDefault, scoringPenalty:
	default:
		return nil, fmt.Errorf("scoring must be %s|%s", scoringDefault, scoringPenalty)
	}
	if raw.RequestTimeoutMs < 0 || raw.HealthIntervalMs < 0 || raw.MaxConnectAttempts < 0 {
		return nil, fmt.Errorf("request_timeout_ms, health_interval_ms and max_connect_attempts must not be negative")
	}
	if raw.RequestTimeoutMs > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutMs) * time.Millisecond
	}
	if raw.HealthIntervalMs > 0 {
		cfg.HealthInterval = time.Duration(raw.HealthIntervalMs) * time.Millisecond
	}

	for _, n := range raw.Nodes {
		node := domain.NodeConfig{
			Name:               strings.TrimSpace(n.Name),
			WebSocketURL:       strings.TrimSpace(n.WebSocketURL),
			RESTURL:            strings.TrimSpace(n.RESTURL),
			Password:           n.Password,
			Region:             strings.TrimSpace(n.Region),
			MaxConnectAttempts: n.MaxConnectAttempts,
		}
		if node.MaxConnectAttempts == nil && raw.MaxConnectAttempts > 0 {
			attempts := raw.MaxConnectAttempts
			node.MaxConnectAttempts = &attempts
		}
		cfg.Nodes = append(cfg.Nodes, node)
	}
	if err := domain.ValidateNodeConfigs(cfg.Nodes); err != nil {
		return nil, err
	}
	return cfg, nil
}
