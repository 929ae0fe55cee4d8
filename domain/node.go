package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// NodeConfig describes one Andesite node: its websocket endpoint, its REST base URL, the password
// sent as Authorization and an optional region used by region-aware scoring.
// MaxConnectAttempts limits connect attempts; nil means unlimited.
type NodeConfig struct {
	Name               string
	WebSocketURL       string
	RESTURL            string
	Password           string
	Region             string
	MaxConnectAttempts *int
}

// ValidateNodeConfigs checks every node: non-empty unique name, ws/wss websocket URL, http/https REST URL
// (optional) and a positive MaxConnectAttempts when set.
//
// Returns: nil when all nodes are valid; *NodeConfigError for the first invalid node.
//
// Called from cmd.LoadConfig and the andesite-check command before building clients.
func ValidateNodeConfigs(nodes []NodeConfig) error {
	if len(nodes) == 0 {
		return &NodeConfigError{Index: -1, Reason: "at least one node is required"}
	}
	seen := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		name := strings.TrimSpace(n.Name)
		if name == "" {
			return &NodeConfigError{Index: i, Reason: "name must be non-empty"}
		}
		if seen[name] {
			return &NodeConfigError{Index: i, Reason: "duplicate name " + strconv.Quote(name)}
		}
		seen[name] = true
		if !hasScheme(n.WebSocketURL, "ws", "wss") {
			return &NodeConfigError{Index: i, Reason: "websocket_url must be a ws:// or wss:// URL"}
		}
		if n.RESTURL != "" && !hasScheme(n.RESTURL, "http", "https") {
			return &NodeConfigError{Index: i, Reason: "rest_url must be an http:// or https:// URL"}
		}
		if n.MaxConnectAttempts != nil && *n.MaxConnectAttempts <= 0 {
			return &NodeConfigError{Index: i, Reason: "max_connect_attempts must be positive"}
		}
	}
	return nil
}

func hasScheme(raw string, schemes ...string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return true
		}
	}
	return false
}

// NodeConfigError is returned by ValidateNodeConfigs. Index is the node index (0-based) or -1 for the list itself.
type NodeConfigError struct {
	Index  int
	Reason string
}

func (e *NodeConfigError) Error() string {
	return "node[" + strconv.Itoa(e.Index) + "]: " + e.Reason
}
