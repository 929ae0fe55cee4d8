package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNodeConfigs(t *testing.T) {
	zero := 0
	three := 3
	tests := []struct {
		name        string
		nodes       []NodeConfig
		wantIndex   int
		wantContain string
	}{
		{name: "empty_list", nodes: nil, wantIndex: -1, wantContain: "at least one node"},
		{
			name: "valid",
			nodes: []NodeConfig{
				{Name: "eu", WebSocketURL: "ws://eu.local:5000/websocket", RESTURL: "http://eu.local:5000", MaxConnectAttempts: &three},
				{Name: "us", WebSocketURL: "wss://us.local/websocket"},
			},
		},
		{name: "missing_name", nodes: []NodeConfig{{WebSocketURL: "ws://a/ws"}}, wantIndex: 0, wantContain: "name"},
		{
			name:        "duplicate_name",
			nodes:       []NodeConfig{{Name: "a", WebSocketURL: "ws://a/ws"}, {Name: "a", WebSocketURL: "ws://b/ws"}},
			wantIndex:   1,
			wantContain: "duplicate",
		},
		{name: "http_websocket_url", nodes: []NodeConfig{{Name: "a", WebSocketURL: "http://a/ws"}}, wantIndex: 0, wantContain: "websocket_url"},
		{name: "bad_rest_url", nodes: []NodeConfig{{Name: "a", WebSocketURL: "ws://a/ws", RESTURL: "ftp://a"}}, wantIndex: 0, wantContain: "rest_url"},
		{name: "zero_attempts", nodes: []NodeConfig{{Name: "a", WebSocketURL: "ws://a/ws", MaxConnectAttempts: &zero}}, wantIndex: 0, wantContain: "max_connect_attempts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeConfigs(tt.nodes)
			if tt.wantContain == "" {
				require.NoError(t, err)
				return
			}
			var ne *NodeConfigError
			require.True(t, errors.As(err, &ne))
			assert.Equal(t, tt.wantIndex, ne.Index)
			assert.Contains(t, ne.Error(), tt.wantContain)
		})
	}
}

func TestRegionGroup(t *testing.T) {
	assert.Equal(t, "eu", RegionGroup("eu-west"))
	assert.Equal(t, "eu", RegionGroup("EU"))
	assert.Equal(t, "us", RegionGroup("us-east"))
	assert.Equal(t, "asia", RegionGroup("japan"))
	assert.Equal(t, "", RegionGroup("mars"))
}

func TestRegionFromEndpoint(t *testing.T) {
	assert.Equal(t, "eu-west", RegionFromEndpoint("eu-west123.discord.media:443"))
	assert.Equal(t, "us-east", RegionFromEndpoint("wss://us-east42.discord.gg"))
	assert.Equal(t, "", RegionFromEndpoint("c-ams08-1234.discord.media:443"))
	assert.Equal(t, "", RegionFromEndpoint(""))
}
