package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"myandesite/adapters"
	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/service"

	"github.com/go-kit/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAndesite speaks enough of the Andesite websocket protocol for the scenarios: it issues connection
// ids, answers ping, get-stats and get-player, and keeps one player per guild.
type fakeAndesite struct {
	name string
	srv  *httptest.Server

	mu        sync.Mutex
	conns     int
	restCalls int
	resumes   []string
	players   map[string]bool
}

func newFakeAndesite(t *testing.T, name string) *fakeAndesite {
	t.Helper()
	f := &fakeAndesite{name: name, players: map[string]bool{}}
	upgrader := websocket.Upgrader{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/stats" {
			f.mu.Lock()
			f.restCalls++
			f.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"players":{"total":3,"playing":1}}`))
			return
		}
		h := http.Header{}
		h.Set(service.HeaderNodeID, name)
		conn, err := upgrader.Upgrade(w, r, h)
		if err != nil {
			return
		}
		f.mu.Lock()
		f.conns++
		id := fmt.Sprintf("%s-conn-%d", name, f.conns)
		f.resumes = append(f.resumes, r.Header.Get(service.HeaderResumeID))
		f.mu.Unlock()
		f.serve(conn, id)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAndesite) serve(conn *websocket.Conn, connectionID string) {
	defer conn.Close()
	write := func(v map[string]any) bool {
		return conn.WriteJSON(v) == nil
	}
	if !write(map[string]any{"op": "connection-id", "id": connectionID}) {
		return
	}
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg struct {
			Op      string `json:"op"`
			GuildID string `json:"guildId"`
		}
		if json.Unmarshal(data, &msg) != nil {
			continue
		}
		var reply map[string]any
		f.mu.Lock()
		switch msg.Op {
		case "ping":
			reply = map[string]any{"op": "pong", "guildId": msg.GuildID, "userId": "1"}
		case "get-stats":
			reply = map[string]any{"op": "stats", "userId": "1", "stats": map[string]any{"players": map[string]int{"total": len(f.players), "playing": 0}}}
		case "get-player":
			if f.players[msg.GuildID] {
				reply = map[string]any{"op": "player-update", "guildId": msg.GuildID, "userId": "1", "state": map[string]any{"time": "0", "paused": false, "volume": 100}}
			}
		case "destroy":
			delete(f.players, msg.GuildID)
		default:
			f.players[msg.GuildID] = true
		}
		f.mu.Unlock()
		if reply != nil && !write(reply) {
			return
		}
	}
}

func (f *fakeAndesite) node() domain.NodeConfig {
	return domain.NodeConfig{
		Name:               f.name,
		WebSocketURL:       "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/websocket",
		MaxConnectAttempts: helpers.Ptr(1),
	}
}

func (f *fakeAndesite) hasPlayer(guild domain.GuildID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.players[guild.String()]
}

func testConfig(out *bytes.Buffer, nodes ...*fakeAndesite) *Config {
	cfg := &Config{
		UserID:         1,
		GuildID:        549904277108424715,
		RequestTimeout: 2 * time.Second,
		Dialer:         adapters.WebSocketDialer(time.Second),
		Clock:          service.NewTimeProvider(time.Now),
		Logger:         log.NewNopLogger(),
		Out:            out,
	}
	for _, n := range nodes {
		cfg.Nodes = append(cfg.Nodes, n.node())
	}
	return cfg
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"empty_pool", "ping", "pool_migration", "resume"}, Names())

	err := Run(context.Background(), "nope", &Config{})
	var unknown *UnknownScenarioError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown scenario: nope", err.Error())
}

func TestPing(t *testing.T) {
	var out bytes.Buffer
	a, b := newFakeAndesite(t, "a"), newFakeAndesite(t, "b")
	cfg := testConfig(&out, a, b)
	cfg.Nodes[1].RESTURL = b.srv.URL
	require.NoError(t, Run(testContext(t), "ping", cfg))
	assert.Contains(t, out.String(), `a: node_id="a"`)
	assert.Contains(t, out.String(), `b: node_id="b"`)
	assert.Contains(t, out.String(), "b: rest players=3 playing=1")
	assert.NotContains(t, out.String(), "a: rest")
	b.mu.Lock()
	assert.Equal(t, 1, b.restCalls)
	b.mu.Unlock()

	t.Run("unreachable_node", func(t *testing.T) {
		cfg := testConfig(&out)
		cfg.Nodes = []domain.NodeConfig{{Name: "gone", WebSocketURL: "ws://127.0.0.1:1/websocket", MaxConnectAttempts: helpers.Ptr(1)}}
		err := Run(testContext(t), "ping", cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "node gone: connect")
	})
}

func TestResume(t *testing.T) {
	var out bytes.Buffer
	a := newFakeAndesite(t, "a")
	require.NoError(t, Run(testContext(t), "resume", testConfig(&out, a)))
	a.mu.Lock()
	defer a.mu.Unlock()
	assert.Equal(t, []string{"", "a-conn-1"}, a.resumes)
	assert.Contains(t, out.String(), "resumed with a-conn-1, node answered a-conn-2")
}

func TestPoolMigration(t *testing.T) {
	var out bytes.Buffer
	a, b := newFakeAndesite(t, "a"), newFakeAndesite(t, "b")
	cfg := testConfig(&out, a, b)
	require.NoError(t, Run(testContext(t), "pool_migration", cfg))
	assert.Contains(t, out.String(), "moved")
	require.Eventually(t, func() bool {
		return !a.hasPlayer(cfg.GuildID) && !b.hasPlayer(cfg.GuildID)
	}, 2*time.Second, 10*time.Millisecond, "players destroyed on both nodes")

	t.Run("needs_two_nodes", func(t *testing.T) {
		err := Run(testContext(t), "pool_migration", testConfig(&out, a))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least two nodes")
	})
}

func TestEmptyPool(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(testContext(t), "empty_pool", testConfig(&out)))
	require.NoError(t, Run(testContext(t), "empty_pool", testConfig(&out, newFakeAndesite(t, "a"))))
	assert.Contains(t, out.String(), "pool without usable nodes rejected the send")
}
