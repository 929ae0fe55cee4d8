// Package handlers contains the admin HTTP API and the gRPC health reporting of the daemon.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"
	"myandesite/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// Pool is the part of *service.Pool the admin API works on.
type Pool interface {
	Clients() []interfaces.NodeClient
	ClientByName(name string) interfaces.NodeClient
	GuildsOf(c interfaces.NodeClient) []domain.GuildID
	GetClient(guildID domain.GuildID) interfaces.NodeClient
	AssignClient(ctx context.Context, guildID domain.GuildID) (interfaces.NodeClient, error)
	PullClient(ctx context.Context, c interfaces.NodeClient) ([]domain.GuildID, error)
	StateHandler() interfaces.StateHandler
}

// HTTPServer serves the admin API documented in api/admin.openapi.yaml.
type HTTPServer struct {
	pool   Pool
	tracks interfaces.RESTClient
	logger log.Logger
}

// NewHTTPServer creates the admin API over pool. tracks serves GET /v1/tracks and may be nil when no
// node has a REST URL. Panics on nil pool or logger.
func NewHTTPServer(pool Pool, tracks interfaces.RESTClient, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		pool:   helpers.NilPanic(pool, "handlers.http.go: pool is required"),
		tracks: tracks,
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterHandlers mounts the admin routes on e.
func RegisterHandlers(e *echo.Echo, s *HTTPServer) {
	e.GET("/v1/nodes", s.GetNodes)
	e.POST("/v1/nodes/:name/pull", s.PullNode)
	e.GET("/v1/guilds/:guild_id", s.GetGuild)
	e.POST("/v1/guilds/:guild_id/assign", s.AssignGuild)
	e.GET("/v1/tracks", s.LoadTracks)
}

// NodeResponse describes one pool member. Load fields are omitted until the node sent stats.
type NodeResponse struct {
	Name           string   `json:"name"`
	Connected      bool     `json:"connected"`
	Closed         bool     `json:"closed"`
	ConnectionID   string   `json:"connection_id,omitempty"`
	NodeID         string   `json:"node_id,omitempty"`
	Region         string   `json:"region,omitempty"`
	Guilds         []string `json:"guilds"`
	Players        *int     `json:"players,omitempty"`
	PlayingPlayers *int     `json:"playing_players,omitempty"`
	Penalty        *float64 `json:"penalty,omitempty"`
}

type NodesResponse struct {
	Nodes []NodeResponse `json:"nodes"`
}

type GuildResponse struct {
	GuildID string              `json:"guild_id"`
	Node    string              `json:"node,omitempty"`
	State   *domain.PlayerState `json:"state"`
}

type AssignResponse struct {
	GuildID string `json:"guild_id"`
	Node    string `json:"node"`
}

type PullResponse struct {
	Node   string   `json:"node"`
	Guilds []string `json:"guilds"`
}

func guildStrings(guilds []domain.GuildID) []string {
	out := make([]string, len(guilds))
	for i, g := range guilds {
		out[i] = g.String()
	}
	return out
}

func toNodeResponse(c interfaces.NodeClient, guilds []domain.GuildID) NodeResponse {
	n := NodeResponse{
		Name:         c.Name(),
		Connected:    c.Connected(),
		Closed:       c.Closed(),
		ConnectionID: c.ConnectionID(),
		NodeID:       c.NodeID(),
		Region:       c.NodeRegion(),
		Guilds:       guildStrings(guilds),
	}
	if stats, ok := c.LastStats(); ok {
		penalty := service.Penalty(stats)
		n.Players, n.PlayingPlayers, n.Penalty = &stats.Players.Total, &stats.Players.Playing, &penalty
	}
	return n
}

func guildParam(ectx echo.Context) (domain.GuildID, error) {
	guildID, err := domain.ParseGuildID(ectx.Param("guild_id"))
	if err != nil {
		return 0, service.NewBadParameterError("invalid guild id", err)
	}
	return guildID, nil
}

// GetNodes (GET /v1/nodes) lists the members in join order with their guilds.
func (h *HTTPServer) GetNodes(ectx echo.Context) error {
	clients := h.pool.Clients()
	resp := NodesResponse{Nodes: make([]NodeResponse, 0, len(clients))}
	for _, c := range clients {
		resp.Nodes = append(resp.Nodes, toNodeResponse(c, h.pool.GuildsOf(c)))
	}
	return ectx.JSON(http.StatusOK, resp)
}

// GetGuild (GET /v1/guilds/{guild_id}) returns the node and the recorded player state of a guild.
// 404 when the guild is neither assigned nor has state.
func (h *HTTPServer) GetGuild(ectx echo.Context) error {
	guildID, err := guildParam(ectx)
	if err != nil {
		return err
	}
	state, err := h.pool.StateHandler().Get(ectx.Request().Context(), guildID)
	if err != nil {
		return service.NewInternalServerError("could not read player state", fmt.Errorf("getGuild failed to read state of guild %s, err: %w", guildID, err))
	}
	resp := GuildResponse{GuildID: guildID.String(), State: state}
	if c := h.pool.GetClient(guildID); c != nil {
		resp.Node = c.Name()
	}
	if resp.Node == "" && state == nil {
		return service.NewEntityNotFoundError("guild is not known", nil)
	}
	return ectx.JSON(http.StatusOK, resp)
}

// AssignGuild (POST /v1/guilds/{guild_id}/assign) returns the node of the guild, assigning one when
// needed. 503 when no node can take it.
func (h *HTTPServer) AssignGuild(ectx echo.Context) error {
	guildID, err := guildParam(ectx)
	if err != nil {
		return err
	}
	c, err := h.pool.AssignClient(ectx.Request().Context(), guildID)
	if err != nil {
		return service.FromPoolError("no node available", err)
	}
	level.Info(h.logger).Log("msg", "guild assigned", "guild_id", guildID, "node", c.Name())
	return ectx.JSON(http.StatusOK, AssignResponse{GuildID: guildID.String(), Node: c.Name()})
}

// PullNode (POST /v1/nodes/{name}/pull) removes a node and moves its guilds to the other members.
// The response lists the guilds the pull detached from the node.
func (h *HTTPServer) PullNode(ectx echo.Context) error {
	name := ectx.Param("name")
	c := h.pool.ClientByName(name)
	if c == nil {
		return service.NewEntityNotFoundError("node is not in the pool", nil)
	}
	guilds, err := h.pool.PullClient(ectx.Request().Context(), c)
	if errors.Is(err, service.ErrClientNotInPool) {
		return service.NewEntityNotFoundError("node is not in the pool", err)
	}
	if err != nil {
		return service.FromPoolError("could not move the guilds of "+name, err)
	}
	level.Info(h.logger).Log("msg", "node pulled", "node", name, "guilds", len(guilds))
	return ectx.JSON(http.StatusOK, PullResponse{Node: name, Guilds: guildStrings(guilds)})
}

// LoadTracks (GET /v1/tracks?identifier=) resolves an identifier on one of the REST nodes.
// Andesite errors are reported as bad_parameter with the node's message.
func (h *HTTPServer) LoadTracks(ectx echo.Context) error {
	if h.tracks == nil {
		return service.NewAPIError(service.ErrPoolEmptyCode, "no REST node is configured", nil)
	}
	identifier := ectx.QueryParam("identifier")
	loaded, err := h.tracks.LoadTracks(ectx.Request().Context(), identifier)
	if aerr := service.ToAndesiteError(err); aerr != nil {
		return service.NewBadParameterError(aerr.Message, aerr)
	}
	if err != nil {
		return service.FromPoolError("could not load tracks", err)
	}
	return ectx.JSON(http.StatusOK, loaded)
}
