package service

import (
	"context"
	"math"
	"strings"

	"myandesite/domain"
	"myandesite/interfaces"
)

// ScoringInput is what a ScoringFunc sees for one candidate of one assignment.
// Region is the guild's region hint, "" when unknown.
type ScoringInput struct {
	Client  interfaces.NodeClient
	Guilds  []domain.GuildID
	GuildID domain.GuildID
	Region  string
}

// ScoringFunc ranks a candidate client for a guild; the highest score wins. It may block (it runs
// concurrently for all candidates of one assignment) and should honour ctx.
type ScoringFunc func(ctx context.Context, in ScoringInput) (domain.Score, error)

// RegionComparator rates how well a node region serves a guild region; higher is better.
type RegionComparator func(guildRegion, nodeRegion string) float64

// ConnectivityOf ranks c: closed < disconnected < connected.
func ConnectivityOf(c interfaces.Connectable) domain.Connectivity {
	switch {
	case c.Closed():
		return domain.ConnectivityClosed
	case c.Connected():
		return domain.ConnectivityConnected
	default:
		return domain.ConnectivityDisconnected
	}
}

// DefaultRegionComparator gives 2 for the same region, 1 for the same continent group and 0 otherwise
// or when either side is unknown.
func DefaultRegionComparator(guildRegion, nodeRegion string) float64 {
	if guildRegion == "" || nodeRegion == "" {
		return 0
	}
	if strings.EqualFold(guildRegion, nodeRegion) {
		return 2
	}
	if g := domain.RegionGroup(guildRegion); g != "" && g == domain.RegionGroup(nodeRegion) {
		return 1
	}
	return 0
}

// DefaultScoringFunc scores (connectivity, region affinity, -assigned guilds). A nil regionCmp scores every node 0 on region.
func DefaultScoringFunc(regionCmp RegionComparator) ScoringFunc {
	return func(_ context.Context, in ScoringInput) (domain.Score, error) {
		return domain.Score{
			float64(ConnectivityOf(in.Client)),
			regionScore(regionCmp, in),
			-float64(len(in.Guilds)),
		}, nil
	}
}

// PenaltyScoringFunc scores (connectivity, region affinity, -load penalty, -assigned guilds), the load
// penalty being computed from the node's last stats. Nodes without stats get penalty 0.
func PenaltyScoringFunc(regionCmp RegionComparator) ScoringFunc {
	return func(_ context.Context, in ScoringInput) (domain.Score, error) {
		penalty := 0.0
		if stats, ok := in.Client.LastStats(); ok {
			penalty = Penalty(stats)
		}
		return domain.Score{
			float64(ConnectivityOf(in.Client)),
			regionScore(regionCmp, in),
			-penalty,
			-float64(len(in.Guilds)),
		}, nil
	}
}

func regionScore(cmp RegionComparator, in ScoringInput) float64 {
	if cmp == nil {
		return 0
	}
	return cmp(in.Region, in.Client.NodeRegion())
}

// Penalty is Andesite's node load formula: playing players, a CPU term growing with system load and a
// frame-loss term growing with the frames lost per minute.
func Penalty(stats domain.Stats) float64 {
	penalty := float64(stats.Players.Playing)
	penalty += math.Pow(1.05, 100*stats.CPU.System)*10 - 10
	if len(stats.FrameStats) > 0 {
		_, loss := stats.FrameTotals()
		penalty += math.Pow(1.03, 500*float64(loss)/3000)*600 - 600
	}
	return penalty
}
