package service

import (
	"context"
	"testing"

	"myandesite/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectivityOf(t *testing.T) {
	n := newFakeNode("a", "")
	assert.Equal(t, domain.ConnectivityConnected, ConnectivityOf(n))
	n.connected.Store(false)
	assert.Equal(t, domain.ConnectivityDisconnected, ConnectivityOf(n))
	n.closed.Store(true)
	assert.Equal(t, domain.ConnectivityClosed, ConnectivityOf(n))
}

func TestDefaultRegionComparator(t *testing.T) {
	tests := []struct {
		name        string
		guild, node string
		want        float64
	}{
		{"unknown_guild", "", "eu-west", 0},
		{"unknown_node", "eu-west", "", 0},
		{"exact", "eu-west", "EU-WEST", 2},
		{"same_group", "frankfurt", "eu-west", 1},
		{"group_name", "us", "us-east", 1},
		{"other_group", "sydney", "us-east", 0},
		{"unmapped", "mars", "mars-2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRegionComparator(tt.guild, tt.node))
		})
	}
}

func TestDefaultScoringFunc(t *testing.T) {
	ctx := context.Background()
	score := DefaultScoringFunc(DefaultRegionComparator)

	near := newFakeNode("near", "eu-west")
	far := newFakeNode("far", "us-east")
	down := newFakeNode("down", "eu-west")
	down.connected.Store(false)

	in := func(c *fakeNode, guilds int) ScoringInput {
		return ScoringInput{Client: c, Guilds: make([]domain.GuildID, guilds), GuildID: 1, Region: "london"}
	}
	sNear, err := score(ctx, in(near, 10))
	require.NoError(t, err)
	sFar, _ := score(ctx, in(far, 0))
	sDown, _ := score(ctx, in(down, 0))

	assert.Equal(t, domain.Score{float64(domain.ConnectivityConnected), 1, -10}, sNear)
	assert.Equal(t, 1, sNear.Compare(sFar), "region beats load")
	assert.Equal(t, 1, sFar.Compare(sDown), "connectivity beats region")

	t.Run("nil_comparator_is_neutral", func(t *testing.T) {
		plain := DefaultScoringFunc(nil)
		a, _ := plain(ctx, in(near, 1))
		b, _ := plain(ctx, in(far, 1))
		assert.Equal(t, 0, a.Compare(b))
	})
}

func TestPenaltyScoringFunc(t *testing.T) {
	ctx := context.Background()
	busy := newFakeNode("busy", "")
	busy.LastStatsFunc = func() (domain.Stats, bool) {
		return domain.Stats{Players: domain.PlayersStats{Playing: 20}, CPU: domain.CPUStats{System: 0.5}}, true
	}
	idle := newFakeNode("idle", "")
	idle.LastStatsFunc = func() (domain.Stats, bool) { return domain.Stats{}, true }

	score := PenaltyScoringFunc(nil)
	sBusy, err := score(ctx, ScoringInput{Client: busy})
	require.NoError(t, err)
	sIdle, _ := score(ctx, ScoringInput{Client: idle, Guilds: make([]domain.GuildID, 50)})
	assert.Equal(t, 1, sIdle.Compare(sBusy), "load penalty beats guild count")

	noStats := newFakeNode("fresh", "")
	sFresh, _ := score(ctx, ScoringInput{Client: noStats})
	assert.Equal(t, domain.Score{float64(domain.ConnectivityConnected), 0, 0, 0}, sFresh)
}

func TestPenalty(t *testing.T) {
	assert.Zero(t, Penalty(domain.Stats{}))
	assert.InDelta(t, 3, Penalty(domain.Stats{Players: domain.PlayersStats{Playing: 3}}), 1e-9)
	// 1.05^100*10-10
	assert.InDelta(t, 1305.0, Penalty(domain.Stats{CPU: domain.CPUStats{System: 1}}), 1)

	withLoss := domain.Stats{FrameStats: []domain.PlayerFrameStats{{Success: 2900, Loss: 100}, {Success: 3000}}}
	// 1.03^(500*100/3000)*600-600
	assert.InDelta(t, 382.0, Penalty(withLoss), 0.5)
}
