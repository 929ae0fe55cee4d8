package domain

import "encoding/json"

// PlayersStats counts players on a node.
type PlayersStats struct {
	Total   int `json:"total"`
	Playing int `json:"playing"`
}

// CPUStats is the CPU load (0..1) of the Andesite process and of the whole host.
type CPUStats struct {
	Andesite float64 `json:"andesite"`
	System   float64 `json:"system"`
}

// OSStats describes the host.
type OSStats struct {
	Processors int    `json:"processors"`
	Name       string `json:"name"`
	Arch       string `json:"arch"`
	Version    string `json:"version"`
}

// MemoryUsage is one JVM memory usage block.
type MemoryUsage struct {
	Init      int64 `json:"init"`
	Used      int64 `json:"used"`
	Committed int64 `json:"committed"`
	Max       int64 `json:"max"`
}

// MemoryStats holds heap and non heap usage.
type MemoryStats struct {
	PendingFinalization int         `json:"pendingFinalization"`
	Heap                MemoryUsage `json:"heap"`
	NonHeap             MemoryUsage `json:"nonHeap"`
}

// ThreadStats counts JVM threads.
type ThreadStats struct {
	Running      int `json:"running"`
	Daemon       int `json:"daemon"`
	Peak         int `json:"peak"`
	TotalStarted int `json:"totalStarted"`
}

// PlayerFrameStats is the frame counter of one player as found in Stats.FrameStats.
type PlayerFrameStats struct {
	User    UserID  `json:"user"`
	Guild   GuildID `json:"guild"`
	Success int     `json:"success"`
	Loss    int     `json:"loss"`
}

// Stats is the node statistics payload (REST /stats and the "stats" websocket op).
// Sections this client does not interpret (runtime, gc, memory pools, ...) stay in Extra.
type Stats struct {
	Players    PlayersStats               `json:"players"`
	CPU        CPUStats                   `json:"cpu"`
	OS         OSStats                    `json:"os"`
	Memory     MemoryStats                `json:"memory"`
	Thread     ThreadStats                `json:"thread"`
	FrameStats []PlayerFrameStats         `json:"frameStats"`
	Extra      map[string]json.RawMessage `json:"-"`
}

var knownStatsKeys = map[string]struct{}{
	"players": {}, "cpu": {}, "os": {}, "memory": {}, "thread": {}, "frameStats": {},
}

func (s *Stats) UnmarshalJSON(b []byte) error {
	type plain Stats
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for k := range knownStatsKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	*s = Stats(p)
	return nil
}

// FrameTotals sums success and loss over every player of the node.
func (s Stats) FrameTotals() (success, loss int) {
	for _, f := range s.FrameStats {
		success += f.Success
		loss += f.Loss
	}
	return success, loss
}
