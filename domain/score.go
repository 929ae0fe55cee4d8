package domain

// Connectivity ranks a client's connection state, worst first.
type Connectivity int

const (
	ConnectivityClosed Connectivity = iota
	ConnectivityDisconnected
	ConnectivityConnected
)

func (c Connectivity) String() string {
	switch c {
	case ConnectivityClosed:
		return "closed"
	case ConnectivityDisconnected:
		return "disconnected"
	case ConnectivityConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Score is a tuple compared lexicographically; higher wins. A shorter tuple that is a prefix of a
// longer one compares lower.
type Score []float64

// Compare returns -1, 0 or 1.
func (s Score) Compare(other Score) int {
	for i := 0; i < len(s) && i < len(other); i++ {
		switch {
		case s[i] < other[i]:
			return -1
		case s[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(s) < len(other):
		return -1
	case len(s) > len(other):
		return 1
	}
	return 0
}
