package traffic

import "fmt"

const (
	// MaxCongestion is the upper bound of a congestion reading.
	MaxCongestion = 100
	// Unreported marks a signal that has not written yet. It is below every
	// reading, so a scan for the maximum only ever picks written slots.
	Unreported = -1
)

// CongestionTable is the per-signal congestion shared by all workers.
// It does not lock itself: callers must hold the Lock that guards it.
type CongestionTable struct {
	levels []int // index = signal
}

// NewCongestionTable allocates a table for n signals, all Unreported.
func NewCongestionTable(n int) (*CongestionTable, error) {
	if n <= 0 {
		return nil, fmt.Errorf("congestion table needs at least one signal, got %d", n)
	}
	levels := make([]int, n)
	for i := range levels {
		levels[i] = Unreported
	}
	return &CongestionTable{levels: levels}, nil
}

// Len is the number of signals.
func (t *CongestionTable) Len() int { return len(t.levels) }

// Write stores the congestion of one signal.
func (t *CongestionTable) Write(signal, value int) {
	t.check(signal)
	t.levels[signal] = value
}

// Read returns the congestion of one signal.
func (t *CongestionTable) Read(signal int) int {
	t.check(signal)
	return t.levels[signal]
}

// Snapshot copies the whole table.
func (t *CongestionTable) Snapshot() []int {
	out := make([]int, len(t.levels))
	copy(out, t.levels)
	return out
}

func (t *CongestionTable) check(signal int) {
	if signal < 0 || signal >= len(t.levels) {
		panic(fmt.Sprintf("traffic: signal %d out of range [0, %d)", signal, len(t.levels)))
	}
}

// MaxIndex returns the index of the largest value, or -1 for an empty slice.
// Ties go to the lowest index.
func MaxIndex(values []int) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
