// Package congestion produces the congestion readings reported by signals.
package congestion

import (
	"sync"

	"golang.org/x/exp/rand"

	"github.com/ardalan-sia/signal-sync/pkg/traffic"
)

// Source yields one congestion reading per call.
type Source interface {
	Next() int
}

// Factory builds the Source used by one signal.
type Factory func(signal int) Source

// Random draws uniform readings in [0, traffic.MaxCongestion].
// A Random is owned by a single worker and is not safe for concurrent use.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random seeded with seed.
func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

func (g *Random) Next() int {
	return g.r.Intn(traffic.MaxCongestion + 1)
}

// Seeded gives signal i its own generator seeded with base+i, so a run is
// reproducible from one seed.
func Seeded(base uint64) Factory {
	return func(signal int) Source {
		return NewRandom(base + uint64(signal))
	}
}

// Sequence replays fixed readings and then repeats the last one.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequence returns a Sequence over values. Values are clamped to
// [0, traffic.MaxCongestion]; an empty Sequence always yields 0.
func NewSequence(values ...int) *Sequence {
	vs := make([]int, len(values))
	for i, v := range values {
		vs[i] = clamp(v)
	}
	return &Sequence{values: vs}
}

func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	return v
}

// Fixed hands signal i the readings in values[i]. Signals without an entry
// always read 0.
func Fixed(values [][]int) Factory {
	return func(signal int) Source {
		if signal < len(values) {
			return NewSequence(values[signal]...)
		}
		return NewSequence()
	}
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > traffic.MaxCongestion:
		return traffic.MaxCongestion
	}
	return v
}
