package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/maps"

	"github.com/ardalan-sia/signal-sync/pkg/signal"
)

// SignalStats aggregates the decisions of one signal.
type SignalStats struct {
	Signal int
	Rounds int
	Greens int
	Last   int
	Peak   int
}

// Stats counts decisions per signal and tracks how long workers waited
// for the lock.
type Stats struct {
	mu      sync.Mutex
	signals map[int]*SignalStats
	wait    *tachymeter.Tachymeter
}

// NewStats sizes the wait sampler for signals*rounds decisions.
func NewStats(signals, rounds int) *Stats {
	size := signals * rounds
	if size <= 0 {
		size = 1
	}
	return &Stats{
		signals: make(map[int]*SignalStats),
		wait:    tachymeter.New(&tachymeter.Config{Size: size}),
	}
}

func (s *Stats) Decide(d signal.Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.signals[d.Signal]
	if !ok {
		st = &SignalStats{Signal: d.Signal}
		s.signals[d.Signal] = st
	}
	st.Rounds++
	if d.Green {
		st.Greens++
	}
	st.Last = d.Congestion
	if d.Congestion > st.Peak {
		st.Peak = d.Congestion
	}
	s.wait.AddTime(d.Wait)
}

// Signals returns the per-signal totals ordered by signal index.
func (s *Stats) Signals() []SignalStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	// map order is random, sort for stable output
	keys := maps.Keys(s.signals)
	slices.Sort(keys)
	out := make([]SignalStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, *s.signals[k])
	}
	return out
}

// Decisions is the total number of decisions seen.
func (s *Stats) Decisions() int {
	total := 0
	for _, st := range s.Signals() {
		total += st.Rounds
	}
	return total
}

// Wait returns the median and 99th percentile lock wait.
func (s *Stats) Wait() (p50, p99 time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.wait.Calc()
	return m.Time.P50, m.Time.P99
}

// Render writes the summary as a table.
func (s *Stats) Render(w io.Writer) {
	rows := s.Signals()
	p50, p99 := s.Wait()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Signal", "Rounds", "Green", "Last", "Peak"})
	for _, st := range rows {
		table.Append([]string{
			strconv.Itoa(st.Signal + 1),
			strconv.Itoa(st.Rounds),
			strconv.Itoa(st.Greens),
			strconv.Itoa(st.Last),
			strconv.Itoa(st.Peak),
		})
	}
	table.Render()
	fmt.Fprintf(w, "Lock wait p50=%s p99=%s\n", p50, p99)
}
