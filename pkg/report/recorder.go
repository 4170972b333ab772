package report

import (
	"sync"

	"github.com/ardalan-sia/signal-sync/pkg/signal"
)

// Recorder keeps every decision in arrival order.
type Recorder struct {
	mu        sync.Mutex
	decisions []signal.Decision
	finished  bool
}

func (r *Recorder) Decide(d signal.Decision) {
	r.mu.Lock()
	r.decisions = append(r.decisions, d)
	r.mu.Unlock()
}

func (r *Recorder) Finish() {
	r.mu.Lock()
	r.finished = true
	r.mu.Unlock()
}

// Decisions returns a copy of what was recorded.
func (r *Recorder) Decisions() []signal.Decision {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]signal.Decision, len(r.decisions))
	copy(out, r.decisions)
	return out
}

// Finished reports whether Finish was called.
func (r *Recorder) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}
