// Package signal runs the per-signal workers that compete for green.
package signal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ardalan-sia/signal-sync/pkg/congestion"
	"github.com/ardalan-sia/signal-sync/pkg/traffic"
)

// Decision is what one worker concluded in one round.
type Decision struct {
	Signal     int
	Round      int // 1-based
	Congestion int
	Green      bool
	Snapshot   []int         // table as seen right after this worker's write
	Wait       time.Duration // time spent blocked on the lock
}

// Sink consumes decisions. Workers call it while holding the lock, so
// calls never overlap.
type Sink interface {
	Decide(d Decision)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(d Decision)

func (f SinkFunc) Decide(d Decision) { f(d) }

// Worker models one signal.
type Worker struct {
	ID     int
	Rounds int
	Pause  time.Duration

	Table  *traffic.CongestionTable
	Lock   *traffic.Lock
	Source congestion.Source
	Sink   Sink
	Logger *slog.Logger

	round int
}

// Run executes the fixed number of rounds, pausing after each one.
func (w *Worker) Run(ctx context.Context) error {
	for i := 0; i < w.Rounds; i++ {
		if _, err := w.Step(ctx); err != nil {
			return err
		}
		time.Sleep(w.Pause) // simulate the signal cycle
	}
	w.logger().Debug("worker done", slog.Int("rounds", w.round))
	return nil
}

// Step runs a single round: write a fresh reading, then decide against the
// table as it stands, all under the lock.
func (w *Worker) Step(ctx context.Context) (Decision, error) {
	start := time.Now()
	if err := w.Lock.Acquire(ctx); err != nil {
		return Decision{}, fmt.Errorf("signal %d: acquire lock: %w", w.ID, err)
	}
	defer w.Lock.Release()
	wait := time.Since(start)

	w.round++
	v := w.Source.Next()
	w.Table.Write(w.ID, v)

	snap := w.Table.Snapshot()
	d := Decision{
		Signal:     w.ID,
		Round:      w.round,
		Congestion: v,
		Green:      traffic.MaxIndex(snap) == w.ID,
		Snapshot:   snap,
		Wait:       wait,
	}

	w.logger().Debug("decision",
		slog.Int("round", d.Round),
		slog.Int("congestion", v),
		slog.Bool("green", d.Green),
		slog.Duration("wait", wait),
	)
	if w.Sink != nil {
		w.Sink.Decide(d)
	}
	return d, nil
}

// Completed is the number of rounds finished so far.
func (w *Worker) Completed() int { return w.round }

func (w *Worker) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w.Logger.With(slog.Int("signal", w.ID))
}
