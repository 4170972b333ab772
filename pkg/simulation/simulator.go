package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ardalan-sia/signal-sync/pkg/congestion"
	"github.com/ardalan-sia/signal-sync/pkg/report"
	"github.com/ardalan-sia/signal-sync/pkg/signal"
	"github.com/ardalan-sia/signal-sync/pkg/traffic"
)

// Simulator owns the shared table and lock and runs one worker per signal.
type Simulator struct {
	Table   *traffic.CongestionTable
	Lock    *traffic.Lock
	Workers []*signal.Worker

	id      string
	cfg     Config
	seed    uint64
	logger  *slog.Logger
	sinks   report.Multi
	sources congestion.Factory

	mu    sync.Mutex
	state State
}

// NewSimulator allocates the shared resources and builds the workers.
func NewSimulator(cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		id:   uuid.New().String(),
		cfg:  cfg,
		seed: cfg.Seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	if s.sources == nil {
		s.sources = congestion.Seeded(s.seed)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	s.logger = s.logger.With(slog.String("run", s.id))

	table, err := traffic.NewCongestionTable(cfg.Signals)
	if err != nil {
		return nil, newError(ErrCodeResourceAllocation, "allocate table", err)
	}
	s.Table = table
	s.Lock = traffic.NewLock()

	for i := 0; i < cfg.Signals; i++ {
		src := s.sources(i)
		if src == nil {
			return nil, newError(ErrCodeResourceAllocation, "allocate source", fmt.Errorf("no congestion source for signal %d", i))
		}
		s.Workers = append(s.Workers, &signal.Worker{
			ID:     i,
			Rounds: cfg.Rounds,
			Pause:  cfg.Pause,
			Table:  s.Table,
			Lock:   s.Lock,
			Source: src,
			Sink:   s.sinks,
			Logger: s.logger,
		})
	}

	s.logger.Debug("simulator ready",
		slog.Int("signals", cfg.Signals),
		slog.Int("rounds", cfg.Rounds),
		slog.Uint64("seed", s.seed),
	)
	return s, nil
}

// ID identifies this run in logs.
func (s *Simulator) ID() string { return s.id }

// Seed is the seed actually used for the random readings.
func (s *Simulator) Seed() uint64 { return s.seed }

// State returns the current lifecycle phase.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run starts every worker, waits for all of them and releases the shared
// resources. It can only be called once.
func (s *Simulator) Run() error {
	if err := s.transition(Running, Init); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, w := range s.Workers {
		w := w
		g.Go(func() error {
			defer s.advance(Draining, Running)
			return w.Run(ctx)
		})
	}

	err := g.Wait()
	// a lone worker can finish before Draining is ever observed
	s.advance(Draining, Running)

	s.teardown()
	s.advance(Terminated, Draining)
	return s.finish(err)
}

// finish tells the sinks the run completed. A failed run is reported as an
// error only, never as a completed simulation.
func (s *Simulator) finish(err error) error {
	if err != nil {
		s.logger.Error("simulation aborted", slog.Any("err", err))
		return newError(ErrCodeWorkerFailed, "run", err)
	}
	s.sinks.Finish()
	return nil
}

func (s *Simulator) teardown() {
	s.Table = nil
	s.Lock = nil
	for _, w := range s.Workers {
		w.Table, w.Lock = nil, nil
	}
}

// transition moves to next only from one of the given states.
func (s *Simulator) transition(next State, from ...State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range from {
		if s.state == f {
			s.logger.Info("simulation state", slog.String("from", f.String()), slog.String("to", next.String()))
			s.state = next
			return nil
		}
	}
	return newError(ErrCodeInvalidState, "transition", fmt.Errorf("cannot move from %s to %s", s.state, next))
}

// advance is transition for moves that may already have happened, such as
// every worker after the first trying to enter Draining.
func (s *Simulator) advance(next State, from ...State) {
	if err := s.transition(next, from...); err != nil {
		s.logger.Debug("state unchanged", slog.String("want", next.String()), slog.Any("err", err))
	}
}
