package simulation

import (
	"log/slog"

	"github.com/ardalan-sia/signal-sync/pkg/congestion"
	"github.com/ardalan-sia/signal-sync/pkg/signal"
)

// Option customizes a Simulator.
type Option func(*Simulator)

// WithLogger sets the structured logger. Records get a "run" attribute.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithSink adds a decision sink. Sinks run in the order they are added.
func WithSink(sink signal.Sink) Option {
	return func(s *Simulator) { s.sinks = append(s.sinks, sink) }
}

// WithSources overrides the seeded random readings.
func WithSources(f congestion.Factory) Option {
	return func(s *Simulator) { s.sources = f }
}
