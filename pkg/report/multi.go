package report

import "github.com/ardalan-sia/signal-sync/pkg/signal"

// Finisher is implemented by sinks that want to know when a run is over.
type Finisher interface {
	Finish()
}

// Multi fans decisions out to several sinks, in order.
type Multi []signal.Sink

func (m Multi) Decide(d signal.Decision) {
	for _, s := range m {
		s.Decide(d)
	}
}

// Finish forwards to every sink that implements Finisher.
func (m Multi) Finish() {
	for _, s := range m {
		if f, ok := s.(Finisher); ok {
			f.Finish()
		}
	}
}
