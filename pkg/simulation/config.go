package simulation

import (
	"fmt"
	"time"
)

const (
	DefaultSignals = 4
	DefaultRounds  = 5
	DefaultPause   = time.Second
)

// Config fixes the shape of a run.
type Config struct {
	Signals int
	Rounds  int
	Pause   time.Duration

	// Seed drives every signal's congestion readings. Zero picks one from
	// the clock; the chosen seed is available from Simulator.Seed.
	Seed uint64
}

// DefaultConfig returns four signals cycling five times, one second apart.
func DefaultConfig() Config {
	return Config{
		Signals: DefaultSignals,
		Rounds:  DefaultRounds,
		Pause:   DefaultPause,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Signals <= 0:
		return newError(ErrCodeInvalidConfig, "validate", fmt.Errorf("signals must be positive, got %d", c.Signals))
	case c.Rounds <= 0:
		return newError(ErrCodeInvalidConfig, "validate", fmt.Errorf("rounds must be positive, got %d", c.Rounds))
	case c.Pause < 0:
		return newError(ErrCodeInvalidConfig, "validate", fmt.Errorf("pause must not be negative, got %s", c.Pause))
	}
	return nil
}
