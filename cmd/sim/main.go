package main

import (
	"log/slog"
	"os"

	"github.com/ardalan-sia/signal-sync/pkg/report"
	"github.com/ardalan-sia/signal-sync/pkg/simulation"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := simulation.DefaultConfig()

	stats := report.NewStats(cfg.Signals, cfg.Rounds)
	console := report.NewConsole(os.Stdout)
	console.Summary = stats

	sim, err := simulation.NewSimulator(cfg,
		simulation.WithLogger(logger),
		simulation.WithSink(stats),
		simulation.WithSink(console),
	)
	if err != nil {
		logger.Error("cannot set up simulation", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("starting simulation", slog.Int("signals", cfg.Signals), slog.Uint64("seed", sim.Seed()))

	console.Banner()
	if err := sim.Run(); err != nil {
		logger.Error("simulation failed", slog.Any("err", err))
		os.Exit(1)
	}
}
