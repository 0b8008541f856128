package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"retime/config"
	"retime/logger"
	"retime/report"
	"retime/shifter"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel)

	logger.Infof("input dir: %s", cfg.InputDir)
	logger.Infof("input shift_add_months: %d", cfg.AddMonths)
	logger.Infof("input shift_add_days: %d", cfg.AddDays)
	logger.Infof("input shift_older_than_cutoff: %s", cfg.Cutoff.Format("2006-01-02"))
	if !cfg.Apply {
		logger.Info("Dry run: no timestamps will be changed. Pass --apply to write them.")
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	stats, err := shifter.Run(ctx, shifter.Options{
		Root:           cfg.InputDir,
		AddMonths:      cfg.AddMonths,
		AddDays:        cfg.AddDays,
		Cutoff:         cfg.Cutoff.Time,
		Apply:          cfg.Apply,
		MaxIOPerSecond: cfg.MaxIOPerSecond,
	}, report.NewConsole(cfg.NoProgress))
	if err != nil {
		logger.Fatalf("Run aborted: %v", err)
	}

	logger.Infof("Completed: %d of %d files shifted, %d failed.", stats.FilesShifted, stats.FilesScanned, stats.FilesFailed)
}

func handleSignals(cancelFunc context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	handleSignalEvent(cancelFunc, sigChan)
}

func handleSignalEvent(cancelFunc context.CancelFunc, sigChan chan os.Signal) {
	<-sigChan
	logger.Info("Interrupt signal received. Shutting down...")
	cancelFunc()
}
