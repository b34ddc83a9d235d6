package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"ftracker/internal/config"
	"ftracker/internal/service"
)

// packages are the sample sensor readings processed on every run
var packages = []service.Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer) error {
	cfg := loadConfig()

	tracker := service.NewTracker(out, cfg.Display)
	if err := tracker.Run(packages); err != nil {
		return fmt.Errorf("processing packages: %w", err)
	}

	return nil
}

// loadConfig returns the user's display settings, or the defaults when the
// config file is missing, unreadable or invalid. Display settings never
// stop the packages from being processed.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		return config.DefaultConfig()
	}
	if err != nil {
		log.Printf("loading config: %v; using defaults", err)
		return config.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("invalid config: %v; using defaults", err)
		return config.DefaultConfig()
	}

	return *cfg
}
