package service

import (
	"fmt"
	"io"

	"ftracker/internal/config"
	"ftracker/internal/report"
	"ftracker/internal/workout"
)

// Package is one sensor package: a kind code and its positional readings
type Package struct {
	Code string
	Data []float64
}

// Tracker turns sensor packages into workout summaries
type Tracker struct {
	out     io.Writer
	display config.DisplayConfig
}

// NewTracker creates a tracker writing to out
func NewTracker(out io.Writer, display config.DisplayConfig) *Tracker {
	if display.Style == "" {
		display.Style = config.StylePlain
	}
	return &Tracker{out: out, display: display}
}

// Process builds a summary for every package, stopping at the first failure
func (t *Tracker) Process(pkgs []Package) ([]report.InfoMessage, error) {
	msgs := make([]report.InfoMessage, 0, len(pkgs))
	for i, pkg := range pkgs {
		w, err := workout.ReadPackage(pkg.Code, pkg.Data)
		if err != nil {
			return nil, fmt.Errorf("package %d (%s): %w", i, pkg.Code, err)
		}
		msgs = append(msgs, workout.ShowTrainingInfo(w))
	}
	return msgs, nil
}

// Run processes the packages and writes one line per workout.
// Styled display adds a summary card, and Chart adds a calories plot.
func (t *Tracker) Run(pkgs []Package) error {
	msgs, err := t.Process(pkgs)
	if err != nil {
		return err
	}

	for _, m := range msgs {
		if _, err := fmt.Fprintln(t.out, m.Message()); err != nil {
			return fmt.Errorf("writing message: %w", err)
		}
	}

	if t.display.Style == config.StyleStyled {
		if _, err := fmt.Fprintln(t.out, report.RenderSummary(msgs)); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	if t.display.Chart {
		if chart := report.CaloriesChart(msgs); chart != "" {
			if _, err := fmt.Fprintln(t.out, chart); err != nil {
				return fmt.Errorf("writing chart: %w", err)
			}
		}
	}

	return nil
}
