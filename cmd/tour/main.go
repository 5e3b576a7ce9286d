// Command tour runs the Go language tour: every lesson in order, printed to
// stdout. Logs go to stderr.
//
// Usage:
//
//	tour [-config tour.yaml] [-list]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/randalmurphal/gotour/pkg/lessons"
	"github.com/randalmurphal/gotour/pkg/tour"
	"github.com/randalmurphal/gotour/pkg/tour/journal"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command so tests can drive it with their own writers.
func run(stdout, stderr io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("tour", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
tour - runs every lesson of the Go tour, in order.

Usage:
  tour [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configPath := flagSet.String("config", "", "Path to a .yaml, .yml, .json or .hcl config file.")
	list := flagSet.Bool("list", false, "Print the example names and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	s, err := loadSettings(*configPath)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(s)
	if err != nil {
		return err
	}

	if *list {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	logger := newLogger(s.logLevel, s.logFormat, stderr)
	return runTour(stdout, logger, reg, s)
}

// buildRegistry assembles the lessons, the optional faults and the "only" filter.
func buildRegistry(s settings) (*tour.Registry, error) {
	reg := lessons.Registry()
	if s.includeFaults {
		reg.Append(lessons.Faults())
	}
	if len(s.only) == 0 {
		return reg, nil
	}
	return reg.Select(s.only...)
}

func runTour(stdout io.Writer, logger *slog.Logger, reg *tour.Registry, s settings) (err error) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	shutdown := setupTelemetry(logger, s.metrics, s.tracing)
	defer func() {
		if serr := shutdown(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}()

	ctxOpts := []tour.ContextOption{tour.WithOutput(stdout), tour.WithLogger(logger)}
	if s.runID != "" {
		ctxOpts = append(ctxOpts, tour.WithContextRunID(s.runID))
	}
	tctx := tour.NewContext(ctx, ctxOpts...)

	opts := []tour.RunOption{
		tour.WithObservabilityLogger(logger),
		tour.WithMetrics(s.metrics),
		tour.WithTracing(s.tracing),
	}

	if s.journal == "" {
		_, err = tour.RunAll(tctx, reg, opts...)
		return err
	}

	store, err := journal.NewSQLiteStore(s.journal)
	if err != nil {
		return err
	}
	defer store.Close()

	if s.resume {
		_, err = tour.Resume(tctx, reg, store, s.runID, opts...)
		return err
	}

	runID := s.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger.Info("journaling run", slog.String("run_id", runID), slog.String("journal", s.journal))

	opts = append(opts, tour.WithJournal(store), tour.WithRunID(runID))
	_, err = tour.RunAll(tctx, reg, opts...)
	return err
}
