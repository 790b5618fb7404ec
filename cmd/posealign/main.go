// Command posealign compares a user's performance of a movement against an
// ideal reference: both landmark sequences are normalized, time-aligned with
// dynamic time warping and scored frame by frame on joint angles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/katalvlaran/posealign/analysis"
	"github.com/katalvlaran/posealign/dtw"
	"github.com/katalvlaran/posealign/internal/config"
	"github.com/katalvlaran/posealign/internal/poseio"
	"github.com/katalvlaran/posealign/internal/render"
)

// errUsage marks command-line mistakes, which exit with status 2.
var errUsage = errors.New("usage error")

// output is the JSON document written for one run.
type output struct {
	RunID string `json:"run_id"`
	Ideal string `json:"ideal"`
	User  string `json:"user"`
	*analysis.Report
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "posealign: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "posealign: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("posealign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		idealFile  = fs.String("ideal", "", "Ideal (reference) sequence JSON file")
		userFile   = fs.String("user", "", "User sequence JSON file")
		configFile = fs.String("config", "", "Optional JSON config file")
		mode       = fs.String("mode", "", "Alignment mode: banded, unconstrained or ratio (overrides config)")
		bandRatio  = fs.Float64("band-ratio", 0, "Sakoe-Chiba band ratio, > 0 (overrides config)")
		outFile    = fs.String("out", "", "Write the report to this file instead of stdout")
		plotDir    = fs.String("plot", "", "Directory for alignment and score PNG charts")
		verbose    = fs.Bool("v", false, "Debug logging")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "posealign - align and score a pose sequence against a reference\n\n")
		fmt.Fprintf(stderr, "usage: posealign -ideal ideal.json -user user.json [options]\n\n")
		fmt.Fprintf(stderr, "options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *idealFile == "" || *userFile == "" {
		fs.Usage()
		return fmt.Errorf("%w: -ideal and -user are required", errUsage)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).With("run_id", runID)

	cfg := config.Empty()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
		logger.Debug("Loaded config", "path", *configFile)
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			if _, err := dtw.ParseMode(*mode); err != nil {
				flagErr = fmt.Errorf("%w: %v", errUsage, err)
			}
			cfg.Mode = mode
		case "band-ratio":
			cfg.BandRatio = bandRatio
		}
	})
	if flagErr != nil {
		return flagErr
	}
	opts, err := cfg.AnalysisOptions()
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ideal, err := poseio.LoadSequence(*idealFile)
	if err != nil {
		return fmt.Errorf("load ideal: %w", err)
	}
	user, err := poseio.LoadSequence(*userFile)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	logger.Debug("Loaded sequences", "ideal_frames", len(ideal), "user_frames", len(user))

	rep, err := analysis.Compare(ideal, user, opts)
	if err != nil {
		return err
	}

	attrs := []any{
		"mode", rep.Alignment.Mode,
		"outcome", rep.Alignment.Outcome,
		"ideal_frames", rep.IdealFrames,
		"user_frames", rep.UserFrames,
		"overall", rep.Overall,
	}
	if rep.Alignment.Mode == dtw.Banded {
		attrs = append(attrs, "band_width", rep.Alignment.BandWidth)
	}
	if rep.Alignment.Outcome == dtw.OutcomeFallback {
		logger.Warn("Band too narrow, used ratio mapping", attrs...)
	} else {
		logger.Info("Alignment completed", attrs...)
	}

	doc := output{RunID: runID, Ideal: *idealFile, User: *userFile, Report: rep}
	if *outFile != "" {
		if err := poseio.SaveReport(*outFile, doc); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("Report written", "path", *outFile)
	} else if err := poseio.WriteReport(stdout, doc); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if *plotDir != "" {
		paths, err := render.WriteAll(*plotDir, rep)
		switch {
		case errors.Is(err, render.ErrNothingToPlot):
			logger.Warn("Plots skipped: no user frames")
		case err != nil:
			return fmt.Errorf("plot: %w", err)
		default:
			logger.Info("Plots written", "dir", *plotDir, "files", len(paths))
		}
	}

	return nil
}
