package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

// Default values for the tunables that are not covered by the two positional
// arguments. Each can be overridden through MSETCALC_-prefixed environment
// variables (see env.go).
const (
	DefaultWorkers     = 4
	DefaultDigits      = 4
	DefaultTimeout     = 2 * time.Minute
	DefaultMaxProfiles = int64(5_000_000)
)

// AppConfig holds the full runtime configuration of the calculator.
type AppConfig struct {
	// N is the total number of candidate results (the top set size).
	N int
	// KMax is the largest per-worker result count to tabulate.
	KMax int
	// Workers is the number of independent workers w.
	Workers int
	// Exact enables the exact-model table in addition to the uniform one.
	Exact bool
	// MaxProfiles bounds the number of share profiles the exact model may
	// enumerate before the run is refused.
	MaxProfiles int64
	// Timeout bounds the wall-clock time of the exact enumeration.
	Timeout time.Duration
	// Digits is the number of digits shown after the decimal point.
	Digits int
	// Quiet suppresses banners and progress, printing table rows only.
	Quiet bool
}

// ParseConfig builds an AppConfig from the command line. The calculator takes
// exactly two positional integers, N and KMAX; everything else comes from
// environment variables so that the invocation surface stays minimal.
//
// Parameters:
//   - programName: argv[0], used in usage output.
//   - args: the command-line arguments after the program name.
//   - errWriter: destination for usage and flag-parsing messages.
//
// Returns:
//   - AppConfig: the validated configuration.
//   - error: flag.ErrHelp when help was requested, otherwise a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Workers:     DefaultWorkers,
		Exact:       true,
		MaxProfiles: DefaultMaxProfiles,
		Timeout:     DefaultTimeout,
		Digits:      DefaultDigits,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(programName, errWriter) }
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	positional := fs.Args()
	if len(positional) != 2 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("expected exactly 2 arguments (N KMAX), got %d", len(positional))
	}

	var err error
	if cfg.N, err = parsePositiveInt("N", positional[0]); err != nil {
		return AppConfig{}, err
	}
	if cfg.KMax, err = parsePositiveInt("KMAX", positional[1]); err != nil {
		return AppConfig{}, err
	}
	if cfg.KMax > cfg.N {
		return AppConfig{}, apperrors.NewConfigError("KMAX (%d) cannot exceed N (%d): a worker cannot return more results than exist", cfg.KMax, cfg.N)
	}

	applyEnvOverrides(&cfg)

	return cfg, validate(cfg)
}

// parsePositiveInt parses a positional argument that must be a positive
// integer.
func parsePositiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewConfigError("%s must be an integer, got %q", name, value)
	}
	if n < 1 {
		return 0, apperrors.NewConfigError("%s must be positive, got %d", name, n)
	}
	return n, nil
}

// validate checks the post-override configuration invariants.
func validate(cfg AppConfig) error {
	switch {
	case cfg.Workers < 1:
		return apperrors.NewConfigError("workers must be at least 1, got %d", cfg.Workers)
	case cfg.Digits < 1 || cfg.Digits > 12:
		return apperrors.NewConfigError("digits must be between 1 and 12, got %d", cfg.Digits)
	case cfg.Timeout <= 0:
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	case cfg.MaxProfiles < 0:
		return apperrors.NewConfigError("max profiles must be non-negative, got %d", cfg.MaxProfiles)
	}
	return nil
}

// printUsage writes the usage text, including the environment variables that
// stand in for flags.
func printUsage(programName string, out io.Writer) {
	fmt.Fprintf(out, "Usage: %s N KMAX\n\n", programName)
	fmt.Fprintf(out, "Prints the probability that the top-ranked of N results is missed by every\n")
	fmt.Fprintf(out, "worker, for per-worker result counts k = 1..KMAX.\n\n")
	fmt.Fprintf(out, "Environment variables:\n")
	fmt.Fprintf(out, "  MSETCALC_WORKERS       number of workers (default %d)\n", DefaultWorkers)
	fmt.Fprintf(out, "  MSETCALC_EXACT         include the exact-model table (default true)\n")
	fmt.Fprintf(out, "  MSETCALC_MAX_PROFILES  exact-model enumeration budget (default %d)\n", DefaultMaxProfiles)
	fmt.Fprintf(out, "  MSETCALC_TIMEOUT       exact-model time budget (default %s)\n", DefaultTimeout)
	fmt.Fprintf(out, "  MSETCALC_DIGITS        probability digits (default %d)\n", DefaultDigits)
	fmt.Fprintf(out, "  MSETCALC_QUIET         table rows only\n")
}
