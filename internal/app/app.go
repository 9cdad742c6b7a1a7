// Package app wires configuration, engine, estimator, and presentation into
// the msetcalc application.
package app

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/msetcalc/internal/cli"
	"github.com/agbru/msetcalc/internal/config"
	apperrors "github.com/agbru/msetcalc/internal/errors"
	"github.com/agbru/msetcalc/internal/logging"
	"github.com/agbru/msetcalc/internal/prob"
	"github.com/agbru/msetcalc/internal/ui"
)

// Application represents the msetcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments
// and environment overrides.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "msetcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application: the uniform-model table for k = 1..KMAX,
// then (unless disabled) the exact-model table. Returns the process exit
// code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(false)

	if !a.Config.Quiet {
		cli.PrintRunHeader(a.Config, out)
	}

	estimator := prob.New()

	start := time.Now()
	table, err := estimator.CumulativeTable(a.Config.N, a.Config.Workers, a.Config.KMax)
	if err != nil {
		return a.fail(err)
	}
	cli.DisplayUniformTable(table, a.Config, out)
	a.Logger.Debug("uniform table computed",
		logging.Int("n", a.Config.N),
		logging.Int("workers", a.Config.Workers),
		logging.Int("k_max", a.Config.KMax),
		logging.Float64("seconds", time.Since(start).Seconds()))

	if a.Config.Exact {
		return a.runExact(ctx, estimator, out)
	}
	return apperrors.ExitSuccess
}

// fail reports an error to the user and maps it to an exit code.
func (a *Application) fail(err error) int {
	a.Logger.Error("run failed", err)
	cli.DisplayError(err, a.ErrWriter)
	return apperrors.ExitCodeFor(err)
}
