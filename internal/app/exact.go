package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/msetcalc/internal/cli"
	apperrors "github.com/agbru/msetcalc/internal/errors"
	"github.com/agbru/msetcalc/internal/logging"
	"github.com/agbru/msetcalc/internal/multiset"
	"github.com/agbru/msetcalc/internal/prob"
)

// runExact computes and prints the exact-model table. The enumeration cost
// grows with the number of share profiles, so the run is guarded by a profile
// budget and a wall-clock timeout.
func (a *Application) runExact(ctx context.Context, estimator *prob.Estimator, out io.Writer) int {
	profiles, err := estimator.Calculator().PartitionsMax(a.Config.N, a.Config.Workers)
	if err != nil {
		return a.fail(err)
	}
	count, err := multiset.Int64(profiles)
	if err != nil || count > a.Config.MaxProfiles {
		if err == nil {
			err = apperrors.NewConfigError(
				"exact model needs %d share profiles, budget is %d (raise MSETCALC_MAX_PROFILES)",
				count, a.Config.MaxProfiles)
		} else {
			err = apperrors.WrapError(err, "exact model enumeration budget check")
		}
		return a.fail(err)
	}

	// Lifecycle: wall-clock bound plus SIGINT/SIGTERM.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExactHeader(a.Config, profiles, out)
	}

	spin := cli.NewNullSpinner()
	if !a.Config.Quiet {
		spin = cli.NewSpinner(a.ErrWriter, "enumerating share profiles...")
	}

	start := time.Now()
	rows, err := a.collectExactRows(ctx, estimator, spin)
	elapsed := time.Since(start)
	if err != nil {
		return a.fail(err)
	}

	a.Logger.Debug("exact table computed",
		logging.Int("rows", len(rows)),
		logging.Int("profiles", int(count)),
		logging.Float64("seconds", elapsed.Seconds()))

	cli.DisplayExactTable(rows, a.Config, out)
	if !a.Config.Quiet {
		cli.DisplayCompletion("Exact table", elapsed, out)
	}
	return apperrors.ExitSuccess
}

// collectExactRows drains the lazy exact table, checking the context between
// rows. The engine itself is pure and uncancellable; cancellation is handled
// at this boundary.
func (a *Application) collectExactRows(ctx context.Context, estimator *prob.Estimator, spin cli.Spinner) ([]prob.ExactRow, error) {
	table, err := estimator.ExactTable(a.Config.N, a.Config.Workers)
	if err != nil {
		return nil, err
	}

	spin.Start()
	defer spin.Stop()

	var rows []prob.ExactRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, ok := table.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	if err := table.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
