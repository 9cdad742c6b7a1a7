// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayUniformTable], [DisplayExactTable], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatUniformRow], [FormatExactRow].
//
//   - Print* functions write informational banners to an [io.Writer].
//     Examples: [PrintRunHeader], [PrintExactHeader].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/agbru/msetcalc/internal/config"
	"github.com/agbru/msetcalc/internal/format"
	"github.com/agbru/msetcalc/internal/prob"
	"github.com/agbru/msetcalc/internal/ui"
)

// PrintRunHeader displays the run parameters before any table is printed.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintRunHeader(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Miss Probability Estimation ---\n")
	fmt.Fprintf(out, "Top %s%d%s results split across %s%d%s workers, tabulating k = 1..%s%d%s results per worker.\n",
		ui.ColorPrimary(), cfg.N, ui.ColorReset(),
		ui.ColorPrimary(), cfg.Workers, ui.ColorReset(),
		ui.ColorPrimary(), cfg.KMax, ui.ColorReset())
}

// FormatUniformRow formats one row of the uniform-model table.
//
// Parameters:
//   - row: The table row (per-worker count and miss probability).
//   - kWidth: The column width for the count, for aligned output.
//   - digits: The number of digits after the decimal point.
//
// Returns:
//   - string: The formatted row without a trailing newline.
func FormatUniformRow(row prob.Row, kWidth, digits int) string {
	return fmt.Sprintf("k = %*d: miss probability %s", kWidth, row.K, format.FormatProbability(row.Prob, digits))
}

// DisplayUniformTable drains the lazy uniform-model table and prints one line
// per row.
//
// Parameters:
//   - table: The lazy table produced by the estimator.
//   - cfg: The application configuration (digits, quiet).
//   - out: The writer for standard output.
func DisplayUniformTable(table *prob.Table, cfg config.AppConfig, out io.Writer) {
	if !cfg.Quiet {
		fmt.Fprintf(out, "\n%sUniform model%s (each worker draws a random k-subset):\n",
			ui.ColorUnderline(), ui.ColorReset())
	}
	kWidth := len(fmt.Sprint(cfg.KMax))
	for {
		row, ok := table.Next()
		if !ok {
			return
		}
		fmt.Fprintln(out, FormatUniformRow(row, kWidth, cfg.Digits))
	}
}

// PrintExactHeader announces the exact-model computation and its size.
//
// Parameters:
//   - cfg: The application configuration.
//   - profiles: The number of share profiles the enumeration will visit.
//   - out: The writer for standard output.
func PrintExactHeader(cfg config.AppConfig, profiles *big.Int, out io.Writer) {
	fmt.Fprintf(out, "\n%sExact model%s (top results distributed uniformly over workers, %s%s%s profiles):\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorSecondary(), format.FormatBigCount(profiles), ui.ColorReset())
}

// FormatExactRow formats one row of the exact-model table in the form
// "Probability of C or more of top N from one of W sets is P."
//
// Parameters:
//   - row: The exact-model row.
//   - n: The total number of top results.
//   - w: The number of workers.
//   - countWidth: The column width for the count.
//   - digits: The number of digits after the decimal point.
//
// Returns:
//   - string: The formatted row without a trailing newline.
func FormatExactRow(row prob.ExactRow, n, w, countWidth, digits int) string {
	return fmt.Sprintf("Probability of %*d or more of top %d from one of %d sets is %s.",
		countWidth, row.Count, n, w, format.FormatProbability(row.Prob, digits))
}

// DisplayExactTable prints the collected exact-model rows.
//
// Parameters:
//   - rows: The exact-model rows, in ascending count order.
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func DisplayExactTable(rows []prob.ExactRow, cfg config.AppConfig, out io.Writer) {
	countWidth := len(fmt.Sprint(cfg.N))
	for _, row := range rows {
		fmt.Fprintln(out, FormatExactRow(row, cfg.N, cfg.Workers, countWidth, cfg.Digits))
	}
}

// DisplayCompletion prints the elapsed wall-clock time of a computation.
func DisplayCompletion(label string, elapsed time.Duration, out io.Writer) {
	fmt.Fprintf(out, "%s%s computed in %s%s\n",
		ui.ColorSecondary(), label, format.FormatExecutionDuration(elapsed), ui.ColorReset())
}

// DisplayError prints a user-facing error message to the error writer.
// The distinction between a computed probability of zero and an error is
// preserved: errors never print a table row.
func DisplayError(err error, out io.Writer) {
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
}
