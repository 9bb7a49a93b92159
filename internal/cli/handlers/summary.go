package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/timeutil"
)

// ShowSum prints the count and total of a month
func ShowSum(deps *cli.Deps, monthKey string) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	summary, err := deps.Services.Summary.Month(month)
	if err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s: %s (%d %s)\n",
		month.Label(), entry.DisplayAmount(summary.Total), summary.Count, cli.Pluralize("entry", summary.Count))
	if summary.Corrupted > 0 {
		cli.Warnf(deps.Stderr, "Warning: %d unparsable %s not counted",
			summary.Corrupted, cli.Pluralize("line", summary.Corrupted))
	}
}

// ShowYear prints per-month totals for a year. An empty yearStr selects the
// year of the current month.
func ShowYear(ctx context.Context, deps *cli.Deps, yearStr string) {
	year := deps.Services.Entry.CurrentMonth().Year
	if yearStr != "" {
		y, err := timeutil.ParseYear(yearStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid year '%s'\n", yearStr)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Years are written as YYYY, e.g. 2024")
			deps.Exit(1)
			return
		}
		year = y
	}

	summary, err := deps.Services.Summary.Year(ctx, year)
	if err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	cli.Header(deps.Stdout, fmt.Sprintf("Summary for %d", year))
	_, _ = fmt.Fprintln(deps.Stdout, cli.SummaryTable(summary))
}

