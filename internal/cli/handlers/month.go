// Package handlers implements the CLI commands on top of the service layer.
// Each handler writes to the injected Deps and reports failure through Deps.Exit.
package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timeutil"
)

// resolveMonth turns an optional YYYYMM argument into a month.
// An empty key selects the current month. On failure the error is printed,
// Exit(1) is called and ok is false.
func resolveMonth(deps *cli.Deps, key string) (timeutil.Month, bool) {
	if key == "" {
		return deps.Services.Entry.CurrentMonth(), true
	}

	month, err := timeutil.ParseMonth(key)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid month '%s'\n", key)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Months are written as YYYYMM, e.g. 202403")
		deps.Exit(1)
		return timeutil.Month{}, false
	}
	return month, true
}

// printError writes err with a hint matching its type
func printError(deps *cli.Deps, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)

	var validationErr *entry.ValidationError
	var indexErr *storage.IndexError
	var ioErr *storage.IOError
	switch {
	case errors.As(err, &validationErr):
		switch validationErr.Field {
		case "timestamp":
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Timestamps are written as 'YYYY-MM-DD HH:MM:SS'")
		case "amount":
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Amounts are decimal numbers, e.g. 2.5")
		}
	case errors.As(err, &indexErr):
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'timelog list' to see available indices")
	case errors.As(err, &ioErr):
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the file is accessible: %s\n", ioErr.Path)
	}
}
