package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
)

// LogEntry appends an entry built from the command arguments.
// The last argument is the amount, everything before it is the description.
// at optionally overrides the timestamp (YYYY-MM-DD HH:MM:SS).
func LogEntry(deps *cli.Deps, args []string, at string) {
	if len(args) < 2 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: A description and an amount are required")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: timelog log <description> <amount>")
		_, _ = fmt.Fprintln(deps.Stderr, "Example: timelog log design review 2.5")
		deps.Exit(1)
		return
	}

	description := strings.Join(args[:len(args)-1], " ")
	amount := args[len(args)-1]

	var (
		e   *entry.Entry
		err error
	)
	if at != "" {
		e, _, err = deps.Services.Entry.LogAt(at, description, amount)
	} else {
		e, _, err = deps.Services.Entry.Log(description, amount)
	}
	if err != nil {
		if errors.Is(err, service.ErrEmptyDescription) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: timelog log <description> <amount>")
		} else {
			printError(deps, err)
		}
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Logged: %s (%s)", e.Description, entry.DisplayAmount(e.Amount))
}

// ListEntries prints a month's entries, most recent first
func ListEntries(deps *cli.Deps, monthKey string) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	result, err := deps.Services.Entry.List(month)
	if err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	if len(result.Warnings) > 0 {
		cli.Warnf(deps.Stderr, "Warning: Found %d unparsable %s in %s:",
			len(result.Warnings), cli.Pluralize("line", len(result.Warnings)), deps.Services.Entry.Path(month))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}

	if len(result.Entries) == 0 {
		cli.Faintf(deps.Stdout, "No entries for %s", month.Label())
		return
	}

	cli.Header(deps.Stdout, fmt.Sprintf("Entries for %s (%s)", month.Label(), month))
	_, _ = fmt.Fprintln(deps.Stdout, cli.EntryTable(result))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s (%d %s)\n",
		entry.DisplayAmount(result.Total), result.Count, cli.Pluralize("entry", result.Count))
}

// ListRaw prints a month's raw lines, most recently appended first
func ListRaw(deps *cli.Deps, monthKey string) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	lines, err := deps.Services.Entry.Raw(month)
	if err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	if len(lines) == 0 {
		cli.Faintf(deps.Stdout, "No entries for %s", month.Label())
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
}

// EditEntry updates the entry at a 1-based index of a month's listing
func EditEntry(deps *cli.Deps, indexStr, monthKey, newDescription, newAmount string) {
	userIndex, err := strconv.Atoi(indexStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", indexStr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'timelog list' to see available indices")
		deps.Exit(1)
		return
	}

	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	e, err := deps.Services.Entry.Edit(month, userIndex, newDescription, newAmount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoChangesSpecified):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--description or --amount) is required")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
			_, _ = fmt.Fprintln(deps.Stderr, "  timelog edit <index> --description 'new text'")
			_, _ = fmt.Fprintln(deps.Stderr, "  timelog edit <index> --amount 2.5")
		case errors.Is(err, service.ErrNoEntries):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No entries found for %s\n", month.Label())
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Create an entry first with 'timelog log <description> <amount>'")
		case errors.Is(err, service.ErrInvalidIndex), errors.Is(err, service.ErrIndexOutOfRange):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'timelog list' to see all indices")
		default:
			printError(deps, err)
		}
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Updated entry %d: %s (%s)", userIndex, e.Description, entry.DisplayAmount(e.Amount))
}

// SortMonth rewrites a month file in descending order
func SortMonth(deps *cli.Deps, monthKey string) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	if err := deps.Services.Entry.Sort(month); err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Sorted %s", deps.Services.Entry.Path(month))
}
