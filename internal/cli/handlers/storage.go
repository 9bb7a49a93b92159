package handlers

import (
	"fmt"
	"strconv"

	"github.com/xolan/timelog/internal/cli"
)

// ValidateMonth prints a health report for a month file
func ValidateMonth(deps *cli.Deps, monthKey string) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	health, err := deps.Services.Entry.Validate(month)
	if err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "File: %s\n", health.Path)
	_, _ = fmt.Fprintf(deps.Stdout, "Total lines:       %d\n", health.TotalLines)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid entries:     %d\n", health.ValidEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Corrupted entries: %d\n", health.CorruptedEntries)
	if health.Sorted {
		_, _ = fmt.Fprintln(deps.Stdout, "Order:             most recent first")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Order:             as appended (run 'timelog sort' to reorder)")
	}

	if health.CorruptedEntries == 0 {
		cli.Successf(deps.Stdout, "OK")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	cli.Warnf(deps.Stdout, "Unparsable %s:", cli.Pluralize("line", health.CorruptedEntries))
	for _, warning := range health.Warnings {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(warning))
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Unparsable lines are kept as-is and left out of sums and listings.")
}

// RestoreBackup replaces a month file with one of its backups.
// An empty backupStr restores the most recent backup.
func RestoreBackup(deps *cli.Deps, backupStr, monthKey string) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return
	}

	backups, err := deps.Services.Entry.Backups(month)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to list backups: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No backups available for %s\n", month.Label())
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if backupStr != "" {
		num, err := strconv.Atoi(backupStr)
		if err != nil || num < 1 {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", backupStr)
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	found := false
	for _, backup := range backups {
		if backup.Number == backupNum {
			found = true
			break
		}
	}
	if !found {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup %d does not exist\n", backupNum)
		deps.Exit(1)
		return
	}

	if err := deps.Services.Entry.RestoreBackup(month, backupNum); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to restore backup: %v\n", err)
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Restored %s from backup %d", month, backupNum)
}
