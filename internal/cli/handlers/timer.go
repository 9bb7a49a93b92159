package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/timer"
)

// StartTimer starts a new timer
func StartTimer(deps *cli.Deps, description string, force bool) {
	state, existing, err := deps.Services.Timer.Start(description, force)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTimerRunning) && existing != nil:
			cli.Warnf(deps.Stderr, "Warning: A timer is already running")
			_, _ = fmt.Fprintf(deps.Stderr, "Current timer: %s\n", existing.Description)
			_, _ = fmt.Fprintf(deps.Stderr, "Started: %s\n",
				cli.FormatTimerStartTime(existing.StartedAt, deps.Services.Entry.Now()))
			_, _ = fmt.Fprintln(deps.Stderr)
			_, _ = fmt.Fprintln(deps.Stderr, "Options:")
			_, _ = fmt.Fprintln(deps.Stderr, "  - Stop the current timer with 'timelog stop'")
			_, _ = fmt.Fprintln(deps.Stderr, "  - Override with 'timelog start <description> --force'")
		case errors.Is(err, service.ErrEmptyDescription):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: timelog start <description>")
			_, _ = fmt.Fprintln(deps.Stderr, "Example: timelog start fixing authentication bug")
		default:
			printError(deps, err)
		}
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Timer started: %s", state.Description)
	if force && existing != nil {
		_, _ = fmt.Fprintln(deps.Stdout, "(Previous timer was overwritten)")
	}
}

// StopTimer stops the current timer and logs its elapsed hours
func StopTimer(deps *cli.Deps) {
	e, state, err := deps.Services.Timer.Stop()
	if err != nil {
		if errors.Is(err, service.ErrNoTimer) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: No timer is running")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start a timer with 'timelog start <description>'")
		} else {
			printError(deps, err)
			_, _ = fmt.Fprintln(deps.Stderr, "The timer is still running.")
		}
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Stopped: %s (%s)", state.Description, entry.DisplayAmount(e.Amount))
}

// CancelTimer discards the running timer without logging it
func CancelTimer(deps *cli.Deps) {
	state, err := deps.Services.Timer.Cancel()
	if err != nil {
		if errors.Is(err, service.ErrNoTimer) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: No timer is running")
		} else {
			printError(deps, err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Timer cancelled: %s\n", state.Description)
}

// ShowTimerStatus shows the current timer status
func ShowTimerStatus(deps *cli.Deps) {
	status, err := deps.Services.Timer.Status()
	if err != nil {
		printError(deps, err)
		deps.Exit(1)
		return
	}

	if !status.Running || status.State == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running")
		_, _ = fmt.Fprintln(deps.Stdout, "Start a timer with: timelog start <description>")
		return
	}

	state := status.State
	_, _ = fmt.Fprintln(deps.Stdout, "Timer running:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", state.Description)
	_, _ = fmt.Fprintf(deps.Stdout, "  Started: %s\n",
		cli.FormatTimerStartTime(state.StartedAt, deps.Services.Entry.Now()))
	_, _ = fmt.Fprintf(deps.Stdout, "  Elapsed: %s (%s so far)\n",
		timer.FormatElapsed(status.ElapsedTime), entry.DisplayAmount(timer.Hours(status.ElapsedTime)))
}
