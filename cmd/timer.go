package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

var forceFlag bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <description>",
	Short: "Start a timer for a task",
	Long: `Start a timer for a task with the given description.
The timer runs until you stop it with 'timelog stop', which logs the elapsed
time in hours (one decimal, at least 0.1) to the month of the stop time.

Timer state persists across terminal sessions.

Examples:
  timelog start fixing authentication bug
  timelog start code review --force`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.StartTimer(cli.GetDeps(), strings.Join(args, " "), forceFlag)
	},
}

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and log the elapsed hours",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.StopTimer(cli.GetDeps())
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowTimerStatus(cli.GetDeps())
	},
}

// cancelCmd represents the cancel command
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the running timer without logging it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.CancelTimer(cli.GetDeps())
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(cancelCmd)

	startCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "override existing timer if one is already running")
}
