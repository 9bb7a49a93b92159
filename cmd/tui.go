package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive terminal UI for timelog.

Views available:
  - Entries: Browse a month, log new entries and edit existing ones
  - Summary: Monthly totals of a year

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-2: Switch views
  - h/l or arrows: Previous/next month (year in Summary)
  - j/k or arrows: Navigate within lists
  - n: New entry, e: Edit entry, R: Raw lines
  - ?: Show all shortcuts
  - q: Quit`,
	Args: cobra.NoArgs,
	// Diagnostics would draw over the alternate screen
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		deps := cli.GetDeps()
		if deps.Services != nil {
			return nil
		}
		services, err := service.NewServices(io.Discard, false)
		if err != nil {
			return err
		}
		deps.Services = services
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if err := tui.Run(deps.Services); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to run terminal UI: %v\n", err)
			deps.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
