package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:               "validate [YYYYMM]",
	Short:             "Check a month file's health",
	Long:              `Validate a month file and report on its health status, including any unparsable lines.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeMonths,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateMonth(cli.GetDeps(), optionalArg(args))
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore a month file from a backup",
	Long: `Restore a month file from a backup.

Edits and sorts rewrite the month file; before each rewrite the previous
content is kept as log<YYYYMM>.txt.bak.1 (older copies shift to .bak.2 and up,
see backup_count in the config file).

By default, restores the current month from the most recent backup.

Examples:
  timelog restore                   Restore from most recent backup
  timelog restore 2                 Restore from backup #2
  timelog restore --month 202403    Restore March 2024`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.RestoreBackup(cli.GetDeps(), optionalArg(args), monthFlag)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month to restore (YYYYMM, default: current month)")
	_ = restoreCmd.RegisterFlagCompletionFunc("month", completeMonthFlag)
}
