package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a month's entries to various formats",
	Long: `Export a month's entries for programmatic use or migration.

Available formats:
  json    Export entries as JSON
  csv     Export entries as CSV

Entries are written most recent first. Unparsable lines are skipped
and reported on stderr.

Examples:
  timelog export json                        Export this month as JSON
  timelog export csv --month 202403 > m.csv  Export March 2024 to a file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export entries as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ExportJSON(cli.GetDeps(), monthFlag)
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export entries as CSV",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ExportCSV(cli.GetDeps(), monthFlag)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)

	exportCmd.PersistentFlags().StringVarP(&monthFlag, "month", "m", "", "month to export (YYYYMM, default: current month)")
	_ = exportCmd.RegisterFlagCompletionFunc("month", completeMonthFlag)
}
