package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum [YYYYMM]",
	Short: "Show the count and total of a month",
	Long: `Show how many entries a month holds and the sum of their amounts.
Defaults to the current month. Unparsable lines are not counted.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeMonths,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowSum(cli.GetDeps(), optionalArg(args))
	},
}

// yearCmd represents the year command
var yearCmd = &cobra.Command{
	Use:   "year [YYYY]",
	Short: "Show per-month totals for a year",
	Long: `Show the count and total of every month of a year, plus the year total.
Defaults to the current year.

Examples:
  timelog year
  timelog year 2024`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowYear(cmd.Context(), cli.GetDeps(), optionalArg(args))
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(yearCmd)
}
