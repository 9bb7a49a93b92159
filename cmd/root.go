package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "timelog",
	Short: "A personal time log kept in plain monthly text files",
	Long: `timelog records units of work in one plain-text file per month
(log<YYYYMM>.txt). Each line reads:

  YYYY-MM-DD HH:MM:SS - description - amount

Usage:
  timelog                                   List this month's entries
  timelog log <description> <amount>        Log a new entry (e.g., timelog log code review 1.5)
  timelog list [YYYYMM]                     List a month's entries, most recent first
  timelog edit <index> --amount 2           Edit an entry of the listing
  timelog sum [YYYYMM]                      Count and total of a month
  timelog year [YYYY]                       Per-month totals of a year
  timelog start <description>               Start a timer, 'timelog stop' logs it

Lines that cannot be parsed are kept in the file untouched and left out of
listings and totals.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cli.GetDeps().Init(verboseFlag)
	},
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListEntries(cli.GetDeps(), "")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log diagnostics to stderr")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timelog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// completeMonths offers the months that already have a log file as the
// first positional argument
func completeMonths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeMonthFlag(cmd, args, toComplete)
}

// completeMonthFlag offers the months that already have a log file, most recent first
func completeMonthFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	deps := cli.GetDeps()
	if err := deps.Init(false); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	months, err := deps.Services.Entry.Months()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	keys := make([]string, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		keys = append(keys, months[i].String())
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
