package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

var (
	atFlag          string
	rawFlag         bool
	monthFlag       string
	descriptionFlag string
	amountFlag      string
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log <description> <amount>",
	Short: "Log a new entry",
	Long: `Append an entry to the month file of its timestamp.

The last argument is the amount (a decimal number, e.g. hours worked);
everything before it is the description. The entry is stamped with the
current time unless --at is given.

Examples:
  timelog log design review 2.5
  timelog log "fix - release build" 1
  timelog log planning 0.5 --at "2024-03-01 09:00:00"`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.LogEntry(cli.GetDeps(), args, atFlag)
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [YYYYMM]",
	Short: "List a month's entries",
	Long: `List the entries of a month, most recent first. Defaults to the current month.

The index shown in brackets is the one 'timelog edit' expects.
With --raw the file's lines are printed as stored, most recently appended first.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeMonths,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if rawFlag {
			handlers.ListRaw(deps, optionalArg(args))
			return
		}
		handlers.ListEntries(deps, optionalArg(args))
	},
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing entry",
	Long: `Edit the description or amount of an entry. The timestamp is kept.

Usage:
  timelog edit <index> --description 'new text'     Update entry description
  timelog edit <index> --amount 2                   Update entry amount
  timelog edit <index> --month 202403 --amount 2    Edit an entry of another month

The index refers to the entry number shown by 'timelog list' (starting from 1).
At least one flag (--description or --amount) is required. The month file is
rewritten in descending order.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.EditEntry(cli.GetDeps(), args[0], monthFlag, descriptionFlag, amountFlag)
	},
}

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:               "sort [YYYYMM]",
	Short:             "Rewrite a month file in descending order",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeMonths,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SortMonth(cli.GetDeps(), optionalArg(args))
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(sortCmd)

	logCmd.Flags().StringVar(&atFlag, "at", "", "timestamp of the entry (YYYY-MM-DD HH:MM:SS)")
	listCmd.Flags().BoolVar(&rawFlag, "raw", false, "print the stored lines as-is")

	editCmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month of the entry (YYYYMM, default: current month)")
	editCmd.Flags().StringVar(&descriptionFlag, "description", "", "new description for the entry")
	editCmd.Flags().StringVar(&amountFlag, "amount", "", "new amount for the entry")
	_ = editCmd.RegisterFlagCompletionFunc("month", completeMonthFlag)
}

// optionalArg returns the first argument or an empty string
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
