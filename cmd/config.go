package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/cli/handlers"
)

var (
	configInitFlag bool
	configPathFlag bool
	configSetFlag  []string
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for timelog.

timelog works without any configuration file. All settings have defaults:
  - log_dir: logs (relative to the working directory)
  - timezone: Local (system timezone)
  - backup_count: 3
  - log_level: warn

Examples:
  timelog config            Show all current settings
  timelog config --init     Create a commented sample config file
  timelog config --path     Print the config file location
  timelog config --set backup_count=5 --set timezone=Europe/Oslo

Configuration file location:
  ~/.config/timelog/config.toml                      Linux
  ~/Library/Application Support/timelog/config.toml  macOS
  %AppData%\timelog\config.toml                      Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		switch {
		case configInitFlag:
			handlers.InitConfig(deps)
		case configPathFlag:
			handlers.ShowConfigPath(deps)
		case len(configSetFlag) > 0:
			handlers.SetConfig(deps, configSetFlag)
		default:
			handlers.ShowConfig(deps)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "create a sample config file")
	configCmd.Flags().BoolVar(&configPathFlag, "path", false, "print the config file location")
	configCmd.Flags().StringArrayVar(&configSetFlag, "set", nil, "change a setting (key=value, repeatable)")
	configCmd.MarkFlagsMutuallyExclusive("init", "path", "set")
}
