package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/service"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "log_dir:      %s (%s)\n", cfg.LogDir, deps.Services.Entry.Dir())
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:     %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "backup_count: %d\n", cfg.BackupCount)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:    %s\n", cfg.LogLevel)
}

// ShowConfigPath prints the config file location
func ShowConfigPath(deps *cli.Deps) {
	_, _ = fmt.Fprintln(deps.Stdout, deps.Services.Config.GetPath())
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Created config file: %s", deps.Services.Config.GetPath())
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// SetConfig applies key=value assignments to the config file.
// Settings take effect the next time timelog runs.
func SetConfig(deps *cli.Deps, assignments []string) {
	svc := deps.Services.Config
	if _, err := svc.Set(assignments...); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		switch {
		case errors.Is(err, service.ErrUnknownSetting):
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: Known keys are %s\n", strings.Join(service.SettingKeys, ", "))
		case errors.Is(err, service.ErrInvalidSetting):
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use key=value, e.g. --set backup_count=5")
		}
		deps.Exit(1)
		return
	}

	cli.Successf(deps.Stdout, "Updated config file: %s", svc.GetPath())
	_, _ = fmt.Fprintln(deps.Stdout, "Changes take effect on the next run.")
}
