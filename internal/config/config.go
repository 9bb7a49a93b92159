package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/osutil"
	"github.com/xolan/timelog/internal/storage"
)

const (
	// AppName is the application name used for config directory
	AppName = "timelog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultLogDir is where month files go unless configured otherwise
	DefaultLogDir = "logs"
)

// Config represents the application configuration
type Config struct {
	// LogDir is the directory holding the log<YYYYMM>.txt files.
	// Relative paths resolve against the working directory; "~" is expanded.
	LogDir string `toml:"log_dir"`
	// Timezone defines the timezone for timestamps (IANA timezone name, e.g., "America/New_York")
	Timezone string `toml:"timezone"`
	// BackupCount is the number of rotating backups kept before a rewrite (0 disables)
	BackupCount int `toml:"backup_count"`
	// LogLevel is the diagnostic log level: debug, info, warn or error
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
// - log_dir: "logs" (next to where timelog is run)
// - timezone: "Local" (use system local timezone)
// - backup_count: 3
// - log_level: "warn"
func DefaultConfig() Config {
	return Config{
		LogDir:      DefaultLogDir,
		Timezone:    "Local",
		BackupCount: storage.DefaultBackupCount,
		LogLevel:    logging.DefaultLevel,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file at path, or returns the defaults if
// the file doesn't exist. Any other failure is returned as an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}
	return Load(path)
}

// Normalize trims values and lowercases the log level.
// Empty values fall back to their defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.LogDir = strings.TrimSpace(c.LogDir)
	if c.LogDir == "" {
		c.LogDir = defaults.LogDir
	}

	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Validate checks every field and returns the first problem found.
// Call Normalize first to accept surrounding whitespace and mixed case.
func (c *Config) Validate() error {
	if c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}

	if c.BackupCount < 0 || c.BackupCount > storage.MaxBackupLimit {
		return fmt.Errorf("invalid backup_count %d: must be between 0 and %d", c.BackupCount, storage.MaxBackupLimit)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}

// Location returns the configured timezone. "Local" and unknown names yield time.Local.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ResolveLogDir returns the absolute log directory
func (c Config) ResolveLogDir() (string, error) {
	dir := c.LogDir
	if dir == "" {
		dir = DefaultLogDir
	}
	resolved, err := osutil.ResolveDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve log_dir %q: %w", dir, err)
	}
	return resolved, nil
}

// GenerateSampleConfig returns a commented sample config file
func GenerateSampleConfig() string {
	return `# timelog configuration file
# All settings are optional; remove the leading "# " to change a value.

# Directory holding the monthly log files (log<YYYYMM>.txt).
# Relative paths are resolved against the directory timelog is run from,
# and "~" expands to your home directory.
# log_dir = "logs"
# log_dir = "~/timelog"

# Timezone used for new timestamps.
# "Local" uses the system timezone. Otherwise use an IANA name:
# timezone = "Local"
# timezone = "America/New_York"
# timezone = "Europe/London"
# timezone = "Asia/Tokyo"

# Number of rotating backups (log<YYYYMM>.txt.bak.N) kept before a month
# file is rewritten by edit, sort or restore. 0 disables backups, max 9.
# backup_count = 3

# Diagnostic log level written to stderr: debug, info, warn or error.
# --verbose forces debug.
# log_level = "warn"
`
}
