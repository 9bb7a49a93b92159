package service

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/xolan/timelog/internal/config"
	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timer"
)

// Services holds all service instances used by the application
type Services struct {
	Entry   *EntryService
	Summary *SummaryService
	Timer   *TimerService
	Config  *ConfigService
	Logger  zerolog.Logger
}

// NewServices creates a new Services instance from the user's config file.
// Diagnostics go to logOut at the configured level, or debug when verbose is set.
func NewServices(logOut io.Writer, verbose bool) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	logDir, err := cfg.ResolveLogDir()
	if err != nil {
		return nil, err
	}

	timerPath, err := timer.GetTimerPath()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.New(logOut, level)

	return NewServicesWithPaths(logDir, timerPath, configPath, cfg, logger), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(logDir, timerPath, configPath string, cfg config.Config, logger zerolog.Logger) *Services {
	store := storage.NewStore(logDir,
		storage.WithBackups(cfg.BackupCount),
		storage.WithLogger(logger),
	)

	return &Services{
		Entry:   NewEntryService(store, cfg, logger),
		Summary: NewSummaryService(store, logger),
		Timer:   NewTimerService(timerPath, store, cfg, logger),
		Config:  NewConfigService(configPath, cfg),
		Logger:  logger,
	}
}
