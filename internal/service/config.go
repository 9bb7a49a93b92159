package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/timelog/internal/config"
)

var (
	ErrInvalidSetting = errors.New("invalid setting")
	ErrUnknownSetting = errors.New("unknown setting")
)

// SettingKeys lists the keys Set accepts, in config file order
var SettingKeys = []string{"log_dir", "timezone", "backup_count", "log_level"}

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update validates cfg and writes it to the config file
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Set applies key=value assignments on top of the config file and writes it.
// Nothing is written if any assignment is rejected.
func (s *ConfigService) Set(assignments ...string) (config.Config, error) {
	if err := s.Reload(); err != nil {
		return config.Config{}, err
	}

	cfg := s.config
	for _, assignment := range assignments {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return cfg, fmt.Errorf("%w '%s': expected key=value", ErrInvalidSetting, assignment)
		}
		if err := applySetting(&cfg, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return cfg, err
		}
	}

	if err := s.Update(cfg); err != nil {
		return cfg, err
	}
	return s.config, nil
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "log_dir":
		cfg.LogDir = value
	case "timezone":
		cfg.Timezone = value
	case "backup_count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: backup_count must be a whole number, got '%s'", ErrInvalidSetting, value)
		}
		cfg.BackupCount = n
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("%w '%s'", ErrUnknownSetting, key)
	}
	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}

// writeConfig writes the config to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	var buf bytes.Buffer
	buf.WriteString("# timelog configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(s.configPath, buf.Bytes(), 0644)
}
