// Package timer persists the running stopwatch that "timelog start" and
// "timelog stop" use to measure an entry's amount.
package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xolan/timelog/internal/osutil"
)

const (
	// AppName is the application name used for the state directory
	AppName = "timelog"
	// TimerFile is the name of the JSON timer state file
	TimerFile = "timer.json"
)

// MinimumHours is the smallest amount a stopped timer records
var MinimumHours = decimal.RequireFromString("0.1")

// TimerState represents the state of an active timer
type TimerState struct {
	StartedAt   time.Time `json:"started_at"`
	Description string    `json:"description"`
}

// Elapsed returns the time since the timer started
func (s TimerState) Elapsed(now time.Time) time.Duration {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Hours converts an elapsed duration to hours rounded to one decimal.
// Anything shorter than six minutes still counts as MinimumHours.
func Hours(d time.Duration) decimal.Decimal {
	hours := decimal.NewFromInt(int64(d)).
		Div(decimal.NewFromInt(int64(time.Hour))).
		Round(1)
	if hours.LessThan(MinimumHours) {
		return MinimumHours
	}
	return hours
}

// FormatElapsed renders a duration as "1h 05m" or "12m"
func FormatElapsed(d time.Duration) string {
	d = d.Truncate(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// GetTimerPath returns the path to the timer state file.
// The file lives next to the config file and the directory is created if needed.
func GetTimerPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, TimerFile), nil
}

// SaveTimerState writes the timer state to the timer file.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func SaveTimerState(path string, state TimerState) error {
	if strings.TrimSpace(state.Description) == "" {
		return errors.New("timer description cannot be empty")
	}

	// TimerState contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(state, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

// LoadTimerState reads the timer state from the timer file.
// Returns nil if the file doesn't exist (no active timer).
// Returns an error if the file exists but cannot be read or parsed.
func LoadTimerState(path string) (*TimerState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var state TimerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("corrupt timer file %s: %w", path, err)
	}

	return &state, nil
}

// ClearTimerState removes the timer state file.
// Returns nil if the file doesn't exist.
func ClearTimerState(path string) error {
	err := os.Remove(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
