package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/xolan/timelog/internal/config"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timeutil"
)

// Common errors for the entry service
var (
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrInvalidIndex       = errors.New("invalid entry index")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNoEntries          = errors.New("no entries found")
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
)

// EntryService provides operations on the month log files
type EntryService struct {
	store *storage.Store
	loc   *time.Location
	now   func() time.Time
	log   zerolog.Logger
}

// NewEntryService creates a new EntryService
func NewEntryService(store *storage.Store, cfg config.Config, logger zerolog.Logger) *EntryService {
	return &EntryService{
		store: store,
		loc:   cfg.Location(),
		now:   time.Now,
		log:   logging.Component(logger, logging.ComponentService),
	}
}

// Location returns the timezone new entries are stamped in
func (s *EntryService) Location() *time.Location {
	return s.loc
}

// Now returns the current time in the configured timezone
func (s *EntryService) Now() time.Time {
	return s.now().In(s.loc)
}

// CurrentMonth returns the month that Log appends to right now
func (s *EntryService) CurrentMonth() timeutil.Month {
	return timeutil.MonthOf(s.now().In(s.loc))
}

// Dir returns the log directory
func (s *EntryService) Dir() string {
	return s.store.Dir()
}

// Path returns the file backing a month
func (s *EntryService) Path(month timeutil.Month) string {
	return s.store.Path(month)
}

// Log stamps a new entry with the current time and appends it to the current month
func (s *EntryService) Log(description, amount string) (*entry.Entry, timeutil.Month, error) {
	ts := s.now().In(s.loc).Format(entry.TimestampLayout)
	return s.LogAt(ts, description, amount)
}

// LogAt appends an entry with an explicit YYYY-MM-DD HH:MM:SS timestamp.
// The month file is derived from the timestamp.
func (s *EntryService) LogAt(timestamp, description, amount string) (*entry.Entry, timeutil.Month, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, timeutil.Month{}, ErrEmptyDescription
	}

	e, err := entry.New(strings.TrimSpace(timestamp), description, amount)
	if err != nil {
		return nil, timeutil.Month{}, err
	}

	month := timeutil.MonthOf(e.Timestamp)
	if err := s.store.Append(month, e); err != nil {
		return nil, month, fmt.Errorf("failed to save entry: %w", err)
	}

	s.log.Info().
		Str(logging.FieldMonth, month.String()).
		Str("amount", entry.FormatAmount(e.Amount)).
		Msg("logged entry")
	return &e, month, nil
}

// List returns a month's entries most recent first, with 1-based indexes
func (s *EntryService) List(month timeutil.Month) (*ListResult, error) {
	read, err := s.store.List(month)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	result := &ListResult{
		Month:    month,
		Entries:  make([]IndexedEntry, 0, len(read.Entries)),
		Warnings: read.Warnings,
		Count:    len(read.Entries),
		Total:    decimal.Zero,
	}

	for i, e := range read.Entries {
		result.Entries = append(result.Entries, IndexedEntry{Entry: e, Index: i + 1})
		result.Total = result.Total.Add(e.Amount)
		if w := len(entry.DisplayAmount(e.Amount)); w > result.AmountWidth {
			result.AmountWidth = w
		}
	}

	return result, nil
}

// Raw returns the raw lines of a month, most recently appended first
func (s *EntryService) Raw(month timeutil.Month) ([]string, error) {
	lines, err := s.store.LoadAll(month)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	reversed := make([]string, len(lines))
	for i, line := range lines {
		reversed[len(lines)-1-i] = line
	}
	return reversed, nil
}

// GetByIndex returns the entry at a 1-based index of the descending listing
func (s *EntryService) GetByIndex(month timeutil.Month, userIndex int) (*IndexedEntry, error) {
	if userIndex < 1 {
		return nil, ErrInvalidIndex
	}

	result, err := s.List(month)
	if err != nil {
		return nil, err
	}
	if len(result.Entries) == 0 {
		return nil, ErrNoEntries
	}
	if userIndex > len(result.Entries) {
		return nil, fmt.Errorf("%w: valid range is 1-%d", ErrIndexOutOfRange, len(result.Entries))
	}

	return &result.Entries[userIndex-1], nil
}

// Edit updates the entry at the given user index (1-based, descending listing).
// The timestamp is kept; an empty description or amount keeps the current value.
func (s *EntryService) Edit(month timeutil.Month, userIndex int, newDescription, newAmount string) (*entry.Entry, error) {
	if strings.TrimSpace(newDescription) == "" && strings.TrimSpace(newAmount) == "" {
		return nil, ErrNoChangesSpecified
	}

	current, err := s.GetByIndex(month, userIndex)
	if err != nil {
		return nil, err
	}

	e := current.Entry
	if desc := strings.TrimSpace(newDescription); desc != "" {
		e.Description = desc
	}
	if amount := strings.TrimSpace(newAmount); amount != "" {
		amt, err := entry.ParseAmount(amount)
		if err != nil {
			return nil, &entry.ValidationError{Field: "amount", Value: newAmount, Reason: "not a decimal number"}
		}
		e.Amount = amt
	}

	if err := s.store.Update(month, userIndex-1, e); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.log.Info().
		Str(logging.FieldMonth, month.String()).
		Int(logging.FieldIndex, userIndex).
		Msg("edited entry")
	return &e, nil
}

// Sort rewrites a month file in descending order
func (s *EntryService) Sort(month timeutil.Month) error {
	if err := s.store.Sort(month); err != nil {
		return fmt.Errorf("failed to sort entries: %w", err)
	}
	return nil
}

// Months returns the months that have a log file, oldest first
func (s *EntryService) Months() ([]timeutil.Month, error) {
	return s.store.Months()
}

// Validate reports the health of a month file
func (s *EntryService) Validate(month timeutil.Month) (storage.Health, error) {
	return s.store.Validate(month)
}

// Backups lists the backups of a month file, most recent first
func (s *EntryService) Backups(month timeutil.Month) ([]storage.BackupInfo, error) {
	return s.store.ListBackups(month)
}

// RestoreBackup replaces a month file with one of its backups
func (s *EntryService) RestoreBackup(month timeutil.Month, n int) error {
	return s.store.RestoreBackup(month, n)
}
