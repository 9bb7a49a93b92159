package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/xolan/timelog/internal/config"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timer"
	"github.com/xolan/timelog/internal/timeutil"
)

// Timer-specific errors
var (
	ErrTimerRunning = errors.New("timer is already running")
	ErrNoTimer      = errors.New("no timer is running")
)

// TimerService measures the amount of an entry with a stopwatch
type TimerService struct {
	timerPath string
	store     *storage.Store
	loc       *time.Location
	now       func() time.Time
	log       zerolog.Logger
}

// NewTimerService creates a new TimerService
func NewTimerService(timerPath string, store *storage.Store, cfg config.Config, logger zerolog.Logger) *TimerService {
	return &TimerService{
		timerPath: timerPath,
		store:     store,
		loc:       cfg.Location(),
		now:       time.Now,
		log:       logging.Component(logger, logging.ComponentTimer),
	}
}

// Start starts a new timer with the given description.
// If force is true, it will override any existing timer.
// Returns the existing timer state if one is running and force is false.
func (s *TimerService) Start(description string, force bool) (*timer.TimerState, *timer.TimerState, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil, ErrEmptyDescription
	}
	if strings.ContainsAny(description, "\r\n") {
		return nil, nil, &entry.ValidationError{Field: "description", Value: description, Reason: "description must be a single line"}
	}

	existing, err := timer.LoadTimerState(s.timerPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check timer status: %w", err)
	}
	if existing != nil && !force {
		return nil, existing, ErrTimerRunning
	}

	state := timer.TimerState{
		StartedAt:   s.now().In(s.loc).Truncate(time.Second),
		Description: description,
	}
	if err := timer.SaveTimerState(s.timerPath, state); err != nil {
		return nil, nil, fmt.Errorf("failed to save timer state: %w", err)
	}

	s.log.Debug().Str("description", description).Msg("timer started")
	return &state, existing, nil
}

// Stop stops the current timer and logs an entry whose amount is the elapsed
// time in hours, rounded to one decimal. The entry is stamped with the stop time.
func (s *TimerService) Stop() (*entry.Entry, *timer.TimerState, error) {
	state, err := timer.LoadTimerState(s.timerPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load timer state: %w", err)
	}
	if state == nil {
		return nil, nil, ErrNoTimer
	}

	now := s.now().In(s.loc).Truncate(time.Second)
	e := entry.Entry{
		Timestamp:   entry.WallClock(now),
		Description: state.Description,
		Amount:      timer.Hours(state.Elapsed(now)),
	}

	month := timeutil.MonthOf(e.Timestamp)
	if err := s.store.Append(month, e); err != nil {
		return nil, nil, fmt.Errorf("failed to save entry: %w", err)
	}

	// The entry is saved; a stale timer file is overwritten by the next start
	if err := timer.ClearTimerState(s.timerPath); err != nil {
		s.log.Warn().Err(err).Str(logging.FieldPath, s.timerPath).Msg("failed to clear timer state")
	}

	s.log.Info().
		Str(logging.FieldMonth, month.String()).
		Str("amount", entry.FormatAmount(e.Amount)).
		Msg("timer stopped")
	return &e, state, nil
}

// Cancel discards the current timer without logging an entry
func (s *TimerService) Cancel() (*timer.TimerState, error) {
	state, err := timer.LoadTimerState(s.timerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load timer state: %w", err)
	}
	if state == nil {
		return nil, ErrNoTimer
	}

	if err := timer.ClearTimerState(s.timerPath); err != nil {
		return nil, fmt.Errorf("failed to clear timer: %w", err)
	}

	s.log.Debug().Msg("timer cancelled")
	return state, nil
}

// Status returns the current timer status
func (s *TimerService) Status() (*TimerStatus, error) {
	state, err := timer.LoadTimerState(s.timerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load timer state: %w", err)
	}

	status := &TimerStatus{
		Running: state != nil,
		State:   state,
	}
	if state != nil {
		status.ElapsedTime = state.Elapsed(s.now())
	}
	return status, nil
}
