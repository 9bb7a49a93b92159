// Package service provides the business logic layer for timelog.
// It wraps the month store, timer and config packages, providing a clean
// API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timer"
	"github.com/xolan/timelog/internal/timeutil"
)

// IndexedEntry is an entry with its position in the descending listing
type IndexedEntry struct {
	Entry entry.Entry
	Index int // 1-based user-facing index
}

// ListResult contains a month's entries, most recent first
type ListResult struct {
	Month       timeutil.Month
	Entries     []IndexedEntry
	Warnings    []storage.ParseWarning
	Count       int
	Total       decimal.Decimal
	AmountWidth int // width of the longest displayed amount
}

// MonthSummary is the count and sum of one month
type MonthSummary struct {
	Month     timeutil.Month
	Count     int
	Total     decimal.Decimal
	Corrupted int // unparsable lines left out of Count and Total
}

// YearSummary holds the twelve months of a year and their totals
type YearSummary struct {
	Year   int
	Months []MonthSummary
	Count  int
	Total  decimal.Decimal
}

// TimerStatus represents the current state of the timer
type TimerStatus struct {
	Running     bool
	State       *timer.TimerState
	ElapsedTime time.Duration
}
