package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timeutil"
)

// yearConcurrency bounds how many month files are read at once
const yearConcurrency = 4

// SummaryService computes counts and totals over months
type SummaryService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(store *storage.Store, logger zerolog.Logger) *SummaryService {
	return &SummaryService{
		store: store,
		log:   logging.Component(logger, logging.ComponentService),
	}
}

// Month returns the count and sum of a month's parseable entries
func (s *SummaryService) Month(month timeutil.Month) (*MonthSummary, error) {
	totals, err := s.store.Totals(month)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize %s: %w", month, err)
	}

	return &MonthSummary{
		Month:     month,
		Count:     totals.Count,
		Total:     totals.Sum,
		Corrupted: totals.Lines - totals.Count,
	}, nil
}

// Year summarizes all twelve months of a year. Months are read concurrently;
// the first failure cancels the remaining reads.
func (s *SummaryService) Year(ctx context.Context, year int) (*YearSummary, error) {
	months := timeutil.MonthsOfYear(year)
	summaries := make([]MonthSummary, len(months))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(yearConcurrency)
	for i, month := range months {
		i, month := i, month
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := s.Month(month)
			if err != nil {
				return err
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &YearSummary{
		Year:   year,
		Months: summaries,
		Total:  decimal.Zero,
	}
	for _, m := range summaries {
		result.Count += m.Count
		result.Total = result.Total.Add(m.Total)
	}

	s.log.Debug().
		Int("year", year).
		Int(logging.FieldCount, result.Count).
		Msg("summarized year")
	return result, nil
}
