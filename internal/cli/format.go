// Package cli provides the CLI presentation layer for timelog.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/storage"
)

var (
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.Bold, color.Underline)
	faintColor   = color.New(color.Faint)
)

// Warnf writes a yellow warning line to w
func Warnf(w io.Writer, format string, args ...any) {
	_, _ = warnColor.Fprintf(w, format+"\n", args...)
}

// Successf writes a green status line to w
func Successf(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, format+"\n", args...)
}

// Header writes a bold underlined title line to w
func Header(w io.Writer, title string) {
	_, _ = headerColor.Fprintln(w, title)
}

// Faintf writes a dimmed line to w
func Faintf(w io.Writer, format string, args ...any) {
	_, _ = faintColor.Fprintf(w, format+"\n", args...)
}

// FormatAmount renders an amount with one fractional digit,
// right-justified to width
func FormatAmount(d decimal.Decimal, width int) string {
	return fmt.Sprintf("%*s", width, entry.DisplayAmount(d))
}

// EntryTable lays out a listing as index, timestamp, amount and description columns
func EntryTable(result *service.ListResult) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, ie := range result.Entries {
		tbl.AddRow(
			fmt.Sprintf("[%d]", ie.Index),
			ie.Entry.Timestamp.Format(entry.TimestampLayout),
			FormatAmount(ie.Entry.Amount, result.AmountWidth),
			ie.Entry.Description,
		)
	}
	tbl.RightAlign(0)
	return tbl
}

// SummaryTable lays out per-month totals of a year
func SummaryTable(year *service.YearSummary) *uitable.Table {
	width := len(entry.DisplayAmount(year.Total))
	for _, m := range year.Months {
		if w := len(entry.DisplayAmount(m.Total)); w > width {
			width = w
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range year.Months {
		tbl.AddRow(m.Month.String(), m.Month.Month.String(), FormatAmount(m.Total, width), fmt.Sprintf("%d %s", m.Count, Pluralize("entry", m.Count)))
	}
	tbl.AddRow("", "Total", FormatAmount(year.Total, width), fmt.Sprintf("%d %s", year.Count, Pluralize("entry", year.Count)))
	return tbl
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if runes := []rune(content); len(runes) > 50 {
		content = string(runes[:47]) + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// Pluralize returns the singular or plural form of a word based on count.
// Words ending in "y" after a consonant take "ies".
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !isVowel(word[n-2]) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// FormatTimerStartTime formats the timer start time relative to now
func FormatTimerStartTime(startedAt, now time.Time) string {
	startTime := startedAt.Format("15:04")

	isToday := startedAt.Year() == now.Year() &&
		startedAt.Month() == now.Month() &&
		startedAt.Day() == now.Day()

	if isToday {
		return fmt.Sprintf("today at %s", startTime)
	}
	return fmt.Sprintf("%s at %s", startedAt.Format("Mon Jan 2"), startTime)
}
