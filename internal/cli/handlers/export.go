package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/timeutil"
)

type exportEntry struct {
	Index       int    `json:"index"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type exportDocument struct {
	Metadata struct {
		Month        string `json:"month"`
		ExportedAt   string `json:"exported_at"`
		TotalEntries int    `json:"total_entries"`
		Total        string `json:"total"`
		Unparsable   int    `json:"unparsable_lines"`
	} `json:"metadata"`
	Entries []exportEntry `json:"entries"`
}

// loadForExport lists a month for export, reporting unparsable lines on stderr
func loadForExport(deps *cli.Deps, monthKey string) (timeutil.Month, *service.ListResult, bool) {
	month, ok := resolveMonth(deps, monthKey)
	if !ok {
		return month, nil, false
	}

	result, err := deps.Services.Entry.List(month)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return month, nil, false
	}

	if len(result.Warnings) > 0 {
		cli.Warnf(deps.Stderr, "Warning: Skipping %d unparsable %s:",
			len(result.Warnings), cli.Pluralize("line", len(result.Warnings)))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
		}
	}
	return month, result, true
}

// ExportJSON writes a month's entries as an indented JSON document
func ExportJSON(deps *cli.Deps, monthKey string) {
	month, result, ok := loadForExport(deps, monthKey)
	if !ok {
		return
	}

	var doc exportDocument
	doc.Metadata.Month = month.String()
	doc.Metadata.ExportedAt = deps.Services.Entry.Now().Format(entry.TimestampLayout)
	doc.Metadata.TotalEntries = result.Count
	doc.Metadata.Total = entry.FormatAmount(result.Total)
	doc.Metadata.Unparsable = len(result.Warnings)
	doc.Entries = make([]exportEntry, 0, len(result.Entries))
	for _, ie := range result.Entries {
		doc.Entries = append(doc.Entries, exportEntry{
			Index:       ie.Index,
			Timestamp:   ie.Entry.Timestamp.Format(entry.TimestampLayout),
			Description: ie.Entry.Description,
			Amount:      entry.FormatAmount(ie.Entry.Amount),
		})
	}

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode JSON output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}

// ExportCSV writes a month's entries as CSV with a header row
func ExportCSV(deps *cli.Deps, monthKey string) {
	_, result, ok := loadForExport(deps, monthKey)
	if !ok {
		return
	}

	writer := csv.NewWriter(deps.Stdout)
	records := [][]string{{"index", "timestamp", "description", "amount"}}
	for _, ie := range result.Entries {
		records = append(records, []string{
			fmt.Sprintf("%d", ie.Index),
			ie.Entry.Timestamp.Format(entry.TimestampLayout),
			ie.Entry.Description,
			entry.FormatAmount(ie.Entry.Amount),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
