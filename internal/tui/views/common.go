// Package views holds the tab models of the terminal UI.
package views

import (
	"fmt"
	"strings"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	AmountWidth int // width of the amount column
	Width       int // available width for rendering
	Cursor      int // selected row (-1 for none)
}

// RenderEntryList renders entries as index, timestamp, amount and description columns
func RenderEntryList(entries []service.IndexedEntry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	indexWidth := len(fmt.Sprintf("[%d]", entries[len(entries)-1].Index))
	// index, timestamp and amount columns plus separators
	descWidth := opts.Width - indexWidth - len(entry.TimestampLayout) - opts.AmountWidth - 3
	if descWidth < 20 {
		descWidth = 20
	}

	var b strings.Builder
	for i, ie := range entries {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		desc := ie.Entry.Description
		if r := []rune(desc); len(r) > descWidth {
			desc = string(r[:descWidth-1]) + "…"
		}

		line := fmt.Sprintf("%s %s %s %s",
			styles.EntryIndex.Render(fmt.Sprintf("%*s", indexWidth, fmt.Sprintf("[%d]", ie.Index))),
			styles.EntryTime.Render(ie.Entry.Timestamp.Format(entry.TimestampLayout)),
			styles.EntryAmount.Render(fmt.Sprintf("%*s", opts.AmountWidth, entry.DisplayAmount(ie.Entry.Amount))),
			desc)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
