package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/tui/ui"
)

// SummaryModel shows the monthly totals of one year
type SummaryModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width   int
	height  int
	year    int
	summary *service.YearSummary
	err     error
}

// NewSummaryModel creates a summary view for the current year
func NewSummaryModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SummaryModel {
	return SummaryModel{
		services: services,
		styles:   styles,
		keys:     keys,
		year:     services.Entry.CurrentMonth().Year,
	}
}

// summaryLoadedMsg is sent when a year has been summarized
type summaryLoadedMsg struct {
	year    int
	summary *service.YearSummary
	err     error
}

// Init implements tea.Model
func (m SummaryModel) Init() tea.Cmd {
	return m.loadYear(m.year)
}

// Update implements tea.Model
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.year--
			return m, m.loadYear(m.year)
		case key.Matches(msg, m.keys.Next):
			m.year++
			return m, m.loadYear(m.year)
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadYear(m.year)
		}

	case summaryLoadedMsg:
		// A stale result from a year the user already paged away from
		if msg.year != m.year {
			return m, nil
		}
		m.summary = msg.summary
		m.err = msg.err
	}
	return m, nil
}

// View implements tea.Model
func (m SummaryModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Summary for %d", m.year)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.summary == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	width := len(entry.DisplayAmount(m.summary.Total))
	for _, ms := range m.summary.Months {
		amount := fmt.Sprintf("%*s", width, entry.DisplayAmount(ms.Total))
		line := fmt.Sprintf("%s %s  %s",
			m.styles.StatLabel.Render(ms.Month.Label()),
			amount,
			fmt.Sprintf("(%d %s)", ms.Count, pluralize("entry", ms.Count)))
		if ms.Count == 0 {
			b.WriteString(m.styles.Muted.Render(line))
		} else {
			b.WriteString(line)
		}
		if ms.Corrupted > 0 {
			b.WriteString(" ")
			b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d unparsable", ms.Corrupted)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Total"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%*s", width, entry.DisplayAmount(m.summary.Total))))
	b.WriteString(fmt.Sprintf("  (%d %s)", m.summary.Count, pluralize("entry", m.summary.Count)))
	return b.String()
}

// SetSize sets the view dimensions
func (m *SummaryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Year returns the year on display
func (m SummaryModel) Year() int {
	return m.year
}

func (m SummaryModel) loadYear(year int) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		summary, err := services.Summary.Year(context.Background(), year)
		return summaryLoadedMsg{year: year, summary: summary, err: err}
	}
}
