// Package tui provides the terminal user interface for timelog.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/tui/ui"
	"github.com/xolan/timelog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabSummary
)

var tabNames = []string{"Entries", "Summary"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int

	// View models
	entriesView views.EntriesModel
	summaryView views.SummaryModel

	styles   ui.Styles
	keys     ui.KeyMap
	formKeys ui.FormKeyMap
	help     help.Model
}

// New creates a new TUI model
func New(services *service.Services) Model {
	styles := ui.DefaultStyles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:    services,
		activeTab:   TabEntries,
		styles:      styles,
		keys:        keys,
		formKeys:    ui.NewFormKeyMap(keys),
		help:        help.New(),
		entriesView: views.NewEntriesModel(services, styles, keys),
		summaryView: views.NewSummaryModel(services, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.entriesView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Forms take every key, including tab and q
		if !m.entriesView.IsInputMode() || m.activeTab != TabEntries {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			case key.Matches(msg, m.keys.NextTab):
				return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))
			case key.Matches(msg, m.keys.PrevTab):
				return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))
			case key.Matches(msg, m.keys.Tab1):
				return m.switchTab(TabEntries)
			case key.Matches(msg, m.keys.Tab2):
				return m.switchTab(TabSummary)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		contentHeight := m.height - 4 // tabs and status bar
		m.entriesView.SetSize(m.width, contentHeight)
		m.summaryView.SetSize(m.width, contentHeight)
		return m, nil
	}

	switch m.activeTab {
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	}
	return m, cmd
}

// switchTab activates tab and reloads it so edits made elsewhere show up
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	switch tab {
	case TabSummary:
		return m, m.summaryView.Init()
	default:
		return m, m.entriesView.Init()
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabSummary:
		b.WriteString(m.summaryView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the key help at the bottom
func (m Model) renderStatusBar() string {
	if m.activeTab == TabEntries && m.entriesView.IsInputMode() {
		return m.styles.StatusBar.Render(m.help.View(m.formKeys))
	}
	return m.styles.StatusBar.Render(m.help.View(m.keys))
}

// ActiveTab returns the tab on display
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
