package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style
	StatusBar lipgloss.Style

	// Entry list
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryIndex    lipgloss.Style
	EntryTime     lipgloss.Style
	EntryAmount   lipgloss.Style
	RawLine       lipgloss.Style

	// Summary
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Muted     lipgloss.Style

	// Forms
	Label  lipgloss.Style
	Dialog lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "91", Dark: "99"}
	secondary := lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	accent := lipgloss.AdaptiveColor{Light: "162", Dark: "212"}
	muted := lipgloss.AdaptiveColor{Light: "245", Dark: "240"}
	success := lipgloss.Color("78")
	warning := lipgloss.Color("214")
	errorColor := lipgloss.Color("196")

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		StatusBar: lipgloss.NewStyle().
			MarginTop(1),

		EntrySelected: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryIndex: lipgloss.NewStyle().
			Foreground(muted),
		EntryTime: lipgloss.NewStyle().
			Foreground(secondary),
		EntryAmount: lipgloss.NewStyle().
			Foreground(accent).
			Align(lipgloss.Right),
		RawLine: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(16),
		StatValue: lipgloss.NewStyle().
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Label: lipgloss.NewStyle().
			Foreground(muted),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
