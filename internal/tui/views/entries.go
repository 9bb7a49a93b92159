package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/timeutil"
	"github.com/xolan/timelog/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeEdit
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	cursor   int
	month    timeutil.Month
	result   *service.ListResult
	raw      bool
	rawLines []string
	status   string
	err      error

	// Input mode state
	mode         entryMode
	descInput    textinput.Model
	amountInput  textinput.Model
	focusedInput int // 0 = description, 1 = amount
	editIndex    int // 1-based index of the entry being edited
}

// NewEntriesModel creates a new entries view model showing the current month
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	descInput := textinput.New()
	descInput.Placeholder = "What did you work on?"
	descInput.CharLimit = 200
	descInput.Width = 50

	amountInput := textinput.New()
	amountInput.Placeholder = "Amount (e.g., 2.5)"
	amountInput.CharLimit = 20
	amountInput.Width = 20

	return EntriesModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		month:       services.Entry.CurrentMonth(),
		descInput:   descInput,
		amountInput: amountInput,
	}
}

// entriesLoadedMsg is sent when a month has been read
type entriesLoadedMsg struct {
	month    timeutil.Month
	result   *service.ListResult
	rawLines []string
	status   string
	err      error
}

// entrySaveFailedMsg is sent when an add or edit was rejected
type entrySaveFailedMsg struct {
	err error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries(m.month, "")
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != entryModeNormal {
			return m.handleInputMode(msg)
		}
		return m.handleNormalMode(msg)

	case entriesLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.mode = entryModeNormal
			m.month = msg.month
			m.result = msg.result
			m.rawLines = msg.rawLines
			m.status = msg.status
			if m.cursor >= m.rowCount() {
				m.cursor = max(0, m.rowCount()-1)
			}
		}
		return m, nil

	case entrySaveFailedMsg:
		m.err = msg.err
		m.focusInput(m.focusedInput)
		return m, textinput.Blink
	}

	return m, nil
}

// handleNormalMode handles key events while browsing a month
func (m EntriesModel) handleNormalMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Prev):
		m.cursor = 0
		return m, m.loadEntries(m.month.Prev(), "")
	case key.Matches(msg, m.keys.Next):
		m.cursor = 0
		return m, m.loadEntries(m.month.Next(), "")
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadEntries(m.month, "")
	case key.Matches(msg, m.keys.Raw):
		m.raw = !m.raw
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.New):
		m.mode = entryModeAdd
		m.err = nil
		m.descInput.SetValue("")
		m.amountInput.SetValue("")
		m.focusInput(0)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if m.raw || m.result == nil || m.cursor >= len(m.result.Entries) {
			return m, nil
		}
		selected := m.result.Entries[m.cursor]
		m.mode = entryModeEdit
		m.err = nil
		m.editIndex = selected.Index
		m.descInput.SetValue(selected.Entry.Description)
		m.amountInput.SetValue(entry.FormatAmount(selected.Entry.Amount))
		m.focusInput(0)
		return m, textinput.Blink
	}
	return m, nil
}

// handleInputMode handles key events when in add/edit mode
func (m EntriesModel) handleInputMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		desc := strings.TrimSpace(m.descInput.Value())
		amount := strings.TrimSpace(m.amountInput.Value())
		if desc == "" || amount == "" {
			return m, nil
		}
		m.descInput.Blur()
		m.amountInput.Blur()
		if m.mode == entryModeAdd {
			return m, m.addEntry(desc, amount)
		}
		return m, m.editEntry(m.month, m.editIndex, desc, amount)
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.err = nil
		m.descInput.Blur()
		m.amountInput.Blur()
		return m, nil
	case msg.String() == "tab":
		m.focusInput(1 - m.focusedInput)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.focusedInput == 0 {
		m.descInput, cmd = m.descInput.Update(msg)
	} else {
		m.amountInput, cmd = m.amountInput.Update(msg)
	}
	return m, cmd
}

func (m *EntriesModel) focusInput(i int) {
	m.focusedInput = i
	if i == 0 {
		m.amountInput.Blur()
		m.descInput.Focus()
	} else {
		m.descInput.Blur()
		m.amountInput.Focus()
	}
}

// rowCount returns the number of selectable rows in the current display
func (m EntriesModel) rowCount() int {
	if m.raw {
		return len(m.rawLines)
	}
	if m.result == nil {
		return 0
	}
	return len(m.result.Entries)
}

// View implements tea.Model
func (m EntriesModel) View() string {
	switch m.mode {
	case entryModeAdd:
		return m.renderForm("New Entry")
	case entryModeEdit:
		return m.renderForm(fmt.Sprintf("Edit Entry %d", m.editIndex))
	}

	var b strings.Builder
	title := fmt.Sprintf("%s (%s)", m.month.Label(), m.month)
	if m.raw {
		title += " raw"
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.raw {
		b.WriteString(m.renderRaw())
		return b.String()
	}

	if len(m.result.Entries) == 0 {
		b.WriteString(m.styles.Muted.Render("No entries for " + m.month.Label()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Press 'n' to add a new entry"))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.result.Entries, m.styles, EntryRenderOptions{
		AmountWidth: m.result.AmountWidth,
		Width:       m.width,
		Cursor:      m.cursor,
	}))
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 20))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s (%d %s)",
		entry.DisplayAmount(m.result.Total), m.result.Count, pluralize("entry", m.result.Count)))

	if n := len(m.result.Warnings); n > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d unparsable %s not shown (press R)", n, pluralize("line", n))))
	}
	return b.String()
}

// renderRaw renders the stored lines, most recently appended first
func (m EntriesModel) renderRaw() string {
	if len(m.rawLines) == 0 {
		return m.styles.Muted.Render("No lines in " + m.month.Label())
	}

	var b strings.Builder
	for i, line := range m.rawLines {
		style := m.styles.RawLine
		if i == m.cursor {
			style = m.styles.EntrySelected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderForm renders the add/edit form
func (m EntriesModel) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	descLabel := "Description:"
	if m.focusedInput == 0 {
		descLabel = "▸ Description:"
	}
	b.WriteString(m.styles.Label.Render(descLabel))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")

	amountLabel := "Amount:"
	if m.focusedInput == 1 {
		amountLabel = "▸ Amount:"
	}
	b.WriteString(m.styles.Label.Render(amountLabel))
	b.WriteString("\n")
	b.WriteString(m.amountInput.View())

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	return m.styles.Dialog.Render(b.String())
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Month returns the month on display
func (m EntriesModel) Month() timeutil.Month {
	return m.month
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	return m.mode == entryModeAdd || m.mode == entryModeEdit
}

// loadEntries creates a command that reads a month
func (m EntriesModel) loadEntries(month timeutil.Month, status string) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		result, err := services.Entry.List(month)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		lines, err := services.Entry.Raw(month)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		return entriesLoadedMsg{month: month, result: result, rawLines: lines, status: status}
	}
}

// addEntry creates a command that logs a new entry and shows its month
func (m EntriesModel) addEntry(description, amount string) tea.Cmd {
	services := m.services
	load := m.loadEntries
	return func() tea.Msg {
		e, month, err := services.Entry.Log(description, amount)
		if err != nil {
			return entrySaveFailedMsg{err: err}
		}
		return load(month, fmt.Sprintf("Logged: %s (%s)", e.Description, entry.DisplayAmount(e.Amount)))()
	}
}

// editEntry creates a command that updates an entry in place
func (m EntriesModel) editEntry(month timeutil.Month, index int, description, amount string) tea.Cmd {
	services := m.services
	load := m.loadEntries
	return func() tea.Msg {
		e, err := services.Entry.Edit(month, index, description, amount)
		if err != nil {
			return entrySaveFailedMsg{err: err}
		}
		return load(month, fmt.Sprintf("Updated entry %d: %s (%s)", index, e.Description, entry.DisplayAmount(e.Amount)))()
	}
}
