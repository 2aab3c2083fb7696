// Package history implements the recent conversions list view.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/styles"
	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
)

// defaultLimit caps how many records the view loads.
const defaultLimit = 20

// Model is the history list view model.
type Model struct {
	history driving.HistoryService

	records []domain.JobRecord
	loaded  bool
	err     error
	cursor  int

	width  int
	height int
	styles *styles.Styles
}

// New creates the history view bound to the given service.
func New(history driving.HistoryService) *Model {
	return &Model{
		history: history,
		styles:  styles.DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.Load()
}

// Load returns a command that fetches recent records.
func (m *Model) Load() tea.Cmd {
	history := m.history
	return func() tea.Msg {
		if history == nil {
			return messages.HistoryLoaded{Err: fmt.Errorf("history service not configured")}
		}
		records, err := history.Recent(context.Background(), defaultLimit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// SetDimensions updates the available rendering area.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// Records returns the loaded records.
func (m *Model) Records() []domain.JobRecord {
	return m.records
}

// Loaded reports whether the initial load has completed.
func (m *Model) Loaded() bool {
	return m.loaded
}

// Err returns the load error, if any.
func (m *Model) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryLoaded:
		m.loaded = true
		m.records = msg.Records
		m.err = msg.Err
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case "r":
			m.loaded = false
			return m, m.Load()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(m.styles.Muted.Render("Loading..."))
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
	case len(m.records) == 0:
		b.WriteString(m.styles.Muted.Render("No conversions yet."))
	default:
		for i, record := range m.records {
			status := m.styles.Success.Render("[ok]")
			if !record.Succeeded() {
				status = m.styles.Error.Render("[failed]")
			}

			line := fmt.Sprintf("%s %s (%s -> %s)",
				status, record.InputPath, record.InputFormat, record.OutputFormat)
			if record.Succeeded() {
				line += m.styles.Muted.Render(fmt.Sprintf(" %d part(s)", record.PartCount))
			}

			prefix := "   "
			if i == m.cursor {
				prefix = " > "
			}
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")

			if i == m.cursor && !record.Succeeded() {
				b.WriteString("     ")
				b.WriteString(m.styles.Error.Render(record.Error))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k: navigate • r: reload • esc: back"))

	return b.String()
}
