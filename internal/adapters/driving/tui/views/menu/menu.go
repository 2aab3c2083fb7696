// Package menu implements the main navigation menu view.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/styles"
)

// Item is a single menu entry.
type Item struct {
	// Label is the text shown for this entry.
	Label string

	// Description is a short explanation shown next to the label.
	Description string

	// View is the view this entry navigates to.
	View messages.ViewType

	// Quit marks the entry that exits the application.
	Quit bool
}

// Model is the menu view model.
type Model struct {
	items  []Item
	cursor int
	width  int
	height int
	styles *styles.Styles
}

// New creates the menu model with the default entries.
func New() *Model {
	return &Model{
		items: []Item{
			{Label: "Convert", Description: "Convert a document to plain text", View: messages.ViewConvert},
			{Label: "History", Description: "Browse recent conversions", View: messages.ViewHistory},
			{Label: "Help", Description: "Keybindings and usage", View: messages.ViewHelp},
			{Label: "Quit", Description: "Exit papyrus", Quit: true},
		},
		styles: styles.DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetDimensions updates the available rendering area.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the index of the highlighted entry.
func (m *Model) Cursor() int {
	return m.cursor
}

// Items returns the menu entries.
func (m *Model) Items() []Item {
	return m.items
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.selectItem()
		case "q":
			return m, func() tea.Msg { return messages.Quit{} }
		}
	}
	return m, nil
}

func (m *Model) selectItem() tea.Cmd {
	item := m.items[m.cursor]
	if item.Quit {
		return func() tea.Msg { return messages.Quit{} }
	}
	view := item.View
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("papyrus"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Document conversion"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%s  %s", item.Label, m.styles.Muted.Render(item.Description))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(" > " + item.Label))
			b.WriteString("  ")
			b.WriteString(m.styles.Muted.Render(item.Description))
		} else {
			b.WriteString("   ")
			b.WriteString(m.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k: navigate • enter: select • q: quit"))

	return b.String()
}
