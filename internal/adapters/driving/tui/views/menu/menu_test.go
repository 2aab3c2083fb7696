package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/messages"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_DefaultEntries(t *testing.T) {
	m := New()

	require.Len(t, m.Items(), 4)
	assert.Equal(t, "Convert", m.Items()[0].Label)
	assert.Equal(t, "Quit", m.Items()[3].Label)
	assert.True(t, m.Items()[3].Quit)
	assert.Equal(t, 0, m.Cursor())
}

func TestMenu_Navigation(t *testing.T) {
	m := New()

	m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.Cursor())

	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.Cursor())

	// Cannot move above the first entry
	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.Cursor())
}

func TestMenu_NavigationClampsAtBottom(t *testing.T) {
	m := New()

	for i := 0; i < 10; i++ {
		m.Update(keyMsg("j"))
	}

	assert.Equal(t, len(m.Items())-1, m.Cursor())
}

func TestMenu_EnterSelectsView(t *testing.T) {
	m := New()
	m.Update(keyMsg("j")) // History

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewHistory, changed.View)
}

func TestMenu_EnterOnQuitEntry(t *testing.T) {
	m := New()
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("j"))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, messages.Quit{}, cmd())
}

func TestMenu_QKeyQuits(t *testing.T) {
	m := New()

	_, cmd := m.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, messages.Quit{}, cmd())
}

func TestMenu_View(t *testing.T) {
	m := New()
	m.SetDimensions(80, 24)

	view := m.View()

	assert.Contains(t, view, "papyrus")
	assert.Contains(t, view, "Convert")
	assert.Contains(t, view, "History")
}
