// Package convert implements the conversion form view.
package convert

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/styles"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
)

// Field indices into the form inputs.
const (
	fieldInputPath = iota
	fieldOutputDir
	fieldLocale
	fieldTableFormat
	fieldChunkSize
	fieldCount
)

// Model is the conversion form view model.
type Model struct {
	convert driving.ConvertService

	inputs  []textinput.Model
	focused int

	running bool
	result  *driving.ConvertResult
	err     error

	width  int
	height int
	styles *styles.Styles

	ctx context.Context
}

// New creates the convert form bound to the given service.
func New(convert driving.ConvertService) *Model {
	labels := []string{
		"Input file",
		"Output directory",
		"Locale",
		"Table format (tsv/pipe)",
		"Chunk size (bytes, empty for none)",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 256
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[fieldInputPath].Focus()
	inputs[fieldLocale].Placeholder = "en-US"
	inputs[fieldTableFormat].Placeholder = "tsv"

	return &Model{
		convert: convert,
		inputs:  inputs,
		styles:  styles.DefaultStyles(),
		ctx:     context.Background(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetContext sets the context used for conversions started from this view.
func (m *Model) SetContext(ctx context.Context) {
	if ctx != nil {
		m.ctx = ctx
	}
}

// SetDimensions updates the available rendering area.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the index of the focused field.
func (m *Model) Focused() int {
	return m.focused
}

// Running reports whether a conversion is in flight.
func (m *Model) Running() bool {
	return m.running
}

// Err returns the last conversion error, if any.
func (m *Model) Err() error {
	return m.err
}

// Result returns the last successful conversion result, if any.
func (m *Model) Result() *driving.ConvertResult {
	return m.result
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			if m.running {
				return m, nil
			}
			return m, m.startConversion()
		}

	case messages.ConvertCompleted:
		m.running = false
		m.result = msg.Result
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) focusField(index int) {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}

func (m *Model) startConversion() tea.Cmd {
	inputPath := strings.TrimSpace(m.inputs[fieldInputPath].Value())
	if inputPath == "" {
		m.err = fmt.Errorf("input file is required")
		return nil
	}

	opts := driving.JobOptions{
		OutputDir:   strings.TrimSpace(m.inputs[fieldOutputDir].Value()),
		Locale:      strings.TrimSpace(m.inputs[fieldLocale].Value()),
		TableFormat: strings.TrimSpace(m.inputs[fieldTableFormat].Value()),
	}

	if raw := strings.TrimSpace(m.inputs[fieldChunkSize].Value()); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			m.err = fmt.Errorf("chunk size must be a number: %q", raw)
			return nil
		}
		opts.ChunkSize = size
		opts.ChunkSizeSet = true
	}

	m.running = true
	m.result = nil
	m.err = nil

	ctx := m.ctx
	convert := m.convert
	return func() tea.Msg {
		job := convert.NewJob(inputPath, opts)
		result, err := convert.Run(ctx, job)
		return messages.ConvertCompleted{Result: result, Err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Convert"))
	b.WriteString("\n\n")

	labels := []string{"Input file", "Output dir", "Locale", "Table format", "Chunk size"}
	for i, input := range m.inputs {
		label := labels[i]
		if i == m.focused {
			b.WriteString(m.styles.Subtitle.Render(label))
		} else {
			b.WriteString(m.styles.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.running:
		b.WriteString(m.styles.Muted.Render("Converting..."))
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
	case m.result != nil:
		b.WriteString(m.styles.Success.Render(fmt.Sprintf("Wrote %d part(s):", m.result.PartCount)))
		for _, path := range m.result.Paths {
			b.WriteString("\n  ")
			b.WriteString(m.styles.Normal.Render(path))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("tab: next field • enter: convert • esc: back"))

	return b.String()
}
