package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/styles"
	convertview "github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/views/convert"
	historyview "github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/views/history"
	menuview "github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui/views/menu"
)

// App is the root Bubbletea model. It routes messages to the active view
// and owns cross-view state like dimensions.
type App struct {
	ports *Ports

	menu    *menuview.Model
	convert *convertview.Model
	history *historyview.Model

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
	err         error

	styles *styles.Styles
}

// NewApp creates the application model. The ports must pass validation.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	return &App{
		ports:       ports,
		menu:        menuview.New(),
		convert:     convertview.New(ports.Convert),
		history:     historyview.New(ports.History),
		currentView: messages.ViewMenu,
		styles:      styles.DefaultStyles(),
	}, nil
}

// WithContext sets the context conversions run under, typically the
// command's context so Ctrl-C cancels in-flight work.
func (a *App) WithContext(ctx context.Context) *App {
	a.convert.SetContext(ctx)
	return a
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready reports whether the first window size has been received.
func (a *App) Ready() bool {
	return a.ready
}

// Err returns the last routed error, if any.
func (a *App) Err() error {
	return a.err
}

// SetDimensions propagates the rendering area to all views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.menu.SetDimensions(width, height)
	a.convert.SetDimensions(width, height)
	a.history.SetDimensions(width, height)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("papyrus - document converter"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		a.ready = true
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHistory {
			return a, a.history.Load()
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.ConvertCompleted:
		return a, a.routeToView(messages.ViewConvert, msg)

	case messages.HistoryLoaded:
		return a, a.routeToView(messages.ViewHistory, msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.currentView != messages.ViewMenu {
				a.currentView = messages.ViewMenu
				return a, nil
			}
		}
		return a, a.routeToView(a.currentView, msg)
	}

	return a, a.routeToView(a.currentView, msg)
}

// routeToView delivers a message to a specific view's model.
func (a *App) routeToView(view messages.ViewType, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch view {
	case messages.ViewMenu:
		_, cmd = a.menu.Update(msg)
	case messages.ViewConvert:
		_, cmd = a.convert.Update(msg)
	case messages.ViewHistory:
		_, cmd = a.history.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menu.View()
	case messages.ViewConvert:
		return a.convert.View()
	case messages.ViewHistory:
		return a.history.View()
	case messages.ViewHelp:
		return a.helpView()
	default:
		return a.menu.View()
	}
}

func (a *App) helpView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtitle.Render("Global"))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  ctrl+c  quit\n"))
	b.WriteString(a.styles.Normal.Render("  esc     back to menu\n"))
	b.WriteString("\n")
	b.WriteString(a.styles.Subtitle.Render("Menu"))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  j/k     move\n"))
	b.WriteString(a.styles.Normal.Render("  enter   select\n"))
	b.WriteString("\n")
	b.WriteString(a.styles.Subtitle.Render("Convert"))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  tab     next field\n"))
	b.WriteString(a.styles.Normal.Render("  enter   run conversion\n"))
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("esc: back"))

	return b.String()
}
