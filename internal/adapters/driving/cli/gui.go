package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/tui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Papyrus.

The GUI provides a form for picking conversion options, runs conversions
without blocking the interface, and shows recent history.

Controls:
  Tab/Shift+Tab - Move between fields
  Enter         - Convert
  Esc           - Back / Cancel
  q             - Quit (outside text fields)`,
	RunE: runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in GUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("gui requires an interactive terminal")
	}

	ports := &tui.Ports{
		Convert:  convertService,
		Settings: settingsService,
		History:  historyService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create GUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("GUI error: %w", err)
	}

	return nil
}
