// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewConvert is the conversion form view.
	ViewConvert
	// ViewHistory lists recent conversions.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewConvert:
		return "convert"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ConvertStarted signals a conversion began running.
type ConvertStarted struct {
	InputPath string
}

// ConvertCompleted carries the outcome of a conversion back to the model.
type ConvertCompleted struct {
	Result *driving.ConvertResult
	Err    error
}

// HistoryLoaded carries recent job records from the service.
type HistoryLoaded struct {
	Records []domain.JobRecord
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
