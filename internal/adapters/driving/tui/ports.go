// Package tui provides an interactive terminal user interface for papyrus.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Convert runs conversion jobs.
	Convert driving.ConvertService

	// Settings manages the persisted conversion defaults.
	Settings driving.SettingsService

	// History exposes past conversion outcomes.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(convert driving.ConvertService, settings driving.SettingsService, history driving.HistoryService) *Ports {
	return &Ports{
		Convert:  convert,
		Settings: settings,
		History:  history,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Convert == nil {
		return ErrMissingConvertService
	}
	return nil
}
