package driving

import (
	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// SettingsService manages the persisted last-used conversion options.
type SettingsService interface {
	// Get retrieves current settings, applying defaults for unset keys.
	Get() (domain.AppSettings, error)

	// Save persists settings.
	Save(settings domain.AppSettings) error
}
