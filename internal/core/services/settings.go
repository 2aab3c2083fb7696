package services

import (
	"fmt"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLocale      = "convert.locale"
	keyTableFormat = "convert.table_format"
	keyChunkSize   = "convert.chunk_size"
	keyOutputDir   = "convert.output_dir"
)

// SettingsService manages the persisted last-used conversion options.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, applying defaults for unset keys.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := domain.AppSettings{
		Locale:      defaults.Locale,
		TableFormat: defaults.TableFormat,
		ChunkSize:   defaults.ChunkSize,
		OutputDir:   defaults.OutputDir,
	}

	if v := s.configStore.GetString(keyLocale); v != "" {
		settings.Locale = v
	}
	if v := domain.TableFormat(s.configStore.GetString(keyTableFormat)); v.IsValid() {
		settings.TableFormat = v
	}
	if v := s.configStore.GetInt(keyChunkSize); v > 0 {
		settings.ChunkSize = v
	}
	if v := s.configStore.GetString(keyOutputDir); v != "" {
		settings.OutputDir = v
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings domain.AppSettings) error {
	if err := s.configStore.Set(keyLocale, settings.Locale); err != nil {
		return fmt.Errorf("save locale: %w", err)
	}
	if err := s.configStore.Set(keyTableFormat, settings.TableFormat.String()); err != nil {
		return fmt.Errorf("save table format: %w", err)
	}
	if err := s.configStore.Set(keyChunkSize, settings.ChunkSize); err != nil {
		return fmt.Errorf("save chunk size: %w", err)
	}
	if err := s.configStore.Set(keyOutputDir, settings.OutputDir); err != nil {
		return fmt.Errorf("save output dir: %w", err)
	}
	return nil
}
