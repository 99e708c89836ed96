package ports

import (
	"context"

	"correios-rates/internal/features/settings/domain"
)

// SettingsService defines the primary port for carrier settings operations.
type SettingsService interface {
	// Load returns the current settings, falling back to the configured
	// defaults when nothing has been saved yet.
	Load(ctx context.Context) (*domain.CarrierSettings, error)
	// Save validates and persists new settings.
	Save(ctx context.Context, settings *domain.CarrierSettings) error
}

// SettingsRepository defines the secondary port for settings storage.
type SettingsRepository interface {
	// Get returns the stored settings, or nil when none have been saved.
	Get(ctx context.Context) (*domain.CarrierSettings, error)
	// Save persists the settings, replacing any previous version.
	Save(ctx context.Context, settings *domain.CarrierSettings) error
}
