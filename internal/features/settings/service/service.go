package service

import (
	"context"
	"errors"
	"fmt"

	"correios-rates/internal/core/config"
	quotesdomain "correios-rates/internal/features/quotes/domain"
	"correios-rates/internal/features/settings/domain"
	"correios-rates/internal/features/settings/ports"

	"github.com/shopspring/decimal"
)

// Validation errors returned by Save.
var (
	ErrEndpointRequired    = errors.New("carrier endpoint URL is required")
	ErrNoServicesSelected  = errors.New("at least one service must be selected")
	ErrNegativeDefaultRate = errors.New("default rate must not be negative")
)

// SettingsServiceImpl implements ports.SettingsService. It also serves as
// the settings source for quote computation: Load returns the stored
// settings, seeded from the application config until a merchant saves their
// own.
type SettingsServiceImpl struct {
	repo     ports.SettingsRepository
	defaults *domain.CarrierSettings
}

// NewSettingsService creates a new SettingsServiceImpl with defaults taken
// from the application config. All catalog services start enabled.
func NewSettingsService(repo ports.SettingsRepository, cfg config.CorreiosConfig) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo: repo,
		defaults: &domain.CarrierSettings{
			URL:                   cfg.URL,
			PostalCodeFrom:        cfg.PostalCodeFrom,
			CompanyCode:           cfg.CompanyCode,
			Password:              cfg.Password,
			ServicesOffered:       quotesdomain.EncodeSelectedServices(quotesdomain.ServiceNames()),
			DefaultServiceName:    cfg.DefaultServiceName,
			DefaultRate:           decimal.NewFromFloat(cfg.DefaultRate),
			DefaultDeliveryDays:   cfg.DefaultDeliveryDays,
			PercentageShippingFee: decimal.NewFromInt(1),
		},
	}
}

// Load returns the current settings snapshot, or the defaults when nothing
// has been saved yet.
func (s *SettingsServiceImpl) Load(ctx context.Context) (*domain.CarrierSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load settings: %w", err)
	}
	if settings == nil {
		defaults := *s.defaults
		return &defaults, nil
	}
	return settings, nil
}

// Save validates and persists new settings.
func (s *SettingsServiceImpl) Save(ctx context.Context, settings *domain.CarrierSettings) error {
	if settings.URL == "" {
		return ErrEndpointRequired
	}
	if len(quotesdomain.DecodeSelectedServices(settings.ServicesOffered)) == 0 {
		return ErrNoServicesSelected
	}
	if settings.DefaultRate.LessThan(decimal.Zero) {
		return ErrNegativeDefaultRate
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("service: failed to save settings: %w", err)
	}
	return nil
}
