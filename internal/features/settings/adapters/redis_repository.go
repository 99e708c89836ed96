package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"correios-rates/internal/core/cache"
	"correios-rates/internal/features/settings/domain"
)

const settingsCacheKey = "correios_settings"

// RedisSettingsRepository implements ports.SettingsRepository on top of the
// cache port.
type RedisSettingsRepository struct {
	cache cache.Cache
}

// NewRedisSettingsRepository creates a new RedisSettingsRepository.
func NewRedisSettingsRepository(c cache.Cache) *RedisSettingsRepository {
	return &RedisSettingsRepository{
		cache: c,
	}
}

// Get retrieves the stored settings, or nil when none have been saved yet.
func (r *RedisSettingsRepository) Get(ctx context.Context) (*domain.CarrierSettings, error) {
	data, err := r.cache.Get(ctx, settingsCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings from cache: %w", err)
	}

	var settings domain.CarrierSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

// Save persists the settings without expiration.
func (r *RedisSettingsRepository) Save(ctx context.Context, settings *domain.CarrierSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := r.cache.Set(ctx, settingsCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save settings to cache: %w", err)
	}

	return nil
}
