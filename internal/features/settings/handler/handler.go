package handler

import (
	"errors"
	"net/http"

	"correios-rates/internal/core/logger"
	quotesdomain "correios-rates/internal/features/quotes/domain"
	"correios-rates/internal/features/settings/domain"
	"correios-rates/internal/features/settings/ports"
	"correios-rates/internal/features/settings/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SettingsHandler handles HTTP requests for carrier settings.
type SettingsHandler struct {
	service ports.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// SettingsPayload is the HTTP representation of the carrier settings. The
// enabled services travel as display names; the persisted encoding never
// leaves the server.
type SettingsPayload struct {
	URL                   string          `json:"url"`
	PostalCodeFrom        string          `json:"postal_code_from"`
	CompanyCode           string          `json:"company_code"`
	Password              string          `json:"password"`
	AddDaysForDelivery    int             `json:"add_days_for_delivery"`
	Services              []string        `json:"services"`
	DefaultServiceName    string          `json:"default_service_name"`
	DefaultRate           decimal.Decimal `json:"default_rate"`
	DefaultDeliveryDays   int             `json:"default_delivery_days"`
	PercentageShippingFee decimal.Decimal `json:"percentage_shipping_fee"`
}

// GetSettings handles GET /shipping/settings.
// @Summary Get the carrier settings
// @Description Returns the current Correios settings, with the enabled services listed by name.
// @Tags Settings
// @Produce json
// @Success 200 {object} SettingsPayload
// @Failure 500 {object} map[string]string
// @Router /shipping/settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Load(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load settings", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(toPayload(settings))
}

// UpdateSettings handles PUT /shipping/settings.
// @Summary Update the carrier settings
// @Description Validates and persists new Correios settings. Unknown service names are rejected.
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body SettingsPayload true "Carrier settings"
// @Success 200 {object} SettingsPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /shipping/settings [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var payload SettingsPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	for _, name := range payload.Services {
		if quotesdomain.ServiceCode(name) == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown service: " + name,
			})
		}
	}

	settings := fromPayload(&payload)
	if err := h.service.Save(c.Context(), settings); err != nil {
		if errors.Is(err, service.ErrEndpointRequired) ||
			errors.Is(err, service.ErrNoServicesSelected) ||
			errors.Is(err, service.ErrNegativeDefaultRate) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to save settings", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(toPayload(settings))
}

// toPayload maps the domain settings to their HTTP representation.
func toPayload(settings *domain.CarrierSettings) *SettingsPayload {
	return &SettingsPayload{
		URL:                   settings.URL,
		PostalCodeFrom:        settings.PostalCodeFrom,
		CompanyCode:           settings.CompanyCode,
		Password:              settings.Password,
		AddDaysForDelivery:    settings.AddDaysForDelivery,
		Services:              quotesdomain.DecodeSelectedServices(settings.ServicesOffered),
		DefaultServiceName:    settings.DefaultServiceName,
		DefaultRate:           settings.DefaultRate,
		DefaultDeliveryDays:   settings.DefaultDeliveryDays,
		PercentageShippingFee: settings.PercentageShippingFee,
	}
}

// fromPayload maps the HTTP representation to the domain settings.
func fromPayload(payload *SettingsPayload) *domain.CarrierSettings {
	return &domain.CarrierSettings{
		URL:                   payload.URL,
		PostalCodeFrom:        payload.PostalCodeFrom,
		CompanyCode:           payload.CompanyCode,
		Password:              payload.Password,
		AddDaysForDelivery:    payload.AddDaysForDelivery,
		ServicesOffered:       quotesdomain.EncodeSelectedServices(payload.Services),
		DefaultServiceName:    payload.DefaultServiceName,
		DefaultRate:           payload.DefaultRate,
		DefaultDeliveryDays:   payload.DefaultDeliveryDays,
		PercentageShippingFee: payload.PercentageShippingFee,
	}
}
