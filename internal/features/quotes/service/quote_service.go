package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"correios-rates/internal/core/logger"
	"correios-rates/internal/features/quotes/domain"
	"correios-rates/internal/features/quotes/ports"
	settingsdomain "correios-rates/internal/features/settings/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// User-facing validation messages, checked in this fixed order.
const (
	msgNoShipmentItems  = "No shipment items"
	msgAddressNotSet    = "Shipping address is not set"
	msgCountryNotSet    = "Shipping country is not set"
	msgStateNotSet      = "Shipping state is not set"
	msgPostalCodeNotSet = "Shipping zip postal code is not set"
)

var (
	// minDeclaredValue is the business floor on the declared value, in BRL.
	minDeclaredValue = decimal.RequireFromString("18.0")
	// wireDeclaredFloor is the threshold the carrier rejects declared values
	// at or below; wireDeclaredMin replaces any such value on the wire.
	wireDeclaredFloor = decimal.RequireFromString("20.50")
	wireDeclaredMin   = decimal.RequireFromString("20.51")
)

// QuoteService orchestrates shipping quote computation: it validates the
// inbound request, normalizes it for the carrier, invokes the quote provider
// and aggregates the per-service results, falling back to the configured
// default option when no valid quote survives.
type QuoteService struct {
	settings ports.SettingsSource
	provider ports.QuoteProvider
	products ports.ProductCatalog
	units    *UnitNormalizer
	currency *CurrencyConverter
	logger   *zap.Logger
}

// NewQuoteService creates a new QuoteService over the given ports.
func NewQuoteService(
	settings ports.SettingsSource,
	provider ports.QuoteProvider,
	measures ports.MeasureProvider,
	currencies ports.CurrencyProvider,
	products ports.ProductCatalog,
) *QuoteService {
	return &QuoteService{
		settings: settings,
		provider: provider,
		products: products,
		units:    NewUnitNormalizer(measures),
		currency: NewCurrencyConverter(currencies),
		logger:   logger.Get(),
	}
}

// ComputeShippingOptions computes the shipping options for a request.
//
// Validation failures produce a response carrying a single user-facing
// message and no options. Configuration faults (unregistered units or
// currencies, product lookup failures) are returned as errors. Carrier
// transport faults and invalid per-service quotes are logged and absorbed;
// whenever no valid quote survives, the configured fallback option is
// returned instead.
func (s *QuoteService) ComputeShippingOptions(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResponse, error) {
	if req == nil {
		return nil, errors.New("quote request is nil")
	}

	resp := &domain.QuoteResponse{}

	if msg := validateRequest(req); msg != "" {
		resp.Errors = append(resp.Errors, msg)
		return resp, nil
	}

	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load carrier settings: %w", err)
	}

	normalized, err := s.buildCarrierRequest(ctx, cfg, req)
	if err != nil {
		return nil, err
	}

	quotes, err := s.provider.Quote(ctx, normalized)
	if err != nil {
		s.logger.Error("carrier quote request failed",
			zap.String("endpoint", normalized.EndpointURL),
			zap.Error(err),
		)
		quotes = nil
	}

	for _, quote := range quotes {
		option, err := s.buildOption(ctx, cfg, quote)
		if err != nil {
			s.logger.Warn("discarding carrier quote",
				zap.String("service_code", quote.Code),
				zap.Error(err),
			)
			continue
		}
		resp.Options = append(resp.Options, *option)
	}

	if len(resp.Options) == 0 {
		resp.Options = append(resp.Options, domain.ShippingOption{
			Name: optionName(cfg.DefaultServiceName, cfg.DefaultDeliveryDays),
			Rate: cfg.DefaultRate,
		})
	}

	return resp, nil
}

// validateRequest checks the request in a fixed order and returns the
// message of the first violated condition, or "" when the request is valid.
func validateRequest(req *domain.QuoteRequest) string {
	if len(req.Items) == 0 {
		return msgNoShipmentItems
	}
	if req.ShippingAddress == nil {
		return msgAddressNotSet
	}
	if req.ShippingAddress.CountryID == "" {
		return msgCountryNotSet
	}
	if req.ShippingAddress.StateProvinceID == "" {
		return msgStateNotSet
	}
	if req.ShippingAddress.PostalCode == "" {
		return msgPostalCodeNotSet
	}
	return ""
}

// buildCarrierRequest assembles the normalized carrier request from the
// inbound request and the settings snapshot.
func (s *QuoteService) buildCarrierRequest(ctx context.Context, cfg *settingsdomain.CarrierSettings, req *domain.QuoteRequest) (*domain.NormalizedRequest, error) {
	postalCodeFrom := req.PostalCodeFrom
	if postalCodeFrom == "" {
		postalCodeFrom = cfg.PostalCodeFrom
	}

	weight, err := s.units.NormalizeWeight(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	width, length, height, err := s.units.NormalizeDimensions(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	declared, err := s.declaredValue(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	// The carrier rejects declared values at or below 20.50 even though the
	// business floor is 18.0; bump the wire value only.
	if !declared.GreaterThan(wireDeclaredFloor) {
		declared = wireDeclaredMin
	}

	return &domain.NormalizedRequest{
		EndpointURL:    cfg.URL,
		CompanyCode:    cfg.CompanyCode,
		Password:       cfg.Password,
		ServiceCodes:   domain.WireServiceList(cfg.ServicesOffered),
		PostalCodeFrom: postalCodeFrom,
		PostalCodeTo:   req.ShippingAddress.PostalCode,
		WeightKg:       weight,
		LengthCm:       length,
		HeightCm:       height,
		WidthCm:        width,
		DeclaredValue:  declared,
	}, nil
}

// declaredValue sums the store-currency price of every cart item, converts
// it to BRL and applies the 18.0 business floor.
func (s *QuoteService) declaredValue(ctx context.Context, items []domain.CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		price, err := s.products.UnitPrice(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to resolve price of product %s: %w", item.ProductID, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	declared, err := s.currency.ToProviderCurrency(ctx, total)
	if err != nil {
		return decimal.Zero, err
	}

	if declared.LessThan(minDeclaredValue) {
		declared = minDeclaredValue
	}
	return declared, nil
}

// buildOption validates a single raw carrier quote and turns it into a
// shipping option with fee and extra-days adjustments applied. An error
// rejects only this quote, never its siblings.
func (s *QuoteService) buildOption(ctx context.Context, cfg *settingsdomain.CarrierSettings, quote domain.RawQuote) (*domain.ShippingOption, error) {
	// An empty error field means success; the carrier signals per-service
	// failures by filling it in.
	if quote.ErrorCode != "" {
		return nil, fmt.Errorf("carrier error %s - %s", quote.ErrorCode, quote.ErrorMessage)
	}

	days, err := strconv.Atoi(strings.TrimSpace(quote.DeliveryDays))
	if err != nil || days <= 0 {
		return nil, errors.New("delivery uninformed")
	}

	price, err := parseCarrierPrice(quote.Price)
	if err != nil || !price.GreaterThan(decimal.Zero) {
		return nil, errors.New("invalid value delivery")
	}

	rate, err := s.currency.ToStoreCurrency(ctx, price)
	if err != nil {
		return nil, err
	}

	if cfg.PercentageShippingFee.GreaterThan(decimal.Zero) {
		rate = rate.Mul(cfg.PercentageShippingFee)
	}

	if cfg.AddDaysForDelivery > 0 {
		days += cfg.AddDaysForDelivery
	}

	return &domain.ShippingOption{
		Name: optionName(domain.ServiceName(quote.Code), days),
		Rate: rate,
	}, nil
}

// parseCarrierPrice parses a price in the pt-BR decimal convention
// ("1.234,56"): dots separate thousands, the comma is the decimal mark.
// The format is pinned; the ambient locale never participates.
func parseCarrierPrice(price string) (decimal.Decimal, error) {
	price = strings.TrimSpace(price)
	price = strings.ReplaceAll(price, ".", "")
	price = strings.ReplaceAll(price, ",", ".")
	return decimal.NewFromString(price)
}

// optionName formats the display name of a shipping option.
func optionName(serviceName string, days int) string {
	return fmt.Sprintf("%s - %d dia(s)", serviceName, days)
}
