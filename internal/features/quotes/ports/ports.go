package ports

import (
	"context"

	"correios-rates/internal/features/quotes/domain"
	settingsdomain "correios-rates/internal/features/settings/domain"

	"github.com/shopspring/decimal"
)

// QuoteService is the primary port for shipping quote computation.
type QuoteService interface {
	// ComputeShippingOptions validates the request, queries the carrier and
	// returns the shipping options. The returned error is reserved for
	// configuration faults; validation problems travel in the response.
	ComputeShippingOptions(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResponse, error)
}

// QuoteProvider is the carrier-facing secondary port: given a normalized
// request it returns the raw per-service quote records in carrier order, or
// fails with a transport-level error.
type QuoteProvider interface {
	Quote(ctx context.Context, req *domain.NormalizedRequest) ([]domain.RawQuote, error)
}

// SettingsSource loads the carrier settings snapshot for a request.
type SettingsSource interface {
	Load(ctx context.Context) (*settingsdomain.CarrierSettings, error)
}

// MeasureProvider exposes the store's measure system.
type MeasureProvider interface {
	// WeightUnit resolves a weight unit by system keyword; nil when the
	// keyword is not registered.
	WeightUnit(ctx context.Context, systemKeyword string) (*domain.MeasureUnit, error)
	// DimensionUnit resolves a dimension unit by system keyword; nil when the
	// keyword is not registered.
	DimensionUnit(ctx context.Context, systemKeyword string) (*domain.MeasureUnit, error)
	// TotalCartWeight returns the summed weight of the items in the store's
	// primary weight unit.
	TotalCartWeight(ctx context.Context, items []domain.CartItem) (decimal.Decimal, error)
	// CartDimensions returns the aggregate bounding dimensions of the items
	// in the store's primary dimension unit.
	CartDimensions(ctx context.Context, items []domain.CartItem) (width, length, height decimal.Decimal, err error)
	// ConvertFromPrimaryWeight converts a value from the store's primary
	// weight unit into the target unit.
	ConvertFromPrimaryWeight(ctx context.Context, value decimal.Decimal, to *domain.MeasureUnit) (decimal.Decimal, error)
	// ConvertFromPrimaryDimension converts a value from the store's primary
	// dimension unit into the target unit.
	ConvertFromPrimaryDimension(ctx context.Context, value decimal.Decimal, to *domain.MeasureUnit) (decimal.Decimal, error)
}

// CurrencyProvider exposes the store's currency table and conversion.
type CurrencyProvider interface {
	// CurrencyByCode resolves a currency by ISO code; nil when the code is
	// not registered in the store.
	CurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	// PrimaryCurrency returns the store's primary currency.
	PrimaryCurrency(ctx context.Context) (*domain.Currency, error)
	// Convert converts an amount between two registered currencies.
	Convert(ctx context.Context, amount decimal.Decimal, from, to *domain.Currency) (decimal.Decimal, error)
}

// ProductCatalog resolves product prices in the host store.
type ProductCatalog interface {
	// UnitPrice returns the product's unit price in store currency.
	UnitPrice(ctx context.Context, productID string) (decimal.Decimal, error)
}
