package adapter

import (
	"context"
	"fmt"

	"correios-rates/internal/core/config"
	"correios-rates/internal/features/quotes/domain"

	"github.com/shopspring/decimal"
)

// Weight units per kilogram and dimension units per centimeter. A unit's
// conversion ratio from the store's primary unit is derived from these at
// construction.
var (
	weightUnitsPerKg = map[string]decimal.Decimal{
		"kg": decimal.NewFromInt(1),
		"g":  decimal.NewFromInt(1000),
		"lb": decimal.RequireFromString("2.20462262"),
	}
	dimensionUnitsPerCm = map[string]decimal.Decimal{
		"centimeter": decimal.NewFromInt(1),
		"meter":      decimal.RequireFromString("0.01"),
		"inch":       decimal.RequireFromString("0.39370079"),
	}
)

// StoreMeasureAdapter implements the measure system over the store's
// configured primary units and a fixed unit table. Cart weight is the sum of
// per-item weights; cart dimensions assume items are stacked, so heights add
// up while length and width take the largest item.
type StoreMeasureAdapter struct {
	weightUnits    map[string]*domain.MeasureUnit
	dimensionUnits map[string]*domain.MeasureUnit
}

// NewStoreMeasureAdapter creates a StoreMeasureAdapter for the configured
// primary units. It fails when a primary unit is not in the unit table.
func NewStoreMeasureAdapter(cfg config.StoreConfig) (*StoreMeasureAdapter, error) {
	primaryWeight, ok := weightUnitsPerKg[cfg.WeightUnit]
	if !ok {
		return nil, fmt.Errorf("unknown primary weight unit: %s", cfg.WeightUnit)
	}
	primaryDimension, ok := dimensionUnitsPerCm[cfg.DimensionUnit]
	if !ok {
		return nil, fmt.Errorf("unknown primary dimension unit: %s", cfg.DimensionUnit)
	}

	weightUnits := make(map[string]*domain.MeasureUnit, len(weightUnitsPerKg))
	for keyword, perKg := range weightUnitsPerKg {
		weightUnits[keyword] = &domain.MeasureUnit{
			SystemKeyword: keyword,
			Ratio:         perKg.Div(primaryWeight),
		}
	}

	dimensionUnits := make(map[string]*domain.MeasureUnit, len(dimensionUnitsPerCm))
	for keyword, perCm := range dimensionUnitsPerCm {
		dimensionUnits[keyword] = &domain.MeasureUnit{
			SystemKeyword: keyword,
			Ratio:         perCm.Div(primaryDimension),
		}
	}

	return &StoreMeasureAdapter{
		weightUnits:    weightUnits,
		dimensionUnits: dimensionUnits,
	}, nil
}

// WeightUnit resolves a weight unit by system keyword; nil when unregistered.
func (a *StoreMeasureAdapter) WeightUnit(ctx context.Context, systemKeyword string) (*domain.MeasureUnit, error) {
	return a.weightUnits[systemKeyword], nil
}

// DimensionUnit resolves a dimension unit by system keyword; nil when unregistered.
func (a *StoreMeasureAdapter) DimensionUnit(ctx context.Context, systemKeyword string) (*domain.MeasureUnit, error) {
	return a.dimensionUnits[systemKeyword], nil
}

// TotalCartWeight sums the item weights in the store's primary weight unit.
func (a *StoreMeasureAdapter) TotalCartWeight(ctx context.Context, items []domain.CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Weight.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// CartDimensions returns the bounding dimensions of the stacked cart in the
// store's primary dimension unit.
func (a *StoreMeasureAdapter) CartDimensions(ctx context.Context, items []domain.CartItem) (width, length, height decimal.Decimal, err error) {
	width, length, height = decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range items {
		if item.Width.GreaterThan(width) {
			width = item.Width
		}
		if item.Length.GreaterThan(length) {
			length = item.Length
		}
		height = height.Add(item.Height.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return width, length, height, nil
}

// ConvertFromPrimaryWeight converts a value from the store's primary weight
// unit into the target unit.
func (a *StoreMeasureAdapter) ConvertFromPrimaryWeight(ctx context.Context, value decimal.Decimal, to *domain.MeasureUnit) (decimal.Decimal, error) {
	return value.Mul(to.Ratio), nil
}

// ConvertFromPrimaryDimension converts a value from the store's primary
// dimension unit into the target unit.
func (a *StoreMeasureAdapter) ConvertFromPrimaryDimension(ctx context.Context, value decimal.Decimal, to *domain.MeasureUnit) (decimal.Decimal, error) {
	return value.Mul(to.Ratio), nil
}
