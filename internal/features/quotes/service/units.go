package service

import (
	"context"
	"errors"
	"fmt"

	"correios-rates/internal/features/quotes/domain"
	"correios-rates/internal/features/quotes/ports"

	"github.com/shopspring/decimal"
)

// Units and bounds mandated by the Correios calculator.
const (
	weightUnitKeyword    = "kg"
	dimensionUnitKeyword = "centimeter"
)

var (
	minLengthCm = decimal.NewFromInt(16)
	minHeightCm = decimal.NewFromInt(2)
	minWidthCm  = decimal.NewFromInt(11)
)

// ErrUnitNotRegistered is returned when a measure unit required by the
// carrier is not registered in the store's measure system. This is a
// configuration fault, not a transient one; callers must not retry.
var ErrUnitNotRegistered = errors.New("measure unit not registered")

// UnitNormalizer converts cart weight and dimensions from the store's
// primary units into the units and bounds the carrier requires.
type UnitNormalizer struct {
	measures ports.MeasureProvider
}

// NewUnitNormalizer creates a new UnitNormalizer.
func NewUnitNormalizer(measures ports.MeasureProvider) *UnitNormalizer {
	return &UnitNormalizer{measures: measures}
}

// NormalizeWeight sums the cart weight, converts it to kilograms, rounds up
// to the next whole kilogram and clamps the result to a minimum of 1.
func (n *UnitNormalizer) NormalizeWeight(ctx context.Context, items []domain.CartItem) (int, error) {
	unit, err := n.measures.WeightUnit(ctx, weightUnitKeyword)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve weight unit: %w", err)
	}
	if unit == nil {
		return 0, fmt.Errorf("could not load %q measure weight: %w", weightUnitKeyword, ErrUnitNotRegistered)
	}

	total, err := n.measures.TotalCartWeight(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("failed to compute cart weight: %w", err)
	}

	converted, err := n.measures.ConvertFromPrimaryWeight(ctx, total, unit)
	if err != nil {
		return 0, fmt.Errorf("failed to convert cart weight: %w", err)
	}

	kg := int(converted.Ceil().IntPart())
	if kg < 1 {
		kg = 1
	}
	return kg, nil
}

// NormalizeDimensions converts the cart's aggregate bounding dimensions to
// centimeters and clamps each to the carrier minimum (length 16, height 2,
// width 11). No maximum is applied; the carrier rejects oversized parcels
// itself.
func (n *UnitNormalizer) NormalizeDimensions(ctx context.Context, items []domain.CartItem) (width, length, height decimal.Decimal, err error) {
	unit, err := n.measures.DimensionUnit(ctx, dimensionUnitKeyword)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to resolve dimension unit: %w", err)
	}
	if unit == nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("could not load %q measure dimension: %w", dimensionUnitKeyword, ErrUnitNotRegistered)
	}

	width, length, height, err = n.measures.CartDimensions(ctx, items)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute cart dimensions: %w", err)
	}

	length, err = n.measures.ConvertFromPrimaryDimension(ctx, length, unit)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to convert length: %w", err)
	}
	if length.LessThan(minLengthCm) {
		length = minLengthCm
	}

	height, err = n.measures.ConvertFromPrimaryDimension(ctx, height, unit)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to convert height: %w", err)
	}
	if height.LessThan(minHeightCm) {
		height = minHeightCm
	}

	width, err = n.measures.ConvertFromPrimaryDimension(ctx, width, unit)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to convert width: %w", err)
	}
	if width.LessThan(minWidthCm) {
		width = minWidthCm
	}

	return width, length, height, nil
}
