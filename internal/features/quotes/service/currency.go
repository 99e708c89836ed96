package service

import (
	"context"
	"errors"
	"fmt"

	"correios-rates/internal/features/quotes/domain"
	"correios-rates/internal/features/quotes/ports"

	"github.com/shopspring/decimal"
)

// providerCurrencyCode is the currency Correios settles in.
const providerCurrencyCode = "BRL"

// ErrCurrencyNotRegistered is returned when the carrier's settlement
// currency is missing from the store's currency table. This is a hard
// configuration fault.
var ErrCurrencyNotRegistered = errors.New("currency not registered")

// CurrencyConverter converts monetary amounts between the store's primary
// currency and the carrier's settlement currency.
type CurrencyConverter struct {
	currencies ports.CurrencyProvider
}

// NewCurrencyConverter creates a new CurrencyConverter.
func NewCurrencyConverter(currencies ports.CurrencyProvider) *CurrencyConverter {
	return &CurrencyConverter{currencies: currencies}
}

// ToProviderCurrency converts an amount from store currency to BRL.
func (c *CurrencyConverter) ToProviderCurrency(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	primary, err := c.currencies.PrimaryCurrency(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve primary currency: %w", err)
	}

	provider, err := c.providerCurrency(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return c.convert(ctx, amount, primary, provider)
}

// ToStoreCurrency converts an amount from BRL to store currency.
func (c *CurrencyConverter) ToStoreCurrency(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	primary, err := c.currencies.PrimaryCurrency(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve primary currency: %w", err)
	}

	provider, err := c.providerCurrency(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return c.convert(ctx, amount, provider, primary)
}

// convert delegates to the currency port, short-circuiting to identity when
// source and target share a currency code.
func (c *CurrencyConverter) convert(ctx context.Context, amount decimal.Decimal, from, to *domain.Currency) (decimal.Decimal, error) {
	if from.Code == to.Code {
		return amount, nil
	}

	converted, err := c.currencies.Convert(ctx, amount, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to convert %s to %s: %w", from.Code, to.Code, err)
	}
	return converted, nil
}

// providerCurrency resolves BRL in the store's currency table.
func (c *CurrencyConverter) providerCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := c.currencies.CurrencyByCode(ctx, providerCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve carrier currency: %w", err)
	}
	if currency == nil {
		return nil, fmt.Errorf("could not load %q currency: %w", providerCurrencyCode, ErrCurrencyNotRegistered)
	}
	return currency, nil
}
