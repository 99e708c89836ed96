package adapter

import (
	"context"
	"fmt"
	"strings"

	"correios-rates/internal/core/config"
	"correios-rates/internal/features/quotes/domain"

	"github.com/shopspring/decimal"
)

// ExchangeRateTable implements the currency system over the store's
// configured exchange rates. Rates are fixed at startup; BRL is always
// registered with rate 1.
type ExchangeRateTable struct {
	primary    string
	currencies map[string]*domain.Currency
}

// NewExchangeRateTable parses the configured "CODE:RATE,..." pairs, where
// RATE is the amount of BRL per one unit of CODE.
func NewExchangeRateTable(cfg config.StoreConfig) (*ExchangeRateTable, error) {
	currencies := map[string]*domain.Currency{
		"BRL": {Code: "BRL", RateToBRL: decimal.NewFromInt(1)},
	}

	if cfg.ExchangeRates != "" {
		for _, pair := range strings.Split(cfg.ExchangeRates, ",") {
			code, rate, ok := strings.Cut(strings.TrimSpace(pair), ":")
			if !ok {
				return nil, fmt.Errorf("malformed exchange rate pair: %q", pair)
			}
			code = strings.ToUpper(strings.TrimSpace(code))
			parsed, err := decimal.NewFromString(strings.TrimSpace(rate))
			if err != nil {
				return nil, fmt.Errorf("malformed exchange rate for %s: %w", code, err)
			}
			if !parsed.GreaterThan(decimal.Zero) {
				return nil, fmt.Errorf("exchange rate for %s must be positive", code)
			}
			currencies[code] = &domain.Currency{Code: code, RateToBRL: parsed}
		}
	}

	primary := strings.ToUpper(cfg.PrimaryCurrency)
	if _, ok := currencies[primary]; !ok {
		return nil, fmt.Errorf("primary currency %s has no exchange rate", primary)
	}

	return &ExchangeRateTable{
		primary:    primary,
		currencies: currencies,
	}, nil
}

// CurrencyByCode resolves a currency by ISO code; nil when unregistered.
func (t *ExchangeRateTable) CurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return t.currencies[strings.ToUpper(code)], nil
}

// PrimaryCurrency returns the store's primary currency.
func (t *ExchangeRateTable) PrimaryCurrency(ctx context.Context) (*domain.Currency, error) {
	return t.currencies[t.primary], nil
}

// Convert converts an amount between two registered currencies through their
// BRL rates.
func (t *ExchangeRateTable) Convert(ctx context.Context, amount decimal.Decimal, from, to *domain.Currency) (decimal.Decimal, error) {
	if from == nil || to == nil {
		return decimal.Zero, fmt.Errorf("cannot convert between unregistered currencies")
	}
	return amount.Mul(from.RateToBRL).Div(to.RateToBRL), nil
}
