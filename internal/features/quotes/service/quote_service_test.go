package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"correios-rates/internal/features/quotes/domain"
	settingsdomain "correios-rates/internal/features/settings/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSettings is a SettingsSource returning a fixed snapshot.
type stubSettings struct {
	cfg *settingsdomain.CarrierSettings
	err error
}

func (s *stubSettings) Load(ctx context.Context) (*settingsdomain.CarrierSettings, error) {
	return s.cfg, s.err
}

// stubProvider is a QuoteProvider returning canned quotes and capturing the
// normalized request it received.
type stubProvider struct {
	quotes  []domain.RawQuote
	err     error
	lastReq *domain.NormalizedRequest
}

func (p *stubProvider) Quote(ctx context.Context, req *domain.NormalizedRequest) ([]domain.RawQuote, error) {
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return p.quotes, nil
}

// stubMeasures is a MeasureProvider with configurable units and cart totals.
// Conversions multiply by the target unit's ratio.
type stubMeasures struct {
	weightUnit  *domain.MeasureUnit
	dimUnit     *domain.MeasureUnit
	totalWeight decimal.Decimal
	width       decimal.Decimal
	length      decimal.Decimal
	height      decimal.Decimal
}

func (m *stubMeasures) WeightUnit(ctx context.Context, systemKeyword string) (*domain.MeasureUnit, error) {
	return m.weightUnit, nil
}

func (m *stubMeasures) DimensionUnit(ctx context.Context, systemKeyword string) (*domain.MeasureUnit, error) {
	return m.dimUnit, nil
}

func (m *stubMeasures) TotalCartWeight(ctx context.Context, items []domain.CartItem) (decimal.Decimal, error) {
	return m.totalWeight, nil
}

func (m *stubMeasures) CartDimensions(ctx context.Context, items []domain.CartItem) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	return m.width, m.length, m.height, nil
}

func (m *stubMeasures) ConvertFromPrimaryWeight(ctx context.Context, value decimal.Decimal, to *domain.MeasureUnit) (decimal.Decimal, error) {
	return value.Mul(to.Ratio), nil
}

func (m *stubMeasures) ConvertFromPrimaryDimension(ctx context.Context, value decimal.Decimal, to *domain.MeasureUnit) (decimal.Decimal, error) {
	return value.Mul(to.Ratio), nil
}

// stubCurrencies is a CurrencyProvider over a fixed currency table.
type stubCurrencies struct {
	primary    *domain.Currency
	registered map[string]*domain.Currency
}

func (c *stubCurrencies) CurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return c.registered[code], nil
}

func (c *stubCurrencies) PrimaryCurrency(ctx context.Context) (*domain.Currency, error) {
	return c.primary, nil
}

func (c *stubCurrencies) Convert(ctx context.Context, amount decimal.Decimal, from, to *domain.Currency) (decimal.Decimal, error) {
	return amount.Mul(from.RateToBRL).Div(to.RateToBRL), nil
}

// stubProducts is a ProductCatalog over a fixed price list.
type stubProducts struct {
	prices map[string]decimal.Decimal
}

func (p *stubProducts) UnitPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	price, ok := p.prices[productID]
	if !ok {
		return decimal.Zero, fmt.Errorf("product not found: %s", productID)
	}
	return price, nil
}

func testSettings() *settingsdomain.CarrierSettings {
	return &settingsdomain.CarrierSettings{
		URL:                   "http://ws.example.test/CalcPrecoPrazo.asmx",
		PostalCodeFrom:        "01310100",
		ServicesOffered:       "[04014]:[04510]",
		DefaultServiceName:    "Entrega padrão",
		DefaultRate:           decimal.RequireFromString("25.00"),
		DefaultDeliveryDays:   7,
		PercentageShippingFee: decimal.Zero,
	}
}

func defaultMeasures() *stubMeasures {
	one := decimal.NewFromInt(1)
	return &stubMeasures{
		weightUnit:  &domain.MeasureUnit{SystemKeyword: "kg", Ratio: one},
		dimUnit:     &domain.MeasureUnit{SystemKeyword: "centimeter", Ratio: one},
		totalWeight: decimal.RequireFromString("0.3"),
		width:       decimal.NewFromInt(20),
		length:      decimal.NewFromInt(30),
		height:      decimal.NewFromInt(10),
	}
}

func brlOnlyCurrencies() *stubCurrencies {
	brl := &domain.Currency{Code: "BRL", RateToBRL: decimal.NewFromInt(1)}
	return &stubCurrencies{
		primary:    brl,
		registered: map[string]*domain.Currency{"BRL": brl},
	}
}

func defaultProducts() *stubProducts {
	return &stubProducts{prices: map[string]decimal.Decimal{
		"1001": decimal.RequireFromString("50.00"),
	}}
}

func validRequest() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		ShippingAddress: &domain.Address{
			CountryID:       "BR",
			StateProvinceID: "SP",
			PostalCode:      "04569901",
		},
		Items: []domain.CartItem{
			{ProductID: "1001", Quantity: 2, Weight: decimal.RequireFromString("0.15")},
		},
	}
}

func newTestService(cfg *settingsdomain.CarrierSettings, provider *stubProvider, measures *stubMeasures, currencies *stubCurrencies, products *stubProducts) *QuoteService {
	return NewQuoteService(&stubSettings{cfg: cfg}, provider, measures, currencies, products)
}

// TestQuoteService_Validation verifies that each missing field produces its
// own message, checked in a fixed order, with zero options and no fallback.
func TestQuoteService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *domain.QuoteRequest)
		message string
	}{
		{
			name:    "NoItems",
			mutate:  func(req *domain.QuoteRequest) { req.Items = nil },
			message: msgNoShipmentItems,
		},
		{
			name:    "NoAddress",
			mutate:  func(req *domain.QuoteRequest) { req.ShippingAddress = nil },
			message: msgAddressNotSet,
		},
		{
			name:    "NoCountry",
			mutate:  func(req *domain.QuoteRequest) { req.ShippingAddress.CountryID = "" },
			message: msgCountryNotSet,
		},
		{
			name:    "NoState",
			mutate:  func(req *domain.QuoteRequest) { req.ShippingAddress.StateProvinceID = "" },
			message: msgStateNotSet,
		},
		{
			name:    "NoPostalCode",
			mutate:  func(req *domain.QuoteRequest) { req.ShippingAddress.PostalCode = "" },
			message: msgPostalCodeNotSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{}
			svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

			req := validRequest()
			tt.mutate(req)

			resp, err := svc.ComputeShippingOptions(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, []string{tt.message}, resp.Errors)
			assert.Empty(t, resp.Options)
			assert.Nil(t, provider.lastReq, "carrier must not be called for invalid requests")
		})
	}
}

// TestQuoteService_ValidationOrder verifies that validation stops at the
// first violated condition.
func TestQuoteService_ValidationOrder(t *testing.T) {
	svc := newTestService(testSettings(), &stubProvider{}, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), &domain.QuoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{msgNoShipmentItems}, resp.Errors)
}

// TestQuoteService_ValidQuote verifies the happy path: a single valid quote
// becomes one shipping option named after the service and lead time.
func TestQuoteService_ValidQuote(t *testing.T) {
	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04014", Price: "25,00", DeliveryDays: "5"},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 1)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "Sedex à vista - 5 dia(s)", resp.Options[0].Name)
	assert.True(t, resp.Options[0].Rate.Equal(decimal.RequireFromString("25.00")),
		"got rate %s", resp.Options[0].Rate)
}

// TestQuoteService_MixedQuotes verifies that an invalid quote is skipped
// without affecting its siblings and without surfacing an error.
func TestQuoteService_MixedQuotes(t *testing.T) {
	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04014", Price: "25,00", DeliveryDays: "5"},
		{Code: "04510", Price: "18,70", DeliveryDays: "0"},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Sedex à vista - 5 dia(s)", resp.Options[0].Name)
	assert.Empty(t, resp.Errors)
}

// TestQuoteService_QuoteRejections verifies each per-quote rejection rule.
func TestQuoteService_QuoteRejections(t *testing.T) {
	tests := []struct {
		name  string
		quote domain.RawQuote
	}{
		{"CarrierErrorCode", domain.RawQuote{Code: "04014", Price: "25,00", DeliveryDays: "5", ErrorCode: "-3", ErrorMessage: "CEP inválido"}},
		{"ZeroLeadTime", domain.RawQuote{Code: "04014", Price: "25,00", DeliveryDays: "0"}},
		{"NegativeLeadTime", domain.RawQuote{Code: "04014", Price: "25,00", DeliveryDays: "-1"}},
		{"UnparsableLeadTime", domain.RawQuote{Code: "04014", Price: "25,00", DeliveryDays: "soon"}},
		{"ZeroPrice", domain.RawQuote{Code: "04014", Price: "0,00", DeliveryDays: "5"}},
		{"UnparsablePrice", domain.RawQuote{Code: "04014", Price: "free", DeliveryDays: "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSettings()
			provider := &stubProvider{quotes: []domain.RawQuote{tt.quote}}
			svc := newTestService(cfg, provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

			resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
			require.NoError(t, err)

			// The rejected quote yields no option, so the fallback kicks in.
			require.Len(t, resp.Options, 1)
			assert.Equal(t, "Entrega padrão - 7 dia(s)", resp.Options[0].Name)
			assert.True(t, resp.Options[0].Rate.Equal(cfg.DefaultRate))
			assert.Empty(t, resp.Errors)
		})
	}
}

// TestQuoteService_EmptyErrorCodeMeansSuccess pins the carrier's signal
// convention: only a non-empty error field rejects a quote.
func TestQuoteService_EmptyErrorCodeMeansSuccess(t *testing.T) {
	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04014", Price: "25,00", DeliveryDays: "5", ErrorCode: ""},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Sedex à vista - 5 dia(s)", resp.Options[0].Name)
}

// TestQuoteService_Fallback verifies the fallback option when the carrier
// returns nothing or fails entirely.
func TestQuoteService_Fallback(t *testing.T) {
	t.Run("ZeroQuotes", func(t *testing.T) {
		cfg := testSettings()
		svc := newTestService(cfg, &stubProvider{}, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

		resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		require.NoError(t, err)

		require.Len(t, resp.Options, 1)
		assert.Equal(t, "Entrega padrão - 7 dia(s)", resp.Options[0].Name)
		assert.True(t, resp.Options[0].Rate.Equal(decimal.RequireFromString("25.00")))
		assert.Empty(t, resp.Errors)
	})

	t.Run("ProviderFault", func(t *testing.T) {
		cfg := testSettings()
		provider := &stubProvider{err: errors.New("connection refused")}
		svc := newTestService(cfg, provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

		resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		require.NoError(t, err)

		require.Len(t, resp.Options, 1)
		assert.Equal(t, "Entrega padrão - 7 dia(s)", resp.Options[0].Name)
		assert.Empty(t, resp.Errors)
	})
}

// TestQuoteService_PercentageFee verifies the multiplicative fee adjustment.
func TestQuoteService_PercentageFee(t *testing.T) {
	t.Run("Applied", func(t *testing.T) {
		cfg := testSettings()
		cfg.PercentageShippingFee = decimal.RequireFromString("1.10")

		provider := &stubProvider{quotes: []domain.RawQuote{
			{Code: "04014", Price: "100,00", DeliveryDays: "5"},
		}}
		svc := newTestService(cfg, provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

		resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		require.NoError(t, err)

		require.Len(t, resp.Options, 1)
		assert.True(t, resp.Options[0].Rate.Equal(decimal.RequireFromString("110.00")),
			"got rate %s", resp.Options[0].Rate)
	})

	t.Run("ZeroFeeLeavesRate", func(t *testing.T) {
		cfg := testSettings()
		cfg.PercentageShippingFee = decimal.Zero

		provider := &stubProvider{quotes: []domain.RawQuote{
			{Code: "04014", Price: "100,00", DeliveryDays: "5"},
		}}
		svc := newTestService(cfg, provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

		resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		require.NoError(t, err)

		require.Len(t, resp.Options, 1)
		assert.True(t, resp.Options[0].Rate.Equal(decimal.RequireFromString("100.00")))
	})
}

// TestQuoteService_ExtraDeliveryDays verifies the configured extra days are
// added to the carrier lead time.
func TestQuoteService_ExtraDeliveryDays(t *testing.T) {
	cfg := testSettings()
	cfg.AddDaysForDelivery = 3

	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04014", Price: "25,00", DeliveryDays: "5"},
	}}
	svc := newTestService(cfg, provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Sedex à vista - 8 dia(s)", resp.Options[0].Name)
}

// TestQuoteService_PreservesCarrierOrder verifies options come out in the
// order the carrier returned them.
func TestQuoteService_PreservesCarrierOrder(t *testing.T) {
	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04510", Price: "18,70", DeliveryDays: "9"},
		{Code: "04014", Price: "25,00", DeliveryDays: "5"},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 2)
	assert.Equal(t, "PAC à vista - 9 dia(s)", resp.Options[0].Name)
	assert.Equal(t, "Sedex à vista - 5 dia(s)", resp.Options[1].Name)
}

// TestQuoteService_PtBRPriceParsing verifies the pinned decimal convention,
// including thousand separators.
func TestQuoteService_PtBRPriceParsing(t *testing.T) {
	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04014", Price: "1.234,56", DeliveryDays: "5"},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 1)
	assert.True(t, resp.Options[0].Rate.Equal(decimal.RequireFromString("1234.56")),
		"got rate %s", resp.Options[0].Rate)
}

// TestQuoteService_NormalizedRequest verifies the carrier request assembly:
// service codes, origin default, weight and dimension clamps.
func TestQuoteService_NormalizedRequest(t *testing.T) {
	cfg := testSettings()
	provider := &stubProvider{}
	measures := defaultMeasures()
	measures.totalWeight = decimal.RequireFromString("0.1")
	measures.width = decimal.NewFromInt(1)
	measures.length = decimal.NewFromInt(1)
	measures.height = decimal.NewFromInt(1)

	svc := newTestService(cfg, provider, measures, brlOnlyCurrencies(), defaultProducts())

	_, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	req := provider.lastReq
	require.NotNil(t, req)

	assert.Equal(t, cfg.URL, req.EndpointURL)
	assert.Equal(t, "04014,04510", req.ServiceCodes)
	assert.Equal(t, "01310100", req.PostalCodeFrom, "origin must default from settings")
	assert.Equal(t, "04569901", req.PostalCodeTo)

	assert.Equal(t, 1, req.WeightKg, "weight below 1kg must clamp to 1")
	assert.True(t, req.LengthCm.Equal(decimal.NewFromInt(16)))
	assert.True(t, req.HeightCm.Equal(decimal.NewFromInt(2)))
	assert.True(t, req.WidthCm.Equal(decimal.NewFromInt(11)))
}

// TestQuoteService_OriginOverride verifies a request-level origin postal
// code wins over the configured one.
func TestQuoteService_OriginOverride(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	req := validRequest()
	req.PostalCodeFrom = "80010000"

	_, err := svc.ComputeShippingOptions(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, provider.lastReq)
	assert.Equal(t, "80010000", provider.lastReq.PostalCodeFrom)
}

// TestQuoteService_DeclaredValue verifies the business floor and the
// stricter wire floor on the declared value.
func TestQuoteService_DeclaredValue(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		expected string
	}{
		// 2 × 5.00 = 10.00, floored to 18.0, then bumped past the wire
		// threshold.
		{"BelowBusinessFloor", "5.00", "20.51"},
		// 2 × 9.00 = 18.00: exactly the business floor still fails the wire
		// threshold.
		{"AtBusinessFloor", "9.00", "20.51"},
		// 2 × 10.25 = 20.50: at the wire threshold, must be bumped.
		{"AtWireThreshold", "10.25", "20.51"},
		// 2 × 50.00 = 100.00: above both floors, passes through.
		{"AboveFloors", "50.00", "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{}
			products := &stubProducts{prices: map[string]decimal.Decimal{
				"1001": decimal.RequireFromString(tt.price),
			}}
			svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), products)

			_, err := svc.ComputeShippingOptions(context.Background(), validRequest())
			require.NoError(t, err)

			require.NotNil(t, provider.lastReq)
			assert.True(t, provider.lastReq.DeclaredValue.Equal(decimal.RequireFromString(tt.expected)),
				"got declared value %s", provider.lastReq.DeclaredValue)
			assert.True(t, provider.lastReq.DeclaredValue.GreaterThan(decimal.RequireFromString("20.50")))
		})
	}
}

// TestQuoteService_ConfigurationFaults verifies that unregistered units and
// currencies surface as errors instead of silently falling back.
func TestQuoteService_ConfigurationFaults(t *testing.T) {
	t.Run("WeightUnitMissing", func(t *testing.T) {
		measures := defaultMeasures()
		measures.weightUnit = nil
		svc := newTestService(testSettings(), &stubProvider{}, measures, brlOnlyCurrencies(), defaultProducts())

		resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrUnitNotRegistered)
	})

	t.Run("DimensionUnitMissing", func(t *testing.T) {
		measures := defaultMeasures()
		measures.dimUnit = nil
		svc := newTestService(testSettings(), &stubProvider{}, measures, brlOnlyCurrencies(), defaultProducts())

		_, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrUnitNotRegistered)
	})

	t.Run("CarrierCurrencyMissing", func(t *testing.T) {
		usd := &domain.Currency{Code: "USD", RateToBRL: decimal.RequireFromString("5.40")}
		currencies := &stubCurrencies{
			primary:    usd,
			registered: map[string]*domain.Currency{"USD": usd},
		}
		svc := newTestService(testSettings(), &stubProvider{}, defaultMeasures(), currencies, defaultProducts())

		_, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCurrencyNotRegistered)
	})

	t.Run("ProductLookupFailure", func(t *testing.T) {
		products := &stubProducts{prices: map[string]decimal.Decimal{}}
		svc := newTestService(testSettings(), &stubProvider{}, defaultMeasures(), brlOnlyCurrencies(), products)

		_, err := svc.ComputeShippingOptions(context.Background(), validRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product not found")
	})
}

// TestQuoteService_CurrencyConversion verifies rates come back in store
// currency when the store does not run on BRL.
func TestQuoteService_CurrencyConversion(t *testing.T) {
	usd := &domain.Currency{Code: "USD", RateToBRL: decimal.RequireFromString("5.00")}
	brl := &domain.Currency{Code: "BRL", RateToBRL: decimal.NewFromInt(1)}
	currencies := &stubCurrencies{
		primary:    usd,
		registered: map[string]*domain.Currency{"USD": usd, "BRL": brl},
	}

	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "04014", Price: "25,00", DeliveryDays: "5"},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), currencies, defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	// 25.00 BRL at 5 BRL/USD = 5.00 USD.
	require.Len(t, resp.Options, 1)
	assert.True(t, resp.Options[0].Rate.Equal(decimal.RequireFromString("5.00")),
		"got rate %s", resp.Options[0].Rate)

	// Declared value: 2 × 50.00 USD = 100.00 USD = 500.00 BRL.
	require.NotNil(t, provider.lastReq)
	assert.True(t, provider.lastReq.DeclaredValue.Equal(decimal.RequireFromString("500.00")),
		"got declared value %s", provider.lastReq.DeclaredValue)
}

// TestQuoteService_NilRequest verifies the nil guard.
func TestQuoteService_NilRequest(t *testing.T) {
	svc := newTestService(testSettings(), &stubProvider{}, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	_, err := svc.ComputeShippingOptions(context.Background(), nil)
	assert.Error(t, err)
}

// TestQuoteService_UnknownServiceCode verifies a quote for a code outside
// the catalog still yields an option with an empty service name.
func TestQuoteService_UnknownServiceCode(t *testing.T) {
	provider := &stubProvider{quotes: []domain.RawQuote{
		{Code: "99999", Price: "25,00", DeliveryDays: "5"},
	}}
	svc := newTestService(testSettings(), provider, defaultMeasures(), brlOnlyCurrencies(), defaultProducts())

	resp, err := svc.ComputeShippingOptions(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Options, 1)
	assert.Equal(t, " - 5 dia(s)", resp.Options[0].Name)
}
