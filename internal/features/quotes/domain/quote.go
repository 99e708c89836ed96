package domain

import "github.com/shopspring/decimal"

// CartItem is a single order line the shopper wants shipped.
// Weight and dimensions are expressed in the store's primary units.
type CartItem struct {
	// ProductID identifies the product in the host store.
	ProductID string `json:"product_id"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// Weight is the unit weight in the store's primary weight unit.
	Weight decimal.Decimal `json:"weight"`
	// Length is the unit length in the store's primary dimension unit.
	Length decimal.Decimal `json:"length"`
	// Width is the unit width in the store's primary dimension unit.
	Width decimal.Decimal `json:"width"`
	// Height is the unit height in the store's primary dimension unit.
	Height decimal.Decimal `json:"height"`
}

// Address is the shipping destination.
type Address struct {
	// CountryID identifies the destination country in the host store.
	CountryID string `json:"country_id"`
	// StateProvinceID identifies the destination state/province.
	StateProvinceID string `json:"state_province_id"`
	// PostalCode is the destination postal code (CEP).
	PostalCode string `json:"postal_code"`
}

// QuoteRequest is the inbound shipping-option request.
type QuoteRequest struct {
	// PostalCodeFrom optionally overrides the configured origin postal code.
	PostalCodeFrom string `json:"postal_code_from,omitempty"`
	// ShippingAddress is the destination address.
	ShippingAddress *Address `json:"shipping_address"`
	// Items are the cart lines to ship.
	Items []CartItem `json:"items"`
}

// NormalizedRequest is the carrier-ready request: every numeric field already
// satisfies the Correios minimums.
type NormalizedRequest struct {
	// EndpointURL is the carrier web service endpoint for this call.
	EndpointURL string
	// CompanyCode is the Correios contract company code, empty when unset.
	CompanyCode string
	// Password is the Correios contract password, empty when unset.
	Password string
	// ServiceCodes is the comma-joined list of requested service codes.
	ServiceCodes string
	// PostalCodeFrom is the origin postal code.
	PostalCodeFrom string
	// PostalCodeTo is the destination postal code.
	PostalCodeTo string
	// WeightKg is the total shipment weight in whole kilograms, at least 1.
	WeightKg int
	// LengthCm is the shipment length in centimeters, at least 16.
	LengthCm decimal.Decimal
	// HeightCm is the shipment height in centimeters, at least 2.
	HeightCm decimal.Decimal
	// WidthCm is the shipment width in centimeters, at least 11.
	WidthCm decimal.Decimal
	// DeclaredValue is the insured value in BRL, strictly above 20.50.
	DeclaredValue decimal.Decimal
}

// RawQuote is one per-service record as returned by the carrier.
// An empty ErrorCode means the record is a successful quote.
type RawQuote struct {
	// Code is the carrier service code (e.g., "04014").
	Code string
	// Price is the quoted price in BRL, formatted with the pt-BR decimal convention.
	Price string
	// DeliveryDays is the carrier lead time in days, as text.
	DeliveryDays string
	// ErrorCode is the carrier error code for this service, empty on success.
	ErrorCode string
	// ErrorMessage describes the carrier error, empty on success.
	ErrorMessage string
}

// ShippingOption is one shipping choice offered to the shopper.
type ShippingOption struct {
	// Name is the display name, "<service> - <days> dia(s)".
	Name string `json:"name"`
	// Rate is the shipping cost in the store's primary currency.
	Rate decimal.Decimal `json:"rate"`
}

// QuoteResponse is the result of a shipping-option computation.
type QuoteResponse struct {
	// Options are the shipping choices, in carrier order.
	Options []ShippingOption `json:"options"`
	// Errors carries user-facing validation messages; non-empty only when the
	// request itself was rejected.
	Errors []string `json:"errors,omitempty"`
}

// MeasureUnit is a unit registered in the store's measure system.
type MeasureUnit struct {
	// SystemKeyword is the unit's identifier (e.g., "kg", "centimeter").
	SystemKeyword string
	// Ratio converts a value in the store's primary unit into this unit.
	Ratio decimal.Decimal
}

// Currency is a currency registered in the store.
type Currency struct {
	// Code is the ISO currency code (e.g., "BRL").
	Code string
	// RateToBRL is the amount of BRL per one unit of this currency.
	RateToBRL decimal.Decimal
}
