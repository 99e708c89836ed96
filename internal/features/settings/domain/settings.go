package domain

import "github.com/shopspring/decimal"

// CarrierSettings is the merchant-editable Correios configuration. It is
// loaded as a read-only snapshot once per quote request.
type CarrierSettings struct {
	// URL is the Correios price/lead-time web service endpoint.
	URL string `json:"url"`
	// PostalCodeFrom is the origin postal code used when a request carries none.
	PostalCodeFrom string `json:"postal_code_from"`
	// CompanyCode is the Correios contract company code, empty for retail pricing.
	CompanyCode string `json:"company_code"`
	// Password is the Correios contract password, empty for retail pricing.
	Password string `json:"password"`
	// AddDaysForDelivery is added to every carrier lead time when positive.
	AddDaysForDelivery int `json:"add_days_for_delivery"`
	// ServicesOffered is the persisted selection of enabled services, each
	// code bracket-delimited and joined with ":" (e.g., "[04014]:[04510]").
	ServicesOffered string `json:"services_offered"`
	// DefaultServiceName names the fallback shipping option.
	DefaultServiceName string `json:"default_service_name"`
	// DefaultRate is the fallback shipping rate, already in store currency.
	DefaultRate decimal.Decimal `json:"default_rate"`
	// DefaultDeliveryDays is the fallback lead time in days.
	DefaultDeliveryDays int `json:"default_delivery_days"`
	// PercentageShippingFee multiplies every carrier rate when positive
	// (1.0 = no change, 1.10 = +10%).
	PercentageShippingFee decimal.Decimal `json:"percentage_shipping_fee"`
}
