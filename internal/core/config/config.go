package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// RedisURL is the connection URL of the redis instance backing settings storage.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`

	// Store holds the host store's measure and currency configuration.
	Store StoreConfig `mapstructure:",squash"`

	// WooCommerce holds the WooCommerce API configuration.
	WooCommerce WooCommerceConfig `mapstructure:",squash"`

	// Correios holds the install-time defaults for the carrier settings.
	Correios CorreiosConfig `mapstructure:",squash"`
}

// WooCommerceConfig holds the credentials for the WooCommerce Store.
type WooCommerceConfig struct {
	// URL is the base URL of the WooCommerce store.
	URL string `mapstructure:"WC_URL" required:"true"`
	// ConsumerKey is the public key for API access.
	ConsumerKey string `mapstructure:"WC_CONSUMER_KEY" required:"true"`
	// ConsumerSecret is the secret key for API access.
	ConsumerSecret string `mapstructure:"WC_CONSUMER_SECRET" required:"true"`
}

// StoreConfig describes the units and currency the host store works in.
type StoreConfig struct {
	// PrimaryCurrency is the ISO code of the store's primary currency.
	PrimaryCurrency string `mapstructure:"STORE_PRIMARY_CURRENCY" default:"BRL"`
	// ExchangeRates lists additional registered currencies as CODE:RATE pairs
	// separated by commas, where RATE is the amount of BRL per one unit of
	// CODE (e.g., "USD:5.40,EUR:6.10"). BRL is always registered with rate 1.
	ExchangeRates string `mapstructure:"STORE_EXCHANGE_RATES"`
	// WeightUnit is the system keyword of the store's primary weight unit.
	WeightUnit string `mapstructure:"STORE_WEIGHT_UNIT" default:"kg"`
	// DimensionUnit is the system keyword of the store's primary dimension unit.
	DimensionUnit string `mapstructure:"STORE_DIMENSION_UNIT" default:"centimeter"`
}

// CorreiosConfig holds the defaults seeded into the carrier settings when no
// saved settings exist yet.
type CorreiosConfig struct {
	// URL is the Correios price/lead-time web service endpoint.
	URL string `mapstructure:"CORREIOS_URL" default:"http://ws.correios.com.br/calculador/CalcPrecoPrazo.asmx"`
	// PostalCodeFrom is the origin postal code (CEP) used when a request carries none.
	PostalCodeFrom string `mapstructure:"CORREIOS_POSTAL_CODE_FROM"`
	// CompanyCode is the Correios contract company code, empty for retail pricing.
	CompanyCode string `mapstructure:"CORREIOS_COMPANY_CODE"`
	// Password is the Correios contract password, empty for retail pricing.
	Password string `mapstructure:"CORREIOS_PASSWORD"`
	// DefaultServiceName names the fallback shipping option.
	DefaultServiceName string `mapstructure:"CORREIOS_DEFAULT_SERVICE_NAME" default:"Entrega padrão"`
	// DefaultRate is the fallback shipping rate in store currency.
	DefaultRate float64 `mapstructure:"CORREIOS_DEFAULT_RATE" default:"25.00"`
	// DefaultDeliveryDays is the fallback lead time in days.
	DefaultDeliveryDays int `mapstructure:"CORREIOS_DEFAULT_DELIVERY_DAYS" default:"7"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
