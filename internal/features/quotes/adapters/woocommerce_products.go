package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"correios-rates/internal/core/config"
	"correios-rates/internal/core/httpclient"

	"github.com/shopspring/decimal"
)

// WooCommerceProductAdapter resolves product prices through the WooCommerce
// REST API.
type WooCommerceProductAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the WooCommerce connection details.
	config config.WooCommerceConfig
}

// NewWooCommerceProductAdapter creates a new instance of WooCommerceProductAdapter.
func NewWooCommerceProductAdapter(cfg config.WooCommerceConfig) *WooCommerceProductAdapter {
	return &WooCommerceProductAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// wcProduct represents the subset of the WooCommerce product response we need.
type wcProduct struct {
	// ID is the unique product ID.
	ID int `json:"id"`
	// Price is the current product price as a plain decimal string.
	Price string `json:"price"`
}

// UnitPrice fetches a product and returns its unit price in store currency.
func (a *WooCommerceProductAdapter) UnitPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/wp-json/wc/v3/products/%s", a.config.URL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}

	authVal := make([]byte, 0, len(a.config.ConsumerKey)+len(a.config.ConsumerSecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", a.config.ConsumerKey, a.config.ConsumerSecret)
	encoded := base64.StdEncoding.EncodeToString(authVal)
	req.Header.Add("Authorization", "Basic "+encoded)

	resp, err := a.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return decimal.Zero, fmt.Errorf("product not found: %s", productID)
		}
		return decimal.Zero, fmt.Errorf("woocommerce API returned status: %d", resp.StatusCode)
	}

	var product wcProduct
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	if product.Price == "" {
		return decimal.Zero, fmt.Errorf("product %s has no price", productID)
	}

	price, err := decimal.NewFromString(product.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse price of product %s: %w", productID, err)
	}
	return price, nil
}
