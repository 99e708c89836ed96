package adapter

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"correios-rates/internal/core/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWooCommerceProductAdapter_UnitPrice_Success verifies price fetching.
func TestWooCommerceProductAdapter_UnitPrice_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wc/v3/products/1001", r.URL.Path)

		expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("ck_test:cs_test"))
		assert.Equal(t, expectedAuth, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": 1001, "price": "49.90"}`))
	}))
	defer server.Close()

	cfg := config.WooCommerceConfig{
		URL:            server.URL,
		ConsumerKey:    "ck_test",
		ConsumerSecret: "cs_test",
	}

	adapter := NewWooCommerceProductAdapter(cfg)
	price, err := adapter.UnitPrice(context.Background(), "1001")

	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("49.90")), "got price %s", price)
}

// TestWooCommerceProductAdapter_UnitPrice_NotFound verifies the 404 mapping.
func TestWooCommerceProductAdapter_UnitPrice_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewWooCommerceProductAdapter(config.WooCommerceConfig{URL: server.URL})
	_, err := adapter.UnitPrice(context.Background(), "9999")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found: 9999")
}

// TestWooCommerceProductAdapter_UnitPrice_EmptyPrice verifies products
// without a price fail instead of quoting a zero declared value.
func TestWooCommerceProductAdapter_UnitPrice_EmptyPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1001, "price": ""}`))
	}))
	defer server.Close()

	adapter := NewWooCommerceProductAdapter(config.WooCommerceConfig{URL: server.URL})
	_, err := adapter.UnitPrice(context.Background(), "1001")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no price")
}

// TestWooCommerceProductAdapter_UnitPrice_ServerError verifies non-200 handling.
func TestWooCommerceProductAdapter_UnitPrice_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewWooCommerceProductAdapter(config.WooCommerceConfig{URL: server.URL})
	_, err := adapter.UnitPrice(context.Background(), "1001")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 500")
}
