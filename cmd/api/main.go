package main

import (
	"log"

	"correios-rates/internal/core/cache"
	"correios-rates/internal/core/config"
	"correios-rates/internal/core/logger"
	"correios-rates/internal/core/server"
	quoteadapter "correios-rates/internal/features/quotes/adapters"
	quotehandler "correios-rates/internal/features/quotes/handler"
	quoteservice "correios-rates/internal/features/quotes/service"
	settingsadapters "correios-rates/internal/features/settings/adapters"
	settingshandler "correios-rates/internal/features/settings/handler"
	settingsservice "correios-rates/internal/features/settings/service"

	"go.uber.org/zap"
)

// @title Correios Rates API
// @version 1.0
// @description This API computes Correios shipping quotes for WooCommerce carts.
// @contact.name API Support
// @contact.email support@correiosrates.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Settings storage
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	settingsRepo := settingsadapters.NewRedisSettingsRepository(redisCache)
	settingsSvc := settingsservice.NewSettingsService(settingsRepo, cfg.Correios)
	settingsHdl := settingshandler.NewSettingsHandler(settingsSvc)

	// Store-side providers
	measures, err := quoteadapter.NewStoreMeasureAdapter(cfg.Store)
	if err != nil {
		l.Fatal("Invalid measure configuration", zap.Error(err))
	}
	currencies, err := quoteadapter.NewExchangeRateTable(cfg.Store)
	if err != nil {
		l.Fatal("Invalid currency configuration", zap.Error(err))
	}
	products := quoteadapter.NewWooCommerceProductAdapter(cfg.WooCommerce)

	// Carrier provider
	correios := quoteadapter.NewCorreiosAdapter()

	// Quote service & handler
	quoteSvc := quoteservice.NewQuoteService(settingsSvc, correios, measures, currencies, products)
	quoteHdl := quotehandler.NewQuoteHandler(quoteSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/shipping/options", quoteHdl.ComputeShippingOptions)
	srv.App.Get("/shipping/settings", settingsHdl.GetSettings)
	srv.App.Put("/shipping/settings", settingsHdl.UpdateSettings)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
