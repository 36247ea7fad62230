package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"yuno-storefront-demo/internal/catalog"
	"yuno-storefront-demo/internal/client"
	"yuno-storefront-demo/internal/config"
	"yuno-storefront-demo/internal/handler"
	"yuno-storefront-demo/internal/logger"
	"yuno-storefront-demo/internal/server"
	"yuno-storefront-demo/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, cfg.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Base URL is fixed for the process lifetime, derived from the key prefix.
	baseAPIURL, err := cfg.Yuno.APIBaseURL()
	if err != nil {
		log.Fatal("derive provider base URL", zap.Error(err))
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("open catalog database", zap.Error(err))
	}
	if err := db.AutoMigrate(&catalog.Product{}); err != nil {
		log.Fatal("migrate catalog database", zap.Error(err))
	}

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productRepo := catalog.NewProductRepository(db)
	if err := productRepo.Seed(bootstrapCtx); err != nil {
		log.Fatal("seed product catalog", zap.Error(err))
	}

	yunoClient := client.NewYunoClient(baseAPIURL, &cfg.Yuno)

	// The demo customer is created once here; no customer id means no
	// payments can be attempted, so a failure aborts startup.
	checkoutService, err := service.NewCheckoutService(bootstrapCtx, yunoClient, log)
	if err != nil {
		log.Fatal("bootstrap checkout service", zap.Error(err))
	}

	checkoutHandler := handler.NewCheckoutHandler(checkoutService, cfg.Environment, cfg.Yuno.PublicAPIKey)
	catalogHandler := handler.NewCatalogHandler(productRepo)

	srv := server.NewServer(checkoutHandler, catalogHandler, server.Options{
		Env:       cfg.Environment,
		StaticDir: "web/dist",
		Logger:    log,
	})

	serverAddr := cfg.HTTP.Address()
	log.Info("starting HTTP server",
		zap.String("address", serverAddr),
		zap.String("environment", cfg.Environment.Name),
		zap.String("api_url", baseAPIURL),
	)

	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
