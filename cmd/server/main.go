package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/nicholasjackson/env"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/repository"
	"github.com/commercekit/shop-api/internal/service"
	"github.com/commercekit/shop-api/internal/storage"
	httpTransport "github.com/commercekit/shop-api/internal/transport/http"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":8000", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	databaseURL = env.String("DATABASE_URL", false,
		"", "MongoDB connection string")
	databaseName = env.String("DATABASE_NAME", false,
		"", "MongoDB database name")
)

func main() {
	// Load a local .env file when present; real environments set the
	// variables directly.
	godotenv.Load()
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "shop-api",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Connect to the document store; a missing configuration degrades
	// the service instead of stopping it
	store := storage.Connect(context.Background(), storage.Config{
		URL:  *databaseURL,
		Name: *databaseName,
	}, logger.Named("storage"))

	codec := storage.NewIDCodec()

	// Initialize the repositories
	productRepo := repository.NewMongoProductRepository(store, codec)
	orderRepo := repository.NewMongoOrderRepository(store, codec)

	// Initialize the services
	ps := service.NewProductService(productRepo, logger.Named("product-service"))
	osvc := service.NewOrderService(orderRepo, logger.Named("order-service"))
	diagnostics := service.NewDiagnostics(store, logger.Named("diagnostics"))

	// Initialize the validator
	validator := domain.NewValidation()

	// Initialize HTTP handlers
	ph := httpTransport.NewProductHandler(ps, logger.Named("http-handler"))
	oh := httpTransport.NewOrderHandler(osvc, logger.Named("http-handler"))
	sh := httpTransport.NewSystemHandler(diagnostics, logger.Named("http-handler"))

	// Initialize the router
	router := httpTransport.NewRouter(ph, oh, sh, validator, logger)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Error("Error disconnecting from the store", "error", err)
	}

	server.Shutdown(shutdownCtx)
}
