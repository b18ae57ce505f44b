package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reis-dos-frangos/internal/catalog"
	"reis-dos-frangos/internal/config"
	"reis-dos-frangos/internal/database"
	"reis-dos-frangos/internal/logger"
	"reis-dos-frangos/internal/messaging"
	"reis-dos-frangos/internal/services/storefront"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to configuration file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *port != 0 {
		cfg.Server.Port = *port
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}

	log := logger.New("storefront-service")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", "Starting storefront service", requestID, map[string]interface{}{
		"port":             cfg.Server.Port,
		"database_enabled": cfg.Database.Enabled,
		"rabbitmq_enabled": cfg.RabbitMQ.Enabled,
	})

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, requestID); err != nil {
		log.Error("service_failed", "Storefront service failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, requestID string) error {
	var db *database.DB
	var cat *catalog.Catalog

	if cfg.Database.Enabled {
		var err error
		db, err = database.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

		if err := db.RunMigrations(ctx, "migrations"); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		cat, err = catalog.LoadFromDatabase(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		log.Info("catalog_loaded", "Loaded menu from database", requestID, map[string]interface{}{
			"items": len(cat.Items()),
		})
	} else {
		cat = catalog.NewStatic()
		log.Info("catalog_loaded", "Using built-in menu", requestID, map[string]interface{}{
			"items": len(cat.Items()),
		})
	}

	var publisher storefront.OrderPublisher
	if cfg.RabbitMQ.Enabled {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()

		log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

		publisher = messaging.NewPublisher(conn, log)
	}

	service := storefront.NewService(cat, cfg, db, publisher, log)
	handler := storefront.NewHandler(service, log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler.SetupRoutes(),
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("Storefront service started on port %d", cfg.Server.Port), requestID, map[string]interface{}{
			"port": cfg.Server.Port,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}
