package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)

	gormDB, err := openDB(config)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("Service wiring failed", "error", err)
		os.Exit(1)
	}

	run(root, config, logger)
}

func run(root *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	root.Server().RegisterRoutes(e)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if err := root.Jobs().StartAll(); err != nil {
		logger.Error("Background jobs failed to start", "error", err)
		os.Exit(1)
	}

	go root.Consumer().Start(ctx)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if err := root.Consumer().Close(); err != nil {
		logger.Error("Consumer shutdown failed", "error", err)
	}
	root.Jobs().StopAll()
}

func openDB(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&deliveryrepo.DeliveryDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort: envOrDefault("HTTP_PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		DirectoryServiceURL:    os.Getenv("DRIVER_DIRECTORY_URL"),
		DriverOrdersServiceURL: os.Getenv("DRIVER_ORDERS_URL"),
		HTTPClientTimeoutSec:   envIntOrDefault("HTTP_CLIENT_TIMEOUT_SEC", 5, logger),

		KafkaBrokers:       strings.Split(envOrDefault("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaConsumerGroup: envOrDefault("KAFKA_CONSUMER_GROUP", "dispatch-service"),
		KafkaOrderTopic:    envOrDefault("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisCacheTTLSec: envIntOrDefault("REDIS_CACHE_TTL_SEC", 30, logger),

		CapacityThreshold: envIntOrDefault("DRIVER_CAPACITY_THRESHOLD", 5, logger),
		SweepIntervalSec:  envIntOrDefault("SWEEP_INTERVAL_SEC", 120, logger),
		SweepWorkers:      envIntOrDefault("SWEEP_WORKERS", 4, logger),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int, logger *slog.Logger) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("Invalid integer environment variable, using default",
			"key", key, "value", value, "default", fallback)
		return fallback
	}
	return parsed
}
