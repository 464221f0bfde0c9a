package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	HTTPAddr           string
	LogLevel           string
	ShopifyAPIURL      string
	ShopifyAccessToken string
	CalendarURL        string
	OrderFetchLimit    int
	FetchTimeout       time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins for CORS (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Log level (default: info)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Shopify Admin GraphQL endpoint is required
	cfg.ShopifyAPIURL = os.Getenv("SHOPIFY_API_URL")
	if cfg.ShopifyAPIURL == "" {
		return nil, fmt.Errorf("SHOPIFY_API_URL is required")
	}

	// Shopify access token is required for the order query
	cfg.ShopifyAccessToken = os.Getenv("SHOPIFY_ACCESS_TOKEN")
	if cfg.ShopifyAccessToken == "" {
		return nil, fmt.Errorf("SHOPIFY_ACCESS_TOKEN is required")
	}

	// Published delivery-calendar document URL is required
	cfg.CalendarURL = os.Getenv("DELIVERY_CALENDAR_URL")
	if cfg.CalendarURL == "" {
		return nil, fmt.Errorf("DELIVERY_CALENDAR_URL is required")
	}

	// Order fetch size, the order source's page limit (default: 50)
	cfg.OrderFetchLimit, err = getEnvAsInt("ORDER_FETCH_LIMIT", 50)
	if err != nil {
		return nil, fmt.Errorf("invalid ORDER_FETCH_LIMIT: %w", err)
	}

	// Timeout for each outbound fetch, parse as time.Duration (e.g. "10s").
	timeoutStr := getEnv("FETCH_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	cfg.FetchTimeout = timeout

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
