package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// Remote catalog platform (Shopify Admin REST).
	ShopDomain string
	AdminToken string
	APIVersion string

	// Operator authentication.
	FirebaseProject           string
	FirebaseServiceAccount    string // inline JSON, preferred in production
	FirebaseServiceAccountKey string // file path fallback for local development
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:                getEnv("SERVER_PORT", "8080"),
		Environment:               getEnv("ENVIRONMENT", "development"),
		ShopDomain:                getEnv("SHOPIFY_SHOP_DOMAIN", ""),
		AdminToken:                getEnv("SHOPIFY_ADMIN_TOKEN", ""),
		APIVersion:                getEnv("SHOPIFY_API_VERSION", "2024-01"),
		FirebaseProject:           getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccount:    getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseServiceAccountKey: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
	}

	if config.ShopDomain == "" {
		return nil, fmt.Errorf("SHOPIFY_SHOP_DOMAIN is required")
	}
	if config.AdminToken == "" {
		return nil, fmt.Errorf("SHOPIFY_ADMIN_TOKEN is required")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
