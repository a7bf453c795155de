package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, loaded from the environment.
type Config struct {
	Addr         string        // HTTP listen address
	StoreURL     string        // base URL of the REST data store
	StoreTimeout time.Duration // per-request timeout against the store
	JWTSecret    string        // session token signing key
	IsProd       bool          // is production environment
}

func Load() Config {
	_ = godotenv.Load()

	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	storeURL := os.Getenv("STORE_URL")
	if storeURL == "" {
		storeURL = "http://localhost:3000"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "storefront-dev-secret"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("STORE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return Config{
		Addr:         addr,
		StoreURL:     storeURL,
		StoreTimeout: timeout,
		JWTSecret:    secret,
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}
