package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	CartStorageKey string
	JWTSecret      string
	JWTTTL         time.Duration
	CatalogBaseURL string
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("APP_PORT", "8080"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "storefront"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		CartStorageKey: getenv("CART_STORAGE_KEY", "cartItems"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:         getduration("JWT_TTL", 24*time.Hour),
		CatalogBaseURL: getenv("CATALOG_BASE_URL", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
