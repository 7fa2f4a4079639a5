package api

import (
	"os"
	"path/filepath"
	"strings"

	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	DataDir           string
	UserDataPath      string
	ProductDataPath   string
	CartDataPath      string
	OrderDataPath     string
	PostgresDSN       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables and applies defaults. Each entity
// file defaults to <DATA_DIR>/<entity>s.json and can be overridden per file.
func LoadConfig() Config {
	dataDir := envDefault("DATA_DIR", "data")
	return Config{
		Port:              envDefault("PORT", "8080"),
		DataDir:           dataDir,
		UserDataPath:      envDefault("USER_DATA_PATH", filepath.Join(dataDir, "users.json")),
		ProductDataPath:   envDefault("PRODUCT_DATA_PATH", filepath.Join(dataDir, "products.json")),
		CartDataPath:      envDefault("CART_DATA_PATH", filepath.Join(dataDir, "carts.json")),
		OrderDataPath:     envDefault("ORDER_DATA_PATH", filepath.Join(dataDir, "orders.json")),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
