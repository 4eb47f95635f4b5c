package confs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process settings resolved from the environment.
type Config struct {
	ServerAddress string        // HTTP bind address
	UploadDir     string        // root directory for uploaded images
	JWTSecret     string        // token signing key, required
	TokenTTL      time.Duration // access token validity
}

// LoadConfig loads environment variables from a .env file if present
// and resolves the typed configuration. The signing key has no default:
// the process refuses to start without JWT_SECRET.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", "0.0.0.0:8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      24 * time.Hour,
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
