package config

import (
	"os"
	"strings"
)

// Config holds all runtime settings, read once at startup.
type Config struct {
	DatabaseURL    string
	Port           string
	JWTSecret      string
	AllowedOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getenv("PORT", "8080"),
		JWTSecret:   getenv("JWT_SECRET", "change-me"),
	}
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
