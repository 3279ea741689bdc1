package config

import (
	"os"
	"strconv"
)

// Config holds application configuration loaded from environment variables.
// The property identifiers are optional at startup: a missing one makes the
// corresponding endpoints report a configuration error rather than preventing
// the process from serving at all.
type Config struct {
	HTTPPort         string
	GAPropertyID     string
	GSCPropertyURL   string
	CORSAllowOrigins string
	FiberPrefork     bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", ":8000"),
		GAPropertyID:     os.Getenv("GA_PROPERTY_ID"),
		GSCPropertyURL:   os.Getenv("GSC_PROPERTY_URL"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		FiberPrefork:     parseBoolEnv("FIBER_PREFORK", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
