// Package config holds the tunable settings of the application: fixed
// constants and lookup tables live in translation_config.go, while anything
// deployment-specific (connection strings, API credentials, the supported
// locale set) is read from the environment here.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config carries environment-driven settings loaded once at startup.
type Config struct {
	// Postgres DSN pieces
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Redis
	RedisAddr     string
	RedisPassword string

	// Translation provider
	TranslateAPIKey  string
	TranslateBaseURL string

	// Geo-IP provider
	GeoIPBaseURL string

	// SupportedLocales is the ordered set of locale codes the deployment
	// serves. The first alternates after DefaultLocale are purely cosmetic
	// ordering for the locale switcher.
	SupportedLocales []string

	// HTTP listen address
	ListenAddr string

	// CatalogDir is the directory holding keys.json and the per-locale
	// catalog files.
	CatalogDir string
}

// Load reads the configuration from environment variables, applying the
// defaults of the reference deployment where a variable is unset.
func Load() *Config {
	cfg := &Config{
		DBHost:           getenv("DB_HOST", "localhost"),
		DBUser:           getenv("DB_USER", "user"),
		DBPassword:       getenv("DB_PASSWORD", "password"),
		DBName:           getenv("DB_NAME", "marketgogodb"),
		DBPort:           getenv("DB_PORT", "5432"),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6380"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		TranslateAPIKey:  os.Getenv("DEEPL_API_KEY"),
		TranslateBaseURL: getenv("DEEPL_BASE_URL", "https://api-free.deepl.com/v2"),
		GeoIPBaseURL:     getenv("GEOIP_BASE_URL", "https://ipapi.co"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		CatalogDir:       getenv("CATALOG_DIR", "localization"),
	}

	locales := getenv("SUPPORTED_LOCALES", "tr,en,de,ar")
	for _, code := range strings.Split(locales, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			cfg.SupportedLocales = append(cfg.SupportedLocales, code)
		}
	}

	return cfg
}

// DSN builds the Postgres connection string from the DB_* settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
