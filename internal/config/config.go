package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	DefaultLocale string
	CatalogDir    string
	Strict        bool
	LogLevel      string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment
		// itself (Docker, CI, etc.).
	}

	cfg := &Config{
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		CatalogDir:    os.Getenv("CATALOG_DIR"),
		Strict:        parseBool(os.Getenv("STRICT")),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	if c.CatalogDir != "" {
		info, err := os.Stat(c.CatalogDir)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("config: CATALOG_DIR does not exist (%q)", c.CatalogDir)
			}
			return fmt.Errorf("config: CATALOG_DIR (%q): %w", c.CatalogDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: CATALOG_DIR is not a directory (%q)", c.CatalogDir)
		}
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = "info"
	}

	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
