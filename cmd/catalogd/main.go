package main

import (
	"os"

	"github.com/rs/zerolog"

	"ircatalog/internal/application"
	"ircatalog/internal/config"
	"ircatalog/internal/domain"
	"ircatalog/internal/infrastructure/catalogfs"
	"ircatalog/internal/infrastructure/i18n"
)

// catalogd loads the string catalogs, runs the invariant checks and reports
// the result. It exits non-zero when a catalog is malformed or violates an
// invariant, so it can gate a release of the integration.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration is invalid")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("LOG_LEVEL is invalid")
	}
	logger = logger.Level(level)

	source, err := catalogfs.NewSource(cfg.CatalogDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalogs")
	}

	translator, err := i18n.NewTranslator(source, cfg.DefaultLocale, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build translator")
	}

	service, err := application.NewCatalogService(source, translator, cfg.DefaultLocale)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build catalog service")
	}

	errors, warnings := 0, 0
	for _, issue := range service.Validate() {
		event := logger.Warn()
		if issue.Severity == domain.SeverityError {
			event = logger.Error()
			errors++
		} else {
			warnings++
		}
		event.Str("locale", issue.Locale).Str("key", issue.KeyPath).Msg(issue.Message)
	}

	for _, locale := range service.Locales() {
		logger.Info().
			Str("locale", locale).
			Int("keys", len(service.Catalog(locale).KeyPaths())).
			Msg("catalog loaded")
	}

	if errors > 0 || (cfg.Strict && warnings > 0) {
		logger.Error().
			Int("errors", errors).
			Int("warnings", warnings).
			Msg("catalog validation failed")
		os.Exit(1)
	}

	logger.Info().
		Str("default_locale", cfg.DefaultLocale).
		Int("warnings", warnings).
		Msg("catalog validation passed")
}
