package application

import (
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ircatalog/internal/domain"
	"ircatalog/internal/domain/entities"
	"ircatalog/internal/infrastructure/catalogfs"
	"ircatalog/internal/infrastructure/i18n"
	"ircatalog/internal/ports/input"
	"ircatalog/internal/ports/output"
)

// Ensure the service satisfies the input ports.
var (
	_ input.CatalogQuery     = (*CatalogService)(nil)
	_ input.CatalogValidator = (*CatalogService)(nil)
)

type stubSource struct {
	catalogs map[string]*entities.Catalog
}

func (s *stubSource) Locales() []string {
	locales := make([]string, 0, len(s.catalogs))
	for locale := range s.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

func (s *stubSource) Load(locale string) (*entities.Catalog, error) {
	catalog, ok := s.catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	return catalog, nil
}

func mustCatalog(t *testing.T, locale string, root map[string]any) *entities.Catalog {
	t.Helper()
	catalog, err := entities.NewCatalog(locale, root)
	require.NoError(t, err)
	return catalog
}

func newService(t *testing.T, source output.CatalogSource, defaultLocale string) *CatalogService {
	t.Helper()
	translator, err := i18n.NewTranslator(source, defaultLocale, zerolog.Nop())
	require.NoError(t, err)
	service, err := NewCatalogService(source, translator, defaultLocale)
	require.NoError(t, err)
	return service
}

func TestServiceLookupFallsBackToDefaultLocale(t *testing.T) {
	source := &stubSource{catalogs: map[string]*entities.Catalog{
		"en": mustCatalog(t, "en", map[string]any{
			"config": map[string]any{"abort": map[string]any{
				"already_configured": "Device is already configured",
			}},
		}),
		"zh": mustCatalog(t, "zh", map[string]any{
			"config": map[string]any{"abort": map[string]any{}},
		}),
	}}
	service := newService(t, source, "en")

	value, ok := service.Lookup("zh", "config.abort.already_configured")
	require.True(t, ok)
	assert.Equal(t, "Device is already configured", value)

	value, ok = service.Lookup("en", "config.abort.missing")
	assert.False(t, ok)
	assert.Empty(t, value)

	// An unknown locale behaves like the default locale.
	_, ok = service.Lookup("de", "config.abort.already_configured")
	assert.True(t, ok)
}

func TestServiceRender(t *testing.T) {
	source, err := catalogfs.NewSource("")
	require.NoError(t, err)
	service := newService(t, source, "en")

	rendered := service.Render("en", "options.step.init.description", map[string]string{
		"device_type": "Climate",
		"current_ip":  "192.168.1.5",
		"extra_info":  "\nAC Vendor: COOLIX",
	})
	assert.Equal(t, "Device Type: Climate\nCurrent IP: 192.168.1.5\nAC Vendor: COOLIX", rendered)

	assert.Equal(t, "config.step.missing.title", service.Render("en", "config.step.missing.title", nil))
}

func TestValidateEmbeddedCatalogs(t *testing.T) {
	source, err := catalogfs.NewSource("")
	require.NoError(t, err)
	service := newService(t, source, "en")

	assert.Empty(t, service.Validate())
}

func TestValidateFindings(t *testing.T) {
	source := &stubSource{catalogs: map[string]*entities.Catalog{
		// The default locale breaks several invariants at once: the options
		// namespace is missing, a template uses a placeholder the flow engine
		// never supplies, an error message is blank, the climate entity has a
		// state label its platform does not expose, and the fan entity lacks
		// the "on" label.
		"en": mustCatalog(t, "en", map[string]any{
			"config": map[string]any{
				"step": map[string]any{"user": map[string]any{
					"title":       "Tasmota IR Device",
					"description": "Choose one of {supported_models}",
				}},
				"error": map[string]any{"unknown": "   "},
			},
			"entity": map[string]any{
				"climate": map[string]any{"state": map[string]any{
					"off": "Off", "heat": "Heat", "cool": "Cool", "heat_cool": "Heat/Cool",
					"auto": "Auto", "dry": "Dry", "fan_only": "Fan Only", "eco": "Eco",
				}},
				"fan": map[string]any{"state": map[string]any{"off": "Off"}},
			},
		}),
		// The translation misses a key: parity warning only.
		"zh": mustCatalog(t, "zh", map[string]any{
			"config": map[string]any{
				"step": map[string]any{"user": map[string]any{
					"title": "Tasmota 红外设备",
				}},
				"error": map[string]any{},
			},
			"options": map[string]any{},
			"entity": map[string]any{
				"climate": map[string]any{"state": map[string]any{
					"off": "关闭", "heat": "制热", "cool": "制冷", "heat_cool": "冷暖",
					"auto": "自动", "dry": "除湿", "fan_only": "送风",
				}},
				"fan": map[string]any{"state": map[string]any{"off": "关闭", "on": "打开"}},
			},
		}),
	}}
	service := newService(t, source, "en")

	issues := service.Validate()

	assert.True(t, hasIssue(issues, domain.SeverityError, "en", "options"), "missing namespace")
	assert.True(t, hasIssue(issues, domain.SeverityError, "en", "config.step.user.description"), "unknown placeholder")
	assert.True(t, hasIssue(issues, domain.SeverityError, "en", "config.error.unknown"), "empty value")
	assert.True(t, hasIssue(issues, domain.SeverityError, "en", "entity.climate.state.eco"), "extra climate state")
	assert.True(t, hasIssue(issues, domain.SeverityError, "en", "entity.fan.state.on"), "missing fan state")
	assert.True(t, hasIssue(issues, domain.SeverityWarning, "zh", "config.step.user.description"), "parity warning")

	for _, issue := range issues {
		if issue.Locale == "zh" {
			assert.Equal(t, domain.SeverityWarning, issue.Severity, "zh issue: %s", issue)
		}
	}
}

func hasIssue(issues []domain.Issue, severity, locale, keyPath string) bool {
	for _, issue := range issues {
		if issue.Severity == severity && issue.Locale == locale && issue.KeyPath == keyPath {
			return true
		}
	}
	return false
}
