package application

import (
	"ircatalog/internal/domain/entities"
	"ircatalog/internal/ports/output"
)

// CatalogService is the read surface over the loaded string catalogs. All
// catalogs are resolved once at construction; the service is immutable and
// safe for concurrent use.
type CatalogService struct {
	translator    output.Translator
	catalogs      map[string]*entities.Catalog
	locales       []string
	defaultLocale string
}

func NewCatalogService(source output.CatalogSource, translator output.Translator, defaultLocale string) (*CatalogService, error) {
	locales := source.Locales()
	catalogs := make(map[string]*entities.Catalog, len(locales))
	for _, locale := range locales {
		catalog, err := source.Load(locale)
		if err != nil {
			return nil, err
		}
		catalogs[locale] = catalog
	}

	return &CatalogService{
		translator:    translator,
		catalogs:      catalogs,
		locales:       locales,
		defaultLocale: defaultLocale,
	}, nil
}

// Lookup returns the raw template at keyPath for the locale, falling back to
// the default locale. Absence is normal and returns ("", false).
func (s *CatalogService) Lookup(locale, keyPath string) (string, bool) {
	if catalog, ok := s.catalogs[locale]; ok {
		if value, ok := catalog.Lookup(keyPath); ok {
			return value, true
		}
	}
	if locale == s.defaultLocale {
		return "", false
	}
	catalog, ok := s.catalogs[s.defaultLocale]
	if !ok {
		return "", false
	}
	return catalog.Lookup(keyPath)
}

// Render resolves keyPath like Lookup and substitutes placeholders; a key
// absent from every locale renders as the key path itself, mirroring the
// consuming framework's raw-key fallback.
func (s *CatalogService) Render(locale, keyPath string, subs map[string]string) string {
	return s.translator.T(locale, keyPath, subs)
}

// Locales lists the loaded locales, sorted.
func (s *CatalogService) Locales() []string {
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// Catalog returns the catalog of one locale, or nil when absent.
func (s *CatalogService) Catalog(locale string) *entities.Catalog {
	return s.catalogs[locale]
}

// DefaultLocale returns the configured fallback locale.
func (s *CatalogService) DefaultLocale() string {
	return s.defaultLocale
}
