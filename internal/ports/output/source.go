package output

import "ircatalog/internal/domain/entities"

// CatalogSource loads locale catalogs from a backing store (embedded files,
// an override directory, ...). Implementations load everything up front; the
// returned catalogs are immutable.
type CatalogSource interface {
	// Locales lists every locale the source provides, sorted.
	Locales() []string

	// Load returns the catalog for a locale, or domain.ErrUnknownLocale.
	Load(locale string) (*entities.Catalog, error)
}
