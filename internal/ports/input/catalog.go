package input

import "ircatalog/internal/domain"

// CatalogQuery is the read surface the configuration-flow engine consumes.
type CatalogQuery interface {
	// Lookup returns the raw template at keyPath in the given locale,
	// falling back to the default locale. Absence returns ("", false).
	Lookup(locale, keyPath string) (string, bool)

	// Render resolves keyPath like Lookup and substitutes placeholders.
	// A key absent from every locale renders as the key path itself.
	Render(locale, keyPath string, subs map[string]string) string

	// Locales lists the loaded locales, sorted.
	Locales() []string
}

// CatalogValidator checks the loaded catalogs against the integration's
// invariants (required namespaces, entity state sets, placeholder names).
type CatalogValidator interface {
	Validate() []domain.Issue
}
