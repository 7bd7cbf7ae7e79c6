package output

// Translator exposes a minimal i18n contract for user-facing catalog strings.
// Implementations provide key lookup + placeholder rendering for a given
// locale, with fallback to the default locale.
type Translator interface {
	// T renders the template at keyPath for the given locale.
	// subs is an optional map of placeholder values (may be nil).
	// A key absent from every locale resolves to the key path itself.
	T(locale, keyPath string, subs map[string]string) string

	// MatchLocale returns the best supported locale for the caller's
	// preferred language tags, or the default locale when none match.
	MatchLocale(preferred ...string) string
}
