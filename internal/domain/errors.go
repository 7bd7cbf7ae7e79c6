package domain

import "errors"

// Domain errors.
var (
	ErrMalformedCatalog = errors.New("catalog document is malformed")
	ErrMissingNamespace = errors.New("required namespace is missing")
	ErrUnknownLocale    = errors.New("locale is not available")
	ErrEmptySource      = errors.New("catalog source provides no locales")
)
