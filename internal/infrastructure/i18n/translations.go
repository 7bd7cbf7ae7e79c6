package i18n

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"ircatalog/internal/ports/output"
	"ircatalog/pkg/render"
)

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, fed with
// the flattened string catalogs (dotted key path = message ID).
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	matcher         language.Matcher
	locales         []string
	log             zerolog.Logger
}

// NewTranslator builds a Translator over every locale the source provides,
// using the given default locale (e.g. "en") as the final fallback.
func NewTranslator(source output.CatalogSource, defaultLocale string, log zerolog.Logger) (*Translator, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: parse default locale %q: %w", defaultLocale, err)
	}

	bundle := i18n.NewBundle(defaultTag)

	// The default locale leads so the matcher falls back to it.
	locales := []string{defaultLocale}
	tags := []language.Tag{defaultTag}
	for _, locale := range source.Locales() {
		if locale == defaultLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse locale %q: %w", locale, err)
		}
		locales = append(locales, locale)
		tags = append(tags, tag)
	}

	for i, locale := range locales {
		catalog, err := source.Load(locale)
		if err != nil {
			return nil, err
		}
		flat := catalog.Flatten()
		messages := make([]*i18n.Message, 0, len(flat))
		for keyPath, value := range flat {
			messages = append(messages, &i18n.Message{ID: keyPath, Other: value})
		}
		if err := bundle.AddMessages(tags[i], messages...); err != nil {
			return nil, fmt.Errorf("i18n: add messages for %q: %w", locale, err)
		}
		log.Debug().Str("locale", locale).Int("keys", len(messages)).Msg("loaded catalog into bundle")
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: defaultTag,
		matcher:         language.NewMatcher(tags),
		locales:         locales,
		log:             log,
	}, nil
}

// T renders the template at keyPath for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key path itself. Placeholder substitution follows the
// catalog convention: unresolved {name} markers are preserved verbatim.
func (t *Translator) T(locale, keyPath string, subs map[string]string) string {
	if keyPath == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: keyPath})
	if err != nil {
		t.log.Debug().Str("key", keyPath).Strs("locales", languages).Err(err).Msg("localize failed")
		return keyPath
	}
	return render.Render(msg, subs)
}

// MatchLocale returns the best supported locale for the caller's preferred
// language tags ("zh-CN", "en-US", ...). With no usable preference it
// returns the default locale.
func (t *Translator) MatchLocale(preferred ...string) string {
	parsed := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		tag, err := language.Parse(p)
		if err != nil {
			continue
		}
		parsed = append(parsed, tag)
	}
	if len(parsed) == 0 {
		return t.locales[0]
	}
	_, index, _ := t.matcher.Match(parsed...)
	return t.locales[index]
}
