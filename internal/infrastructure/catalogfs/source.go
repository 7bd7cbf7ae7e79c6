// Package catalogfs loads the integration's string catalogs from the files
// embedded in the binary, optionally overlaid with documents from an on-disk
// directory. Catalogs are parsed once at construction and immutable after.
package catalogfs

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"ircatalog/internal/domain"
	"ircatalog/internal/domain/entities"
	"ircatalog/internal/ports/output"
)

//go:embed strings/*.json
var catalogFS embed.FS

// Ensure Source implements the output.CatalogSource port.
var _ output.CatalogSource = (*Source)(nil)

// Source provides the embedded locale catalogs, with any <locale>.json or
// <locale>.toml file found in overrideDir replacing the embedded locale of
// the same name (or adding a new one).
type Source struct {
	catalogs map[string]*entities.Catalog
}

// NewSource loads every embedded catalog, then the override directory.
// overrideDir may be empty; a missing directory is not an error.
func NewSource(overrideDir string) (*Source, error) {
	s := &Source{catalogs: make(map[string]*entities.Catalog)}

	entries, err := catalogFS.ReadDir("strings")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogs: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		data, err := catalogFS.ReadFile("strings/" + name)
		if err != nil {
			return nil, fmt.Errorf("read embedded catalog %s: %w", name, err)
		}
		if err := s.add(name, data); err != nil {
			return nil, err
		}
	}

	if overrideDir != "" {
		if err := s.loadDir(overrideDir); err != nil {
			return nil, err
		}
	}

	if len(s.catalogs) == 0 {
		return nil, domain.ErrEmptySource
	}
	return s, nil
}

func (s *Source) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read catalog dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".toml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", name, err)
		}
		if err := s.add(name, data); err != nil {
			return err
		}
	}
	return nil
}

// add parses one catalog document. The file name (minus extension) is the
// locale: en.json, zh.json, de.toml.
func (s *Source) add(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	locale := strings.TrimSuffix(filename, filepath.Ext(filename))

	var root map[string]any
	var err error
	switch ext {
	case ".toml":
		err = toml.Unmarshal(data, &root)
	default:
		err = json.Unmarshal(data, &root)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedCatalog, filename, err)
	}

	catalog, err := entities.NewCatalog(locale, root)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	s.catalogs[locale] = catalog
	return nil
}

// Locales lists every loaded locale, sorted.
func (s *Source) Locales() []string {
	locales := make([]string, 0, len(s.catalogs))
	for locale := range s.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Load returns the catalog for a locale.
func (s *Source) Load(locale string) (*entities.Catalog, error) {
	catalog, ok := s.catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	return catalog, nil
}
