package entities

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"ircatalog/internal/domain"
)

// Catalog is the localized string table of one locale: a nested mapping from
// key segments to either further mappings or leaf template strings. It is
// built once at load time and never mutated afterwards, so it is safe to
// share between any number of concurrent readers.
type Catalog struct {
	locale string
	root   map[string]any
}

// NewCatalog wraps an already-unmarshaled document. It rejects documents
// whose leaves are not strings, since every value in a string catalog must be
// display text.
func NewCatalog(locale string, root map[string]any) (*Catalog, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", domain.ErrMalformedCatalog)
	}
	if err := checkLeaves("", root); err != nil {
		return nil, err
	}
	return &Catalog{locale: locale, root: root}, nil
}

func checkLeaves(prefix string, node map[string]any) error {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
		case map[string]any:
			if err := checkLeaves(path, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: value at %q is %T, want string or object", domain.ErrMalformedCatalog, path, v)
		}
	}
	return nil
}

// Locale returns the locale this catalog was loaded for (e.g. "en").
func (c *Catalog) Locale() string {
	return c.locale
}

// Lookup returns the template string at the dotted key path. Absence is a
// normal outcome: the second return value is false and the caller decides the
// fallback (the consuming flow engine displays the raw key).
func (c *Catalog) Lookup(keyPath string) (string, bool) {
	node := c.root
	segments := strings.Split(keyPath, ".")
	for i, segment := range segments {
		value, ok := node[segment]
		if !ok {
			return "", false
		}
		if i == len(segments)-1 {
			leaf, ok := value.(string)
			return leaf, ok
		}
		node, ok = value.(map[string]any)
		if !ok {
			return "", false
		}
	}
	return "", false
}

// Namespace returns the sub-tree under a top-level namespace ("config",
// "options", "entity"), or false when the namespace is absent.
func (c *Catalog) Namespace(name string) (map[string]any, bool) {
	sub, ok := c.root[name].(map[string]any)
	return sub, ok
}

// Flatten returns the dotted-path view of the catalog. The result is a fresh
// map owned by the caller.
func (c *Catalog) Flatten() map[string]string {
	flat := make(map[string]string)
	flatten("", c.root, flat)
	return flat
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[path] = v
		case map[string]any:
			flatten(path, v, out)
		}
	}
}

// KeyPaths returns every leaf key path, sorted.
func (c *Catalog) KeyPaths() []string {
	flat := c.Flatten()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Serialize renders the catalog back to a structured document. Re-loading the
// output yields a catalog with identical key/value content; key order within
// the document is not significant.
func (c *Catalog) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(c.root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize catalog %s: %w", c.locale, err)
	}
	return data, nil
}
