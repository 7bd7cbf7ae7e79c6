// Package render implements placeholder substitution for catalog templates.
//
// Templates use single-brace named placeholders ({device_type}, {current_ip})
// whose values are supplied by the configuration-flow engine at display time.
package render

import "strings"

// Render replaces each {name} placeholder with the matching substitution
// value. A placeholder with no matching value is preserved verbatim, braces
// included; rendering never fails. An empty-string value substitutes to the
// empty string, which removes the marker.
func Render(template string, subs map[string]string) string {
	if !strings.ContainsRune(template, '{') {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		rest = rest[open:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}

		name := rest[1:end]
		if !isPlaceholderName(name) {
			// Not a placeholder; emit the brace and keep scanning so that
			// "{{name}" still resolves the inner marker.
			b.WriteByte('{')
			rest = rest[1:]
			continue
		}
		if value, ok := subs[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[:end+1])
		}
		rest = rest[end+1:]
	}
}

// Placeholders returns the distinct placeholder names referenced by a
// template, in order of first appearance.
func Placeholders(template string) []string {
	var names []string
	seen := make(map[string]bool)

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		rest = rest[open:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return names
		}
		name := rest[1:end]
		if !isPlaceholderName(name) {
			rest = rest[1:]
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[end+1:]
	}
}

// isPlaceholderName reports whether s looks like a placeholder identifier:
// ASCII letters, digits and underscores, starting with a letter or
// underscore. Anything else (including an empty "{}") is literal text.
func isPlaceholderName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
