package application

import (
	"fmt"
	"sort"
	"strings"

	"ircatalog/internal/domain"
	"ircatalog/internal/domain/entities"
	"ircatalog/pkg/render"
)

// requiredNamespaces are the top-level namespaces the flow engine reads.
var requiredNamespaces = []string{"config", "options", "entity"}

// Entity state label sets are fixed by the integration's platforms: the
// climate entity exposes these HVAC modes, the fan entity only on/off.
var (
	climateStates = []string{"off", "heat", "cool", "heat_cool", "auto", "dry", "fan_only"}
	fanStates     = []string{"off", "on"}
)

// knownPlaceholders maps a key path to the substitution names the flow
// engine supplies when rendering it. A template using any other placeholder
// would never be resolved and is reported as an error.
var knownPlaceholders = map[string][]string{
	"config.step.user.description":             {"device_types"},
	"config.step.climate.description":          {"example_config"},
	"config.step.fan.description":              {"example_config"},
	"config.step.remote.description":           {"example_config"},
	"options.step.init.description":            {"device_type", "current_ip", "extra_info"},
	"options.step.climate_options.description": {"current_config"},
	"options.step.fan_options.description":     {"current_config"},
	"options.step.remote_options.description":  {"current_config"},
}

// Validate checks every loaded catalog against the integration's invariants:
// required namespaces, exact entity state label sets, placeholder usage, no
// empty leaf values, and translation parity with the default locale
// (parity gaps are warnings, everything else is an error).
func (s *CatalogService) Validate() []domain.Issue {
	var issues []domain.Issue

	reference := s.catalogs[s.defaultLocale]
	if reference == nil {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Locale:   s.defaultLocale,
			Message:  "default locale has no catalog",
		})
		return issues
	}

	for _, locale := range s.locales {
		catalog := s.catalogs[locale]
		issues = append(issues, validateCatalog(catalog)...)
		if locale != s.defaultLocale {
			issues = append(issues, validateParity(reference, catalog)...)
		}
	}
	return issues
}

func validateCatalog(catalog *entities.Catalog) []domain.Issue {
	var issues []domain.Issue
	locale := catalog.Locale()

	for _, namespace := range requiredNamespaces {
		if _, ok := catalog.Namespace(namespace); !ok {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Locale:   locale,
				KeyPath:  namespace,
				Message:  domain.ErrMissingNamespace.Error(),
			})
		}
	}

	issues = append(issues, validateStateSet(catalog, "entity.climate.state", climateStates)...)
	issues = append(issues, validateStateSet(catalog, "entity.fan.state", fanStates)...)

	for keyPath, value := range catalog.Flatten() {
		if strings.TrimSpace(value) == "" {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Locale:   locale,
				KeyPath:  keyPath,
				Message:  "empty value",
			})
		}
		allowed := knownPlaceholders[keyPath]
		for _, name := range render.Placeholders(value) {
			if !contains(allowed, name) {
				issues = append(issues, domain.Issue{
					Severity: domain.SeverityError,
					Locale:   locale,
					KeyPath:  keyPath,
					Message:  fmt.Sprintf("placeholder {%s} is never supplied by the flow engine", name),
				})
			}
		}
	}

	return issues
}

// validateStateSet requires the keys under prefix to be exactly the given
// state identifiers.
func validateStateSet(catalog *entities.Catalog, prefix string, states []string) []domain.Issue {
	var issues []domain.Issue
	locale := catalog.Locale()

	for _, state := range states {
		if _, ok := catalog.Lookup(prefix + "." + state); !ok {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Locale:   locale,
				KeyPath:  prefix + "." + state,
				Message:  "missing state label",
			})
		}
	}

	flat := catalog.Flatten()
	var extras []string
	for keyPath := range flat {
		if !strings.HasPrefix(keyPath, prefix+".") {
			continue
		}
		state := strings.TrimPrefix(keyPath, prefix+".")
		if !contains(states, state) {
			extras = append(extras, keyPath)
		}
	}
	sort.Strings(extras)
	for _, keyPath := range extras {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Locale:   locale,
			KeyPath:  keyPath,
			Message:  "state label not exposed by the entity",
		})
	}

	return issues
}

// validateParity reports keys of the reference locale that a translation does
// not cover. The translator falls back to the reference locale for these, so
// gaps are warnings, not errors.
func validateParity(reference, translated *entities.Catalog) []domain.Issue {
	var issues []domain.Issue
	flat := translated.Flatten()
	for _, keyPath := range reference.KeyPaths() {
		if _, ok := flat[keyPath]; !ok {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityWarning,
				Locale:   translated.Locale(),
				KeyPath:  keyPath,
				Message:  "missing translation, falls back to " + reference.Locale(),
			})
		}
	}
	return issues
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
