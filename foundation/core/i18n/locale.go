// File: locale.go
// Title: Locale Helpers
// Description: Normalization and validation of locale identifiers and the
//              mapping between locales and language file names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with Accept-Language detection
// - 2026-10-12 v0.2.0: Dropped HTTP header detection, added pt-BR display names

package i18n

import (
	"path"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// NormalizeLocale normalizes a locale string, e.g. "pt_br" becomes "pt-BR".
// Malformed input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return ""
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	parts := strings.Split(locale, "-")
	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}
	return language
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return mdwerror.New("locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ValidateLocale")
	}
	if NormalizeLocale(locale) == "" {
		return mdwerror.New("invalid locale format").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'pt-BR'")
	}
	return nil
}

// ParseLocaleFromFilename extracts the locale from a file name such as "pt-BR.toml"
func ParseLocaleFromFilename(filename string) string {
	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	return NormalizeLocale(name)
}

var displayNames = map[string]string{
	"en":    "English",
	"en-US": "English (United States)",
	"pt":    "Português",
	"pt-BR": "Português (Brasil)",
	"de":    "Deutsch",
	"es":    "Español",
}

// GetLocaleDisplayName returns a human-readable name for a locale, or the
// normalized locale when it is not known
func GetLocaleDisplayName(locale string) string {
	normalized := NormalizeLocale(locale)
	if name, ok := displayNames[normalized]; ok {
		return name
	}
	return normalized
}
