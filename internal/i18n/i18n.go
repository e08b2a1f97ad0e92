// Package i18n holds the UI languages, color themes and the label catalog.
package i18n

import "strings"

// Language is a UI language code.
type Language string

const (
	Russian Language = "ru"
	English Language = "en"
)

// DefaultLanguage is used for absent or unrecognized values.
const DefaultLanguage = English

// Languages lists the selectable languages in display order.
var Languages = []Language{Russian, English}

// ParseLanguage maps a stored value to a Language, falling back to English.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Russian:
		return Russian
	case English:
		return English
	default:
		return DefaultLanguage
	}
}

// Theme is the color scheme of the Mini App.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DefaultTheme is used for absent or unrecognized values.
const DefaultTheme = Light

// ParseTheme maps a stored value to a Theme, falling back to light.
func ParseTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == Dark {
		return Dark
	}
	return DefaultTheme
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.IsDark() {
		return Light
	}
	return Dark
}

// T returns the label for key in lang. Missing translations fall back to
// English, then to the key itself.
func T(lang Language, key string) string {
	if texts, ok := catalog[lang]; ok {
		if text, ok := texts[key]; ok {
			return text
		}
	}
	if text, ok := catalog[English][key]; ok {
		return text
	}
	return key
}

// Has reports whether key is known to the catalog.
func Has(key string) bool {
	_, ok := catalog[English][key]
	return ok
}
