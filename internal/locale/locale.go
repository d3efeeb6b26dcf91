// Package locale holds the display strings shown by every front end and the
// narrative strings used when composing recommendations.
package locale

import "strings"

// Locale is a display language code.
type Locale string

const (
	English Locale = "en"
	Hindi   Locale = "hi"
)

// Default is used whenever a locale or key is missing.
const Default = English

// All returns the supported locales in menu order.
func All() []Locale {
	return []Locale{English, Hindi}
}

// Parse maps a language code or display name to a Locale. Unknown values
// resolve to Default.
func Parse(s string) Locale {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hi", "hindi", "हिंदी":
		return Hindi
	default:
		return English
	}
}

// DisplayName returns the language name in its own script.
func (l Locale) DisplayName() string {
	switch l {
	case Hindi:
		return "हिंदी"
	default:
		return "English"
	}
}

// T returns the string for key in locale l, falling back to the default
// locale and finally to the key itself.
func T(l Locale, key string) string {
	if s, ok := table[l][key]; ok {
		return s
	}
	if s, ok := table[Default][key]; ok {
		return s
	}
	return key
}

// Has reports whether l defines key without falling back.
func Has(l Locale, key string) bool {
	_, ok := table[l][key]
	return ok
}
