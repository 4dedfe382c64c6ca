package model

import "strings"

// DefaultLanguage is used whenever the requested code is missing or not
// in the supported set.
const DefaultLanguage = "en"

// SupportedLanguages is the closed set of menu locales.
var SupportedLanguages = []string{"tr", "en", "es", "fr"}

// NormalizeLanguage lowercases a requested code and falls back to the
// default for anything outside the supported set. Always returns a valid
// code.
func NormalizeLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range SupportedLanguages {
		if code == l {
			return code
		}
	}
	return DefaultLanguage
}

// Translate picks the overlay value when a translation supplied one, else
// the base-language value. Total: base is required non-empty, so the
// result is never empty for names.
func Translate(base, overlay string) string {
	if overlay != "" {
		return overlay
	}
	return base
}
