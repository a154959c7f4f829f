// Package language holds the closed set of content languages the blog serves.
package language

import "polyglot/internal/models"

// Default is the authoritative language of every translation group.
const Default = "en"

// supported is ordered; responses that enumerate languages keep this order.
var supported = []string{"en", "fr", "de", "es", "it", "cs", "pl", "jp"}

var index = func() map[string]int {
	m := make(map[string]int, len(supported))
	for i, code := range supported {
		m[code] = i
	}
	return m
}()

// Codes returns a copy of the supported language codes in canonical order.
func Codes() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is an exact, case-sensitive match.
func IsSupported(code string) bool {
	_, ok := index[code]
	return ok
}

// Validate returns an INVALID_LANGUAGE error listing every valid code when
// code is not supported.
func Validate(code string) error {
	if IsSupported(code) {
		return nil
	}
	return models.NewInvalidLanguageError(code, Codes())
}

// Position returns the canonical position of code, or -1 when unsupported.
func Position(code string) int {
	if i, ok := index[code]; ok {
		return i
	}
	return -1
}
