package models

import "strings"

// Curated theme preset identifiers shipped with the platform.
const (
	ThemeDerrickNight = "derrick_night"
	ThemeRefineryDawn = "refinery_dawn"
	ThemeGulfStream   = "gulf_stream"

	// DefaultTheme is applied when no tenant or user preference exists.
	DefaultTheme = ThemeDerrickNight
)

var knownThemes = map[string]struct{}{
	ThemeDerrickNight: {},
	ThemeRefineryDawn: {},
	ThemeGulfStream:   {},
}

// ValidTheme reports whether the value names a curated preset.
func ValidTheme(value string) bool {
	_, ok := knownThemes[value]
	return ok
}

// NormalizeTheme trims and lowercases the value, falling back to the default
// preset when the result is not a curated identifier.
func NormalizeTheme(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(normalized) {
		return normalized
	}
	return DefaultTheme
}
