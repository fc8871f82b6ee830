package theme

import (
	"sort"
	"strings"
	"time"

	"petroflow/models"
)

// curatedAt pins the metadata timestamp of the shipped presets.
var curatedAt = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

var presetRegistry = map[string]Preset{
	models.ThemeDerrickNight: {
		ID:          models.ThemeDerrickNight,
		Name:        "Derrick Night",
		Description: "Dark control-room palette with sky-blue accents for overnight terminal operations.",
		Category:    "dark",
		Colors: &ColorScheme{
			Primary:       "#60a5fa",
			Secondary:     "#93c5fd",
			Accent:        "#38bdf8",
			Background:    "#0f172a",
			Surface:       "#1e293b",
			Text:          "#f8fafc",
			TextSecondary: "#94a3b8",
			Border:        "#334155",
			Success:       "#047857",
			Warning:       "#b45309",
			Error:         "#b91c1c",
			Info:          "#0369a1",
		},
		Typography:    defaultTypography(),
		Spacing:       defaultSpacing(),
		Shadows:       defaultShadows(),
		Tags:          []string{"dark", "terminal", "default"},
		Accessibility: AccessibilityMeta{HighContrast: true, WCAGLevel: "AA"},
		Metadata:      PresetMetadata{Version: "1.2.0", Author: "petroflow", CreatedAt: curatedAt, UpdatedAt: curatedAt},
	},
	models.ThemeRefineryDawn: {
		ID:          models.ThemeRefineryDawn,
		Name:        "Refinery Dawn",
		Description: "Light daylight palette with deep blue brand colors for office and dispatch staff.",
		Category:    "light",
		Colors: &ColorScheme{
			Primary:       "#1e40af",
			Secondary:     "#1d4ed8",
			Accent:        "#2563eb",
			Background:    "#ffffff",
			Surface:       "#f8fafc",
			Text:          "#0f172a",
			TextSecondary: "#475569",
			Border:        "#e2e8f0",
			Success:       "#34d399",
			Warning:       "#fbbf24",
			Error:         "#fca5a5",
			Info:          "#7dd3fc",
		},
		Typography:    defaultTypography(),
		Spacing:       defaultSpacing(),
		Shadows:       defaultShadows(),
		Tags:          []string{"light", "office"},
		Accessibility: AccessibilityMeta{WCAGLevel: "AA"},
		Metadata:      PresetMetadata{Version: "1.1.0", Author: "petroflow", CreatedAt: curatedAt, UpdatedAt: curatedAt},
	},
	models.ThemeGulfStream: {
		ID:          models.ThemeGulfStream,
		Name:        "Gulf Stream",
		Description: "Deep ocean blues for marine bunkering tenants and coastal distribution fleets.",
		Category:    "dark",
		Colors: &ColorScheme{
			Primary:       "#7dd3fc",
			Secondary:     "#bae6fd",
			Accent:        "#f0abfc",
			Background:    "#0c4a6e",
			Surface:       "#075985",
			Text:          "#f0f9ff",
			TextSecondary: "#bae6fd",
			Border:        "#0e7490",
			Success:       "#065f46",
			Warning:       "#92400e",
			Error:         "#991b1b",
			Info:          "#0ea5e9",
		},
		Typography:    defaultTypography(),
		Spacing:       defaultSpacing(),
		Shadows:       defaultShadows(),
		Tags:          []string{"dark", "marine"},
		Accessibility: AccessibilityMeta{WCAGLevel: "AA"},
		Metadata:      PresetMetadata{Version: "1.0.1", Author: "petroflow", CreatedAt: curatedAt, UpdatedAt: curatedAt},
	},
}

func defaultTypography() *TypographyConfig {
	return &TypographyConfig{
		FontFamily:  "'Inter', 'Segoe UI', system-ui, sans-serif",
		HeadingFont: "'Inter', 'Segoe UI', system-ui, sans-serif",
		FontSizes: map[string]string{
			"xs":   "0.75rem",
			"sm":   "0.875rem",
			"base": "1rem",
			"lg":   "1.125rem",
			"xl":   "1.25rem",
			"2xl":  "1.5rem",
			"3xl":  "1.875rem",
			"4xl":  "2.25rem",
		},
	}
}

func defaultSpacing() map[string]string {
	return map[string]string{
		"xs": "0.25rem",
		"sm": "0.5rem",
		"md": "1rem",
		"lg": "1.5rem",
		"xl": "2.5rem",
	}
}

func defaultShadows() map[string]string {
	return map[string]string{
		"sm": "0 1px 2px rgba(15, 23, 42, 0.25)",
		"md": "0 4px 12px rgba(15, 23, 42, 0.25)",
		"lg": "0 12px 32px rgba(15, 23, 42, 0.35)",
	}
}

// PresetByID returns the curated preset for the provided identifier, falling
// back to the default preset when the identifier is unknown.
func PresetByID(id string) Preset {
	normalized := strings.ToLower(strings.TrimSpace(id))
	if preset, ok := presetRegistry[normalized]; ok {
		return clonePreset(preset)
	}
	return clonePreset(presetRegistry[models.DefaultTheme])
}

// KnownPreset reports whether the identifier names a curated preset.
func KnownPreset(id string) bool {
	_, ok := presetRegistry[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// Presets exposes all curated presets sorted by name for form rendering.
func Presets() []Preset {
	all := make([]Preset, 0, len(presetRegistry))
	for _, preset := range presetRegistry {
		all = append(all, clonePreset(preset))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

// clonePreset deep-copies a preset so callers can mutate their copy without
// touching the registry.
func clonePreset(preset Preset) Preset {
	clone := preset
	if preset.Colors != nil {
		colors := *preset.Colors
		clone.Colors = &colors
	}
	if preset.Typography != nil {
		typography := *preset.Typography
		typography.FontSizes = copyStringMap(preset.Typography.FontSizes)
		clone.Typography = &typography
	}
	clone.Spacing = copyStringMap(preset.Spacing)
	clone.Shadows = copyStringMap(preset.Shadows)
	clone.Tags = append([]string(nil), preset.Tags...)
	return clone
}

func copyStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
