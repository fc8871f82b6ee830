// Package theme holds the shared theming data contracts and the validation
// pipeline. It is a leaf package: both the stylesheet generator and the tenant
// composer depend on it, never the other way around.
package theme

import "time"

// ColorScheme maps named color roles to CSS color values (hex, rgb(a) or
// hsl(a) strings). The roles participating in contrast pairs are required;
// the remaining roles are validated only when present.
type ColorScheme struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary,omitempty"`
	Border        string `json:"border,omitempty"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Error         string `json:"error"`
	Info          string `json:"info,omitempty"`
}

// Role returns the color assigned to a named role.
func (s ColorScheme) Role(name string) string {
	switch name {
	case "primary":
		return s.Primary
	case "secondary":
		return s.Secondary
	case "accent":
		return s.Accent
	case "background":
		return s.Background
	case "surface":
		return s.Surface
	case "text":
		return s.Text
	case "textSecondary":
		return s.TextSecondary
	case "border":
		return s.Border
	case "success":
		return s.Success
	case "warning":
		return s.Warning
	case "error":
		return s.Error
	case "info":
		return s.Info
	default:
		return ""
	}
}

// TypographyConfig describes the font stack and the size scale of a theme.
type TypographyConfig struct {
	FontFamily  string            `json:"fontFamily"`
	HeadingFont string            `json:"headingFont"`
	FontSizes   map[string]string `json:"fontSizes"` // xs..4xl -> length strings
}

// SizeTokens is the ordered set of size tokens a typography config carries.
var SizeTokens = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

// WarningType categorizes a validation warning.
type WarningType string

const (
	WarningContrast    WarningType = "contrast"
	WarningColor       WarningType = "color"
	WarningReadability WarningType = "readability"
	WarningTypography  WarningType = "typography"
)

// Severity ranks how strongly a warning should weigh on the score.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidationWarning is a single, immutable finding produced by validation.
type ValidationWarning struct {
	Type       WarningType `json:"type"`
	Severity   Severity    `json:"severity"`
	Message    string      `json:"message"`
	Element    string      `json:"element,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// ValidationResults is the full outcome of a validation pass. A fresh value is
// produced on every call and never mutated in place.
type ValidationResults struct {
	IsCompliant     bool                `json:"isCompliant"`
	Score           int                 `json:"score"`
	ContrastRatios  map[string]float64  `json:"contrastRatios"`
	Warnings        []ValidationWarning `json:"warnings"`
	Recommendations []string            `json:"recommendations"`
	LastValidated   time.Time           `json:"lastValidated"`
}

// AccessibilityMeta carries the accessibility traits advertised by a preset.
type AccessibilityMeta struct {
	HighContrast  bool   `json:"highContrast"`
	ReducedMotion bool   `json:"reducedMotion"`
	WCAGLevel     string `json:"wcagLevel,omitempty"`
}

// PresetMetadata versions a preset.
type PresetMetadata struct {
	Version   string    `json:"version"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Preset is a named, reusable bundle of colors, typography and accessibility
// metadata. Colors and Typography are pointers so that a structurally
// incomplete preset is representable and can be rejected before use.
type Preset struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Category      string            `json:"category,omitempty"`
	Colors        *ColorScheme      `json:"colors"`
	Typography    *TypographyConfig `json:"typography"`
	Spacing       map[string]string `json:"spacing,omitempty"`
	Shadows       map[string]string `json:"shadows,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Accessibility AccessibilityMeta `json:"accessibility"`
	Metadata      PresetMetadata    `json:"metadata"`
}
