package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"petroflow/internal/color"
)

// Preset preconditions. Missing sections block validation outright instead of
// lowering the score.
var (
	ErrMissingColors     = errors.New("theme preset has no color scheme")
	ErrMissingTypography = errors.New("theme preset has no typography config")
)

// contrastPairs is the fixed set of role pairs evaluated on every validation
// pass. All eight are always computed regardless of which ones fail.
var contrastPairs = [8][2]string{
	{"text", "background"},
	{"primary", "background"},
	{"secondary", "background"},
	{"accent", "background"},
	{"surface", "text"},
	{"success", "text"},
	{"warning", "text"},
	{"error", "text"},
}

// requiredRoles are the roles that participate in contrast pairs and must
// therefore resolve to a parseable color.
var requiredRoles = []string{
	"text", "background", "primary", "secondary", "accent",
	"surface", "success", "warning", "error",
}

// optionalRoles are validated only when a value is present.
var optionalRoles = []string{"textSecondary", "border", "info"}

// minFontSizePx is the readability floor for font-size tokens.
const minFontSizePx = 12.0

// Validator runs the scheme, typography and preset validations under a
// scoring policy.
type Validator struct {
	policy Policy
}

// NewValidator builds a Validator with the provided policy.
func NewValidator(policy Policy) *Validator {
	return &Validator{policy: policy}
}

// ValidateColorScheme evaluates all contrast pairs of a scheme and scores the
// result. Findings are returned as data; this function never fails.
func (v *Validator) ValidateColorScheme(scheme ColorScheme) ValidationResults {
	results := ValidationResults{
		Score:          100,
		ContrastRatios: make(map[string]float64, len(contrastPairs)),
		LastValidated:  time.Now().UTC(),
	}

	for _, role := range requiredRoles {
		if _, ok := color.Parse(scheme.Role(role)); !ok {
			results.Warnings = append(results.Warnings, ValidationWarning{
				Type:       WarningColor,
				Severity:   SeverityHigh,
				Message:    fmt.Sprintf("The %s color %q is not a parseable color value", role, scheme.Role(role)),
				Element:    role,
				Suggestion: "Replace invalid color values with hex, rgb() or hsl() notation",
			})
		}
	}
	for _, role := range optionalRoles {
		value := scheme.Role(role)
		if value == "" {
			continue
		}
		if _, ok := color.Parse(value); !ok {
			results.Warnings = append(results.Warnings, ValidationWarning{
				Type:       WarningColor,
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("The %s color %q is not a parseable color value", role, value),
				Element:    role,
				Suggestion: "Replace invalid color values with hex, rgb() or hsl() notation",
			})
		}
	}

	allPairsPass := true
	for _, pair := range contrastPairs {
		name := pair[0] + "-" + pair[1]
		ratio := color.ContrastRatio(scheme.Role(pair[0]), scheme.Role(pair[1]))
		results.ContrastRatios[name] = ratio

		if ratio >= color.AANormal {
			continue
		}
		allPairsPass = false

		severity := SeverityMedium
		if ratio < color.AALarge {
			severity = SeverityHigh
		}
		results.Warnings = append(results.Warnings, ValidationWarning{
			Type:       WarningContrast,
			Severity:   severity,
			Message:    fmt.Sprintf("Contrast ratio %.2f:1 between %s and %s is below the WCAG AA minimum of %.1f:1", ratio, pair[0], pair[1], color.AANormal),
			Element:    name,
			Suggestion: fmt.Sprintf("Increase contrast ratio for %s", name),
		})
	}

	v.finalize(&results)
	results.IsCompliant = allPairsPass && results.Score >= v.policy.ComplianceCutoff
	return results
}

// ValidateTypography checks the font stack and the size scale of a theme.
func (v *Validator) ValidateTypography(cfg TypographyConfig) ValidationResults {
	results := ValidationResults{
		Score:          100,
		ContrastRatios: map[string]float64{},
		LastValidated:  time.Now().UTC(),
	}

	if strings.TrimSpace(cfg.FontFamily) == "" {
		results.Warnings = append(results.Warnings, ValidationWarning{
			Type:       WarningReadability,
			Severity:   SeverityMedium,
			Message:    "No body font family is configured",
			Element:    "fontFamily",
			Suggestion: "Consider using web-safe fonts",
		})
	}
	if strings.TrimSpace(cfg.HeadingFont) == "" {
		results.Warnings = append(results.Warnings, ValidationWarning{
			Type:       WarningReadability,
			Severity:   SeverityMedium,
			Message:    "No heading font is configured",
			Element:    "headingFont",
			Suggestion: "Consider using web-safe fonts",
		})
	}

	for _, token := range SizeTokens {
		raw, ok := cfg.FontSizes[token]
		if !ok || strings.TrimSpace(raw) == "" {
			results.Warnings = append(results.Warnings, ValidationWarning{
				Type:       WarningTypography,
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("Font size token %q is missing", token),
				Element:    token,
				Suggestion: "Define every size token from xs through 4xl",
			})
			continue
		}

		px, known, err := approximatePixels(raw)
		if err != nil {
			results.Warnings = append(results.Warnings, ValidationWarning{
				Type:       WarningTypography,
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("Font size %q for token %q does not carry a valid unit", raw, token),
				Element:    token,
				Suggestion: "Use rem, em, px, %, vw or vh units for font sizes",
			})
			continue
		}
		// Viewport-relative sizes depend on the device; treated permissively.
		if !known {
			continue
		}
		if px < minFontSizePx {
			results.Warnings = append(results.Warnings, ValidationWarning{
				Type:       WarningReadability,
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("Font size %q for token %q is approximately %.0fpx, below the %.0fpx readability floor", raw, token, px, minFontSizePx),
				Element:    token,
				Suggestion: fmt.Sprintf("Increase the %s font size to at least %.0fpx", token, minFontSizePx),
			})
		}
	}

	v.finalize(&results)
	results.IsCompliant = results.Score >= v.policy.ComplianceCutoff
	return results
}

// ValidatePreset validates a full preset. Colors and typography must both be
// present; their absence is a hard error rather than a score deduction. When
// both are present the two sub-validations are merged: ratios and findings
// concatenated, score averaged, compliance ANDed.
func (v *Validator) ValidatePreset(preset Preset) (ValidationResults, error) {
	if preset.Colors == nil {
		return ValidationResults{}, ErrMissingColors
	}
	if preset.Typography == nil {
		return ValidationResults{}, ErrMissingTypography
	}

	colors := v.ValidateColorScheme(*preset.Colors)
	typography := v.ValidateTypography(*preset.Typography)

	merged := ValidationResults{
		IsCompliant:    colors.IsCompliant && typography.IsCompliant,
		Score:          int(math.Round(float64(colors.Score+typography.Score) / 2)),
		ContrastRatios: make(map[string]float64, len(colors.ContrastRatios)),
		LastValidated:  time.Now().UTC(),
	}
	for name, ratio := range colors.ContrastRatios {
		merged.ContrastRatios[name] = ratio
	}
	merged.Warnings = append(merged.Warnings, colors.Warnings...)
	merged.Warnings = append(merged.Warnings, typography.Warnings...)
	merged.Recommendations = append(merged.Recommendations, colors.Recommendations...)
	merged.Recommendations = append(merged.Recommendations, typography.Recommendations...)

	return merged, nil
}

// finalize applies the scoring penalties and derives recommendations from the
// accumulated warnings.
func (v *Validator) finalize(results *ValidationResults) {
	score := results.Score
	seen := map[string]struct{}{}
	for _, warning := range results.Warnings {
		score -= v.policy.penalty(warning.Severity)
		if warning.Suggestion == "" {
			continue
		}
		if _, dup := seen[warning.Suggestion]; dup {
			continue
		}
		seen[warning.Suggestion] = struct{}{}
		results.Recommendations = append(results.Recommendations, warning.Suggestion)
	}
	if score < 0 {
		score = 0
	}
	results.Score = score
}

// approximatePixels converts a CSS length to an approximate pixel value using
// a 16px base. Viewport units are legal but not comparable against the floor;
// they report known=false.
func approximatePixels(value string) (px float64, known bool, err error) {
	value = strings.TrimSpace(strings.ToLower(value))

	for _, unit := range []string{"rem", "em", "px", "%", "vw", "vh"} {
		if !strings.HasSuffix(value, unit) {
			continue
		}
		number := strings.TrimSpace(strings.TrimSuffix(value, unit))
		parsed, parseErr := strconv.ParseFloat(number, 64)
		if parseErr != nil || parsed < 0 {
			return 0, false, fmt.Errorf("invalid length %q", value)
		}
		switch unit {
		case "rem", "em":
			return parsed * 16, true, nil
		case "px":
			return parsed, true, nil
		case "%":
			return parsed / 100 * 16, true, nil
		default: // vw, vh
			return 0, false, nil
		}
	}

	return 0, false, fmt.Errorf("missing or unknown unit in %q", value)
}
