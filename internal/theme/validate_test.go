package theme

import (
	"errors"
	"testing"
)

// highContrastScheme passes every contrast pair at AA-normal.
func highContrastScheme() ColorScheme {
	return ColorScheme{
		Primary:    "#1e40af",
		Secondary:  "#1d4ed8",
		Accent:     "#2563eb",
		Background: "#ffffff",
		Surface:    "#f8fafc",
		Text:       "#0f172a",
		Success:    "#34d399",
		Warning:    "#fbbf24",
		Error:      "#fca5a5",
	}
}

func uniformScheme(value string) ColorScheme {
	return ColorScheme{
		Primary:    value,
		Secondary:  value,
		Accent:     value,
		Background: value,
		Surface:    value,
		Text:       value,
		Success:    value,
		Warning:    value,
		Error:      value,
	}
}

func TestValidateColorSchemeReturnsAllPairs(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	for _, scheme := range []ColorScheme{highContrastScheme(), uniformScheme("#ffffff"), {}} {
		results := v.ValidateColorScheme(scheme)
		if len(results.ContrastRatios) != 8 {
			t.Fatalf("expected exactly 8 contrast pairs, got %d: %v", len(results.ContrastRatios), results.ContrastRatios)
		}
		for _, name := range []string{
			"text-background", "primary-background", "secondary-background",
			"accent-background", "surface-text", "success-text",
			"warning-text", "error-text",
		} {
			if _, ok := results.ContrastRatios[name]; !ok {
				t.Fatalf("missing contrast pair %q", name)
			}
		}
	}
}

func TestValidateColorSchemeHighContrast(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	results := v.ValidateColorScheme(highContrastScheme())

	if !results.IsCompliant {
		t.Fatalf("expected compliant scheme, got warnings %v", results.Warnings)
	}
	if results.Score <= 80 {
		t.Fatalf("expected score above 80, got %d", results.Score)
	}
	if len(results.Warnings) != 0 {
		t.Fatalf("expected zero warnings, got %v", results.Warnings)
	}
	if ratio := results.ContrastRatios["text-background"]; ratio <= 4.5 {
		t.Fatalf("expected text-background ratio above 4.5, got %v", ratio)
	}
}

func TestValidateColorSchemeUniformColorFails(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	results := v.ValidateColorScheme(uniformScheme("#ffffff"))

	if results.IsCompliant {
		t.Fatal("expected non-compliant result for an all-white scheme")
	}
	if results.Score >= 50 {
		t.Fatalf("expected score below 50, got %d", results.Score)
	}
	if len(results.Warnings) == 0 {
		t.Fatal("expected warnings for an all-white scheme")
	}
	if len(results.Recommendations) == 0 {
		t.Fatal("expected recommendations for an all-white scheme")
	}

	foundContrast := false
	for _, warning := range results.Warnings {
		if warning.Type == WarningContrast {
			foundContrast = true
			if warning.Severity != SeverityHigh {
				t.Fatalf("ratio 1 should produce a high severity warning, got %s", warning.Severity)
			}
		}
	}
	if !foundContrast {
		t.Fatal("expected at least one contrast warning")
	}
}

func TestValidateColorSchemeSeverityScalesWithRatio(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())

	// #818181 on white sits between 3.0 and 4.5, a medium finding.
	scheme := highContrastScheme()
	scheme.Primary = "#818181"
	results := v.ValidateColorScheme(scheme)

	var found *ValidationWarning
	for i := range results.Warnings {
		if results.Warnings[i].Element == "primary-background" {
			found = &results.Warnings[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a warning for primary-background, got %v", results.Warnings)
	}
	if found.Severity != SeverityMedium {
		t.Fatalf("expected medium severity between 3.0 and 4.5, got %s", found.Severity)
	}
	if results.IsCompliant {
		t.Fatal("a failing pair must make the scheme non-compliant")
	}
}

func TestValidateColorSchemeUnparsableRole(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	scheme := highContrastScheme()
	scheme.Accent = "definitely-not-a-color"
	results := v.ValidateColorScheme(scheme)

	foundColor := false
	for _, warning := range results.Warnings {
		if warning.Type == WarningColor && warning.Element == "accent" {
			foundColor = true
		}
	}
	if !foundColor {
		t.Fatalf("expected a color warning for the accent role, got %v", results.Warnings)
	}
	// Fail-soft: the pair is still reported, at the minimum ratio.
	if ratio := results.ContrastRatios["accent-background"]; ratio != 1 {
		t.Fatalf("expected ratio 1 for unparsable accent, got %v", ratio)
	}
}

func TestValidateColorSchemeScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	results := v.ValidateColorScheme(uniformScheme("#808080"))
	if results.Score != 0 {
		t.Fatalf("expected floor of 0 for eight high severity warnings, got %d", results.Score)
	}
}

func TestValidateTypographyCleanConfig(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	results := v.ValidateTypography(*defaultTypography())
	if !results.IsCompliant || results.Score != 100 {
		t.Fatalf("expected clean typography to score 100, got %d (%v)", results.Score, results.Warnings)
	}
	if len(results.Warnings) != 0 {
		t.Fatalf("expected zero warnings, got %v", results.Warnings)
	}
}

func TestValidateTypographyMissingFonts(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	cfg := *defaultTypography()
	cfg.FontFamily = ""
	cfg.HeadingFont = "   "
	results := v.ValidateTypography(cfg)

	readability := 0
	for _, warning := range results.Warnings {
		if warning.Type == WarningReadability && warning.Severity == SeverityMedium {
			readability++
		}
	}
	if readability != 2 {
		t.Fatalf("expected medium readability warnings for both missing fonts, got %v", results.Warnings)
	}

	foundWebSafe := false
	for _, rec := range results.Recommendations {
		if rec == "Consider using web-safe fonts" {
			foundWebSafe = true
		}
	}
	if !foundWebSafe {
		t.Fatalf("expected web-safe font recommendation, got %v", results.Recommendations)
	}
}

func TestValidateTypographySizeFloor(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	cfg := *defaultTypography()
	cfg.FontSizes = copyStringMap(cfg.FontSizes)
	cfg.FontSizes["xs"] = "0.5rem" // 8px, below the floor

	results := v.ValidateTypography(cfg)
	found := false
	for _, warning := range results.Warnings {
		if warning.Type == WarningReadability && warning.Element == "xs" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected readability warning for xs token, got %v", results.Warnings)
	}
}

func TestValidateTypographyUnitHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		size      string
		wantTypes []WarningType
	}{
		{"px below floor", "10px", []WarningType{WarningReadability}},
		{"px at floor", "12px", nil},
		{"percent below floor", "50%", []WarningType{WarningReadability}},
		{"viewport units permissive", "1vw", nil},
		{"missing unit", "16", []WarningType{WarningTypography}},
		{"nonsense", "big", []WarningType{WarningTypography}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewValidator(DefaultPolicy())
			cfg := *defaultTypography()
			cfg.FontSizes = copyStringMap(cfg.FontSizes)
			cfg.FontSizes["sm"] = tt.size

			results := v.ValidateTypography(cfg)
			var got []WarningType
			for _, warning := range results.Warnings {
				if warning.Element == "sm" {
					got = append(got, warning.Type)
				}
			}
			if len(got) != len(tt.wantTypes) {
				t.Fatalf("warnings for %q = %v, want types %v", tt.size, got, tt.wantTypes)
			}
			for i, want := range tt.wantTypes {
				if got[i] != want {
					t.Fatalf("warning type = %s, want %s", got[i], want)
				}
			}
		})
	}
}

func TestValidatePresetRequiresSections(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())

	_, err := v.ValidatePreset(Preset{ID: "x", Name: "X", Typography: defaultTypography()})
	if !errors.Is(err, ErrMissingColors) {
		t.Fatalf("expected ErrMissingColors, got %v", err)
	}

	scheme := highContrastScheme()
	_, err = v.ValidatePreset(Preset{ID: "x", Name: "X", Colors: &scheme})
	if !errors.Is(err, ErrMissingTypography) {
		t.Fatalf("expected ErrMissingTypography, got %v", err)
	}
}

func TestValidatePresetMergesSubResults(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	scheme := highContrastScheme()
	cfg := *defaultTypography()
	cfg.FontFamily = "" // one medium warning: typography score 92

	results, err := v.ValidatePreset(Preset{ID: "x", Name: "X", Colors: &scheme, Typography: &cfg})
	if err != nil {
		t.Fatalf("ValidatePreset returned error: %v", err)
	}

	if results.Score != 96 { // rounded average of 100 and 92
		t.Fatalf("expected merged score 96, got %d", results.Score)
	}
	if !results.IsCompliant {
		t.Fatal("expected compliant merged result")
	}
	if len(results.ContrastRatios) != 8 {
		t.Fatalf("expected the eight color ratios in the merged result, got %d", len(results.ContrastRatios))
	}
	if len(results.Warnings) != 1 {
		t.Fatalf("expected the typography warning to carry over, got %v", results.Warnings)
	}
}

func TestValidatePresetComplianceIsANDed(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	results, err := v.ValidatePreset(Preset{
		ID:         "x",
		Name:       "X",
		Colors:     &ColorScheme{Primary: "#fff", Secondary: "#fff", Accent: "#fff", Background: "#fff", Surface: "#fff", Text: "#fff", Success: "#fff", Warning: "#fff", Error: "#fff"},
		Typography: defaultTypography(),
	})
	if err != nil {
		t.Fatalf("ValidatePreset returned error: %v", err)
	}
	if results.IsCompliant {
		t.Fatal("expected non-compliant merged result when colors fail")
	}
}

func TestPolicyFromConfigOverrides(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	if policy.PenaltyHigh != 15 || policy.PenaltyMedium != 8 || policy.PenaltyLow != 3 || policy.ComplianceCutoff != 70 {
		t.Fatalf("unexpected default policy: %+v", policy)
	}
}
