// Package tenant turns a tenant record into the theme it should be served:
// curated base preset plus the tenant's stored branding overrides, validated
// before use with recovery to a known-good theme when the result fails.
package tenant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"petroflow/internal/log"
	"petroflow/internal/theme"
	"petroflow/models"
)

// brandFonts is the stored shape of Tenant.BrandFonts.
type brandFonts struct {
	FontFamily  string            `json:"fontFamily,omitempty"`
	HeadingFont string            `json:"headingFont,omitempty"`
	FontSizes   map[string]string `json:"fontSizes,omitempty"`
}

// Composition is a fully resolved tenant theme with its validation verdict.
type Composition struct {
	Preset     theme.Preset
	Validation theme.ValidationResults
	// Recovered is set when the branded theme failed validation and the
	// composition fell back to the unbranded base.
	Recovered bool
}

// Composer resolves tenant branding against the curated presets.
type Composer struct {
	validator *theme.Validator
}

// NewComposer builds a composer. A nil validator selects the default policy.
func NewComposer(validator *theme.Validator) *Composer {
	if validator == nil {
		validator = theme.NewValidator(theme.DefaultPolicy())
	}
	return &Composer{validator: validator}
}

// Compose merges the tenant's branding into its base preset and validates the
// result. A branded theme that fails validation is discarded in favor of the
// plain base preset, which every curated entry is known to pass.
func (c *Composer) Compose(ctx context.Context, tenant *models.Tenant) Composition {
	base := theme.PresetByID(baseID(tenant))

	if tenant == nil {
		return c.finish(base)
	}

	override, err := OverrideFor(tenant)
	if err != nil {
		log.Warn(ctx, "tenant branding unreadable, serving base preset",
			"tenant", tenant.Slug, "error", err)
		return c.finish(base)
	}
	if override.Empty() {
		return c.finish(base)
	}

	branded := theme.Merge(base, override)
	validation, err := c.validator.ValidatePreset(branded)
	if err == nil && validation.IsCompliant {
		return Composition{Preset: branded, Validation: validation}
	}

	if err != nil {
		log.Warn(ctx, "tenant theme rejected, serving base preset",
			"tenant", tenant.Slug, "error", err)
	} else {
		log.Warn(ctx, "tenant theme failed accessibility validation, serving base preset",
			"tenant", tenant.Slug, "score", validation.Score, "warnings", len(validation.Warnings))
	}

	recovered := c.finish(theme.Fallback(&base))
	recovered.Recovered = true
	return recovered
}

// OverrideFor decodes a tenant's stored branding columns into an override.
func OverrideFor(tenant *models.Tenant) (theme.Override, error) {
	var override theme.Override
	if tenant == nil {
		return override, nil
	}

	if colors := strings.TrimSpace(tenant.BrandColors); colors != "" {
		if err := json.Unmarshal([]byte(colors), &override.Colors); err != nil {
			return theme.Override{}, fmt.Errorf("decode brand colors for %q: %w", tenant.Slug, err)
		}
	}
	if fonts := strings.TrimSpace(tenant.BrandFonts); fonts != "" {
		var f brandFonts
		if err := json.Unmarshal([]byte(fonts), &f); err != nil {
			return theme.Override{}, fmt.Errorf("decode brand fonts for %q: %w", tenant.Slug, err)
		}
		override.FontFamily = f.FontFamily
		override.HeadingFont = f.HeadingFont
		override.FontSizes = f.FontSizes
	}

	if !override.Empty() {
		override.Name = tenant.Name
	}
	return override, nil
}

func (c *Composer) finish(preset theme.Preset) Composition {
	validation, err := c.validator.ValidatePreset(preset)
	if err != nil {
		// Curated presets always carry colors and typography; reaching this
		// branch means the registry itself is broken.
		validation = theme.ValidationResults{}
	}
	return Composition{Preset: preset, Validation: validation}
}

func baseID(tenant *models.Tenant) string {
	if tenant == nil {
		return models.DefaultTheme
	}
	return tenant.BasePreset
}
