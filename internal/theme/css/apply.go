package css

import (
	"context"
	"fmt"

	"petroflow/internal/log"
	"petroflow/internal/theme"
)

// StyleID is the reserved document id for the applied theme stylesheet. Only
// one theme stylesheet exists at a time.
const StyleID = "petroflow-theme"

// ApplyResult reports the outcome of a theme application.
type ApplyResult struct {
	Success  bool                      `json:"success"`
	Theme    string                    `json:"theme"`
	Errors   []string                  `json:"errors,omitempty"`
	Warnings []theme.ValidationWarning `json:"warnings,omitempty"`
}

// Applier validates presets, renders them to CSS and injects the result into
// a Document. Generated stylesheets are cached keyed by the preset contents.
type Applier struct {
	validator *theme.Validator
	cache     *Cache
	doc       Document

	generations int // stylesheets rendered, for cache tests
}

// NewApplier wires a validator and cache to the target document.
func NewApplier(validator *theme.Validator, cache *Cache, doc Document) *Applier {
	if validator == nil {
		validator = theme.NewValidator(theme.DefaultPolicy())
	}
	if cache == nil {
		cache = NewCache(0, 0, 0)
	}
	return &Applier{validator: validator, cache: cache, doc: doc}
}

// Apply validates the preset and, when it passes, injects its stylesheet
// under the reserved id. A preset that fails validation leaves the document
// untouched. Document failures never propagate as errors; they come back as
// a failed result so callers can fall back to the last good theme.
func (a *Applier) Apply(preset theme.Preset) ApplyResult {
	result := ApplyResult{Theme: preset.ID}

	validation, err := a.validator.ValidatePreset(preset)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = validation.Warnings
	if !validation.IsCompliant {
		result.Errors = append(result.Errors, fmt.Sprintf("preset %q failed accessibility validation (score %d)", preset.ID, validation.Score))
		return result
	}

	stylesheet, err := a.stylesheetFor(preset)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if err := a.doc.UpsertStyle(StyleID, stylesheet); err != nil {
		log.Error(context.Background(), "theme apply failed", "theme", preset.ID, "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("apply theme %q: %v", preset.ID, err))
		return result
	}

	result.Success = true
	return result
}

// Remove drops the applied theme stylesheet.
func (a *Applier) Remove() error {
	return a.doc.RemoveStyle(StyleID)
}

func (a *Applier) stylesheetFor(preset theme.Preset) (string, error) {
	document, err := theme.Export(preset)
	if err != nil {
		return "", fmt.Errorf("serialize preset %q: %w", preset.ID, err)
	}

	key := Key(document)
	if cached, ok := a.cache.Get(key); ok {
		return cached, nil
	}

	stylesheet := Minify(Stylesheet(preset))
	a.generations++
	a.cache.Put(key, stylesheet)
	return stylesheet, nil
}
