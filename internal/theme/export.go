package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Import rejections. Nothing is mutated when any of these are returned.
var (
	ErrMalformedPreset  = errors.New("malformed theme preset document")
	ErrIncompletePreset = errors.New("theme preset document is structurally incomplete")
)

// Export serializes a preset to an indented JSON document.
func Export(preset Preset) (string, error) {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode theme preset: %w", err)
	}
	return string(data), nil
}

// Import parses a serialized preset and verifies it is structurally complete
// before returning it. Malformed JSON or a document missing its identity,
// colors or typography is rejected without any state mutation.
func Import(document string) (Preset, error) {
	if strings.TrimSpace(document) == "" {
		return Preset{}, fmt.Errorf("%w: empty document", ErrMalformedPreset)
	}

	var preset Preset
	decoder := json.NewDecoder(strings.NewReader(document))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&preset); err != nil {
		return Preset{}, fmt.Errorf("%w: %v", ErrMalformedPreset, err)
	}

	if err := checkComplete(preset); err != nil {
		return Preset{}, err
	}

	return preset, nil
}

func checkComplete(preset Preset) error {
	if strings.TrimSpace(preset.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrIncompletePreset)
	}
	if strings.TrimSpace(preset.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrIncompletePreset)
	}
	if preset.Colors == nil {
		return fmt.Errorf("%w: missing colors", ErrIncompletePreset)
	}
	if preset.Typography == nil {
		return fmt.Errorf("%w: missing typography", ErrIncompletePreset)
	}
	return nil
}

// Fallback offers the recovery path callers opt into when a candidate preset
// fails validation or import: prefer the last known good preset, otherwise
// the curated default.
func Fallback(lastGood *Preset) Preset {
	if lastGood != nil && lastGood.Colors != nil && lastGood.Typography != nil {
		return clonePreset(*lastGood)
	}
	return PresetByID("")
}
