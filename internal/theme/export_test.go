package theme

import (
	"errors"
	"testing"

	"petroflow/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultPolicy())
	original := PresetByID(models.ThemeRefineryDawn)

	originalResults, err := v.ValidatePreset(original)
	if err != nil {
		t.Fatalf("validate original: %v", err)
	}

	document, err := Export(original)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	restored, err := Import(document)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	if restored.ID != original.ID || restored.Name != original.Name {
		t.Fatalf("round trip lost identity: %+v", restored)
	}
	if *restored.Colors != *original.Colors {
		t.Fatalf("round trip changed colors: %+v vs %+v", restored.Colors, original.Colors)
	}

	restoredResults, err := v.ValidatePreset(restored)
	if err != nil {
		t.Fatalf("validate restored: %v", err)
	}
	if originalResults.IsCompliant && !restoredResults.IsCompliant {
		t.Fatal("a compliant preset must re-validate as compliant after a round trip")
	}
	if restoredResults.Score != originalResults.Score {
		t.Fatalf("round trip changed score: %d vs %d", restoredResults.Score, originalResults.Score)
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	for _, document := range []string{"", "   ", "{not json", `{"id": 42}`} {
		if _, err := Import(document); !errors.Is(err, ErrMalformedPreset) {
			t.Fatalf("Import(%q) error = %v, want ErrMalformedPreset", document, err)
		}
	}
}

func TestImportRejectsIncompleteDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{"missing id", `{"name":"X","colors":{},"typography":{}}`},
		{"missing name", `{"id":"x","colors":{},"typography":{}}`},
		{"missing colors", `{"id":"x","name":"X","typography":{}}`},
		{"missing typography", `{"id":"x","name":"X","colors":{}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Import(tt.document); !errors.Is(err, ErrIncompletePreset) {
				t.Fatalf("Import error = %v, want ErrIncompletePreset", err)
			}
		})
	}
}

func TestFallbackPrefersLastGood(t *testing.T) {
	t.Parallel()

	lastGood := PresetByID(models.ThemeGulfStream)
	if got := Fallback(&lastGood); got.ID != models.ThemeGulfStream {
		t.Fatalf("expected last known good preset, got %q", got.ID)
	}

	if got := Fallback(nil); got.ID != models.DefaultTheme {
		t.Fatalf("expected default preset without a last good, got %q", got.ID)
	}

	broken := Preset{ID: "broken", Name: "Broken"}
	if got := Fallback(&broken); got.ID != models.DefaultTheme {
		t.Fatalf("an incomplete last good must fall back to the default, got %q", got.ID)
	}
}
