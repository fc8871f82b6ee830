// Command import_brand extracts brand colors from a tenant's brand guideline
// PDF, merges them onto a curated base preset, validates the result and stores
// it as a theme preset for that tenant.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"gorm.io/gorm"

	"petroflow/internal/config"
	"petroflow/internal/db"
	"petroflow/internal/theme"
	"petroflow/models"
)

var hexPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)

// Color roles are assigned in guideline order: most brand documents lead with
// the primary mark color, then secondary and accent.
var roleOrder = []string{"primary", "secondary", "accent"}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <tenant-slug> <brand-guideline.pdf> [base-preset]\n", os.Args[0])
		os.Exit(2)
	}

	basePreset := models.DefaultTheme
	if len(os.Args) > 3 {
		basePreset = os.Args[3]
	}

	if err := run(os.Args[1], os.Args[2], basePreset); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(slug, pdfPath, basePreset string) error {
	if strings.TrimSpace(slug) == "" {
		return errors.New("tenant slug must not be empty")
	}
	if !models.ValidTheme(basePreset) {
		return fmt.Errorf("unknown base preset %q", basePreset)
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("read guideline: %w", err)
	}

	text, err := extractTextFromPDF(data)
	if err != nil {
		return fmt.Errorf("extract guideline text: %w", err)
	}

	override, err := overrideFromGuideline(text)
	if err != nil {
		return err
	}

	merged := theme.Merge(theme.PresetByID(basePreset), override)
	validator := theme.NewValidator(theme.DefaultPolicy())
	results, err := validator.ValidatePreset(merged)
	if err != nil {
		return fmt.Errorf("validate merged preset: %w", err)
	}
	if !results.IsCompliant {
		for _, warning := range results.Warnings {
			fmt.Fprintf(os.Stderr, "  [%s/%s] %s\n", warning.Type, warning.Severity, warning.Message)
		}
		return fmt.Errorf("brand colors fail accessibility validation (score %d)", results.Score)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := persistPreset(database, slug, merged); err != nil {
		return err
	}

	fmt.Printf("imported brand preset %s for tenant %s (score %d)\n", merged.ID, slug, results.Score)
	return nil
}

// overrideFromGuideline maps the hex colors found in the guideline text onto
// theme roles in discovery order, skipping duplicates.
func overrideFromGuideline(text string) (theme.Override, error) {
	matches := hexPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return theme.Override{}, errors.New("no hex colors found in guideline")
	}

	seen := make(map[string]bool)
	var unique []string
	for _, match := range matches {
		normalized := strings.ToLower(match)
		if !seen[normalized] {
			seen[normalized] = true
			unique = append(unique, normalized)
		}
	}

	var override theme.Override
	for i, role := range roleOrder {
		if i >= len(unique) {
			break
		}
		switch role {
		case "primary":
			override.Colors.Primary = unique[i]
		case "secondary":
			override.Colors.Secondary = unique[i]
		case "accent":
			override.Colors.Accent = unique[i]
		}
	}
	return override, nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func persistPreset(database *gorm.DB, slug string, preset theme.Preset) error {
	var tenant models.Tenant
	if err := database.First(&tenant, "slug = ?", slug).Error; err != nil {
		return fmt.Errorf("find tenant %q: %w", slug, err)
	}

	document, err := theme.Export(preset)
	if err != nil {
		return fmt.Errorf("export preset: %w", err)
	}

	record := models.ThemePreset{
		PresetID: preset.ID,
		TenantID: &tenant.ID,
		Name:     preset.Name,
		Category: preset.Category,
		Document: document,
		Source:   "import",
	}
	if err := database.Create(&record).Error; err != nil {
		return fmt.Errorf("store preset: %w", err)
	}

	colors := ""
	if preset.Colors != nil {
		colors = strings.Join([]string{preset.Colors.Primary, preset.Colors.Secondary, preset.Colors.Accent}, ",")
	}
	return database.Model(&tenant).Update("brand_colors", brandColorsJSON(colors)).Error
}

// brandColorsJSON rebuilds the tenant branding column from the imported roles.
func brandColorsJSON(colors string) string {
	parts := strings.Split(colors, ",")
	fields := make([]string, 0, len(roleOrder))
	for i, role := range roleOrder {
		if i >= len(parts) || strings.TrimSpace(parts[i]) == "" {
			continue
		}
		fields = append(fields, fmt.Sprintf("%q:%q", role, parts[i]))
	}
	return "{" + strings.Join(fields, ",") + "}"
}
