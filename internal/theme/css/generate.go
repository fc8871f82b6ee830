// Package css turns a validated theme preset into an injectable stylesheet:
// flat variable generation, textual minification, hashed caching and the
// document application sequence.
package css

import (
	"fmt"
	"sort"
	"strings"

	"petroflow/internal/theme"
)

// variablePrefix namespaces every generated custom property.
const variablePrefix = "--pf-"

// Variables flattens a preset into a CSS custom-property map.
func Variables(preset theme.Preset) map[string]string {
	vars := make(map[string]string, 32)

	if preset.Colors != nil {
		colors := preset.Colors
		vars[variablePrefix+"color-primary"] = colors.Primary
		vars[variablePrefix+"color-secondary"] = colors.Secondary
		vars[variablePrefix+"color-accent"] = colors.Accent
		vars[variablePrefix+"color-background"] = colors.Background
		vars[variablePrefix+"color-surface"] = colors.Surface
		vars[variablePrefix+"color-text"] = colors.Text
		if colors.TextSecondary != "" {
			vars[variablePrefix+"color-text-secondary"] = colors.TextSecondary
		}
		if colors.Border != "" {
			vars[variablePrefix+"color-border"] = colors.Border
		}
		vars[variablePrefix+"color-success"] = colors.Success
		vars[variablePrefix+"color-warning"] = colors.Warning
		vars[variablePrefix+"color-error"] = colors.Error
		if colors.Info != "" {
			vars[variablePrefix+"color-info"] = colors.Info
		}
	}

	if preset.Typography != nil {
		typography := preset.Typography
		if typography.FontFamily != "" {
			vars[variablePrefix+"font-family"] = typography.FontFamily
		}
		if typography.HeadingFont != "" {
			vars[variablePrefix+"font-heading"] = typography.HeadingFont
		}
		for token, size := range typography.FontSizes {
			vars[variablePrefix+"font-size-"+token] = size
		}
	}

	for token, value := range preset.Spacing {
		vars[variablePrefix+"space-"+token] = value
	}
	for token, value := range preset.Shadows {
		vars[variablePrefix+"shadow-"+token] = value
	}

	return vars
}

// Stylesheet renders the full stylesheet for a preset: one :root block with
// every variable plus the derived utility classes.
func Stylesheet(preset theme.Preset) string {
	vars := Variables(preset)

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n\n")
	b.WriteString(utilityRules)
	return b.String()
}

// utilityRules are the derived classes shipped with every theme. They refer
// to the generated variables only, so they are identical across presets and
// survive minification unchanged.
const utilityRules = `body {
  background-color: var(--pf-color-background);
  color: var(--pf-color-text);
  font-family: var(--pf-font-family);
  font-size: var(--pf-font-size-base);
}

h1, h2, h3, h4, h5, h6 {
  font-family: var(--pf-font-heading);
  color: var(--pf-color-text);
}

a {
  color: var(--pf-color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

.pf-btn {
  background-color: var(--pf-color-primary);
  color: var(--pf-color-background);
  border: none;
  border-radius: 4px;
  padding: var(--pf-space-sm) var(--pf-space-md);
  cursor: pointer;
}

.pf-btn:hover {
  background-color: var(--pf-color-secondary);
}

.pf-surface {
  background-color: var(--pf-color-surface);
  border: 1px solid var(--pf-color-border);
  border-radius: 8px;
  padding: var(--pf-space-md);
  box-shadow: var(--pf-shadow-sm);
}

.pf-muted {
  color: var(--pf-color-text-secondary);
}

.pf-success { color: var(--pf-color-success); }
.pf-warning { color: var(--pf-color-warning); }
.pf-error { color: var(--pf-color-error); }
.pf-info { color: var(--pf-color-info); }
`
