package theme

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Override carries a tenant's branding on top of a curated base preset. Only
// non-empty fields take effect; everything else inherits from the base.
type Override struct {
	Name        string            `json:"name,omitempty"`
	Colors      ColorScheme       `json:"colors,omitempty"`
	FontFamily  string            `json:"fontFamily,omitempty"`
	HeadingFont string            `json:"headingFont,omitempty"`
	FontSizes   map[string]string `json:"fontSizes,omitempty"`
}

// Empty reports whether the override changes nothing.
func (o Override) Empty() bool {
	return o.Name == "" &&
		o.Colors == (ColorScheme{}) &&
		o.FontFamily == "" &&
		o.HeadingFont == "" &&
		len(o.FontSizes) == 0
}

// Merge applies an override to a base preset with explicit field-by-field
// precedence: a non-empty override value wins, an empty one inherits the base.
// The result is a new preset stamped with a fresh identifier; the inputs are
// not modified.
func Merge(base Preset, override Override) Preset {
	merged := clonePreset(base)

	if override.Empty() {
		return merged
	}

	merged.ID = uuid.NewString()
	merged.Category = "tenant"
	merged.Metadata.Version = base.Metadata.Version
	merged.Metadata.UpdatedAt = time.Now().UTC()
	if override.Name != "" {
		merged.Name = override.Name
	}

	if merged.Colors != nil {
		merged.Colors.Primary = pick(override.Colors.Primary, merged.Colors.Primary)
		merged.Colors.Secondary = pick(override.Colors.Secondary, merged.Colors.Secondary)
		merged.Colors.Accent = pick(override.Colors.Accent, merged.Colors.Accent)
		merged.Colors.Background = pick(override.Colors.Background, merged.Colors.Background)
		merged.Colors.Surface = pick(override.Colors.Surface, merged.Colors.Surface)
		merged.Colors.Text = pick(override.Colors.Text, merged.Colors.Text)
		merged.Colors.TextSecondary = pick(override.Colors.TextSecondary, merged.Colors.TextSecondary)
		merged.Colors.Border = pick(override.Colors.Border, merged.Colors.Border)
		merged.Colors.Success = pick(override.Colors.Success, merged.Colors.Success)
		merged.Colors.Warning = pick(override.Colors.Warning, merged.Colors.Warning)
		merged.Colors.Error = pick(override.Colors.Error, merged.Colors.Error)
		merged.Colors.Info = pick(override.Colors.Info, merged.Colors.Info)
	}

	if merged.Typography != nil {
		merged.Typography.FontFamily = pick(override.FontFamily, merged.Typography.FontFamily)
		merged.Typography.HeadingFont = pick(override.HeadingFont, merged.Typography.HeadingFont)
		if len(override.FontSizes) > 0 {
			if merged.Typography.FontSizes == nil {
				merged.Typography.FontSizes = map[string]string{}
			}
			for token, size := range override.FontSizes {
				if strings.TrimSpace(size) != "" {
					merged.Typography.FontSizes[token] = size
				}
			}
		}
	}

	return merged
}

func pick(override, base string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return base
}
