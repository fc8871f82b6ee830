package layout

import (
	"sort"

	"petroflow/models"
)

// ThemeDefinition describes a visual theme that can be applied to the workspace layout.
type ThemeDefinition struct {
	ID          string
	Label       string
	Description string
}

var themeRegistry = map[string]ThemeDefinition{
	models.ThemeDerrickNight: {
		ID:          models.ThemeDerrickNight,
		Label:       "Derrick Night",
		Description: "Dark control-room palette with sky blue accents.",
	},
	models.ThemeRefineryDawn: {
		ID:          models.ThemeRefineryDawn,
		Label:       "Refinery Dawn",
		Description: "Bright daylight canvas with slate typography.",
	},
	models.ThemeGulfStream: {
		ID:          models.ThemeGulfStream,
		Label:       "Gulf Stream",
		Description: "Deep ocean blues tuned for long dispatch shifts.",
	},
}

// ThemeByID returns a definition for the provided identifier, falling back to the default theme.
func ThemeByID(id string) ThemeDefinition {
	if def, ok := themeRegistry[id]; ok {
		return def
	}
	return themeRegistry[models.DefaultTheme]
}

// ThemeOptions exposes all theme definitions sorted by label for form rendering.
func ThemeOptions() []ThemeDefinition {
	options := make([]ThemeDefinition, 0, len(themeRegistry))
	for _, def := range themeRegistry {
		options = append(options, def)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
