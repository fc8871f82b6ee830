package models

import (
	"gorm.io/gorm"
)

// ThemePreset stores a serialized theme preset. Curated presets ship with the
// binary; tenant customizations are persisted here with a fresh identifier and
// are only ever swapped for another preset, never deleted at runtime.
type ThemePreset struct {
	gorm.Model
	PresetID string `gorm:"uniqueIndex;not null;type:varchar(64)" json:"preset_id"`
	TenantID *uint  `gorm:"index" json:"tenant_id,omitempty"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"type:varchar(32)" json:"category"`
	Document string `gorm:"type:text;not null" json:"document"` // exported preset JSON
	Source   string `gorm:"type:varchar(32)" json:"source"`     // curated, tenant, import
}
