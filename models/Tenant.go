package models

import (
	"gorm.io/gorm"
)

// Tenant represents a distribution company served by the platform. Each tenant
// carries its own branding on top of a curated base preset.
type Tenant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	BasePreset  string `gorm:"type:varchar(64);default:derrick_night" json:"base_preset"`
	BrandColors string `gorm:"type:text" json:"brand_colors"` // JSON role->color overrides
	BrandFonts  string `gorm:"type:text" json:"brand_fonts"`  // JSON typography overrides
	LogoURL     string `json:"logo_url"`
	Users       []User `gorm:"foreignKey:TenantID" json:"users,omitempty"`
}
