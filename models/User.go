package models

import "gorm.io/gorm"

// User represents an operator account that can authenticate with the platform.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	TenantID     *uint   `gorm:"index"`
	Tenant       *Tenant `gorm:"foreignKey:TenantID"`
	Theme        string  `gorm:"type:varchar(32);default:derrick_night"`
}
