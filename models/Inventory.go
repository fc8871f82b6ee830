package models

import (
	"time"

	"gorm.io/gorm"
)

// StorageTank tracks a single tank at one of a tenant's terminals.
type StorageTank struct {
	gorm.Model
	TenantID       uint    `gorm:"not null;index" json:"tenant_id"`
	Terminal       string  `gorm:"not null" json:"terminal"`
	Product        string  `gorm:"not null" json:"product"` // diesel, gasoline, jet-a, lubricant
	CapacityLiters float64 `gorm:"not null" json:"capacity_liters"`
	LevelLiters    float64 `gorm:"not null" json:"level_liters"`
	ReorderLiters  float64 `json:"reorder_liters"`
}

// FillPercent reports the current fill level as a 0-100 percentage.
func (t StorageTank) FillPercent() float64 {
	if t.CapacityLiters <= 0 {
		return 0
	}
	pct := t.LevelLiters / t.CapacityLiters * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BelowReorder reports whether the tank has dropped under its reorder point.
func (t StorageTank) BelowReorder() bool {
	return t.ReorderLiters > 0 && t.LevelLiters < t.ReorderLiters
}

// Delivery records a scheduled or completed fuel delivery against a tank.
type Delivery struct {
	gorm.Model
	TenantID     uint         `gorm:"not null;index" json:"tenant_id"`
	TankID       uint         `gorm:"not null;index" json:"tank_id"`
	Tank         *StorageTank `gorm:"foreignKey:TankID" json:"tank,omitempty"`
	VolumeLiters float64      `gorm:"not null" json:"volume_liters"`
	Carrier      string       `json:"carrier"`
	Status       string       `gorm:"type:varchar(16);default:scheduled" json:"status"` // scheduled, in_transit, delivered, cancelled
	ScheduledAt  time.Time    `json:"scheduled_at"`
	DeliveredAt  *time.Time   `json:"delivered_at,omitempty"`
}
