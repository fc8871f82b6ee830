package pages

import (
	"sort"

	"petroflow/models"
)

// InventorySnapshot aggregates the relational data required to render the
// distribution workspace.
type InventorySnapshot struct {
	TenantName string
	Tanks      []models.StorageTank
	Deliveries []models.Delivery
	Theme      string
	UserID     uint
}

// NewInventorySnapshot normalises and sorts the data required by the workspace views.
func NewInventorySnapshot(tenantName string, tanks []models.StorageTank, deliveries []models.Delivery, theme string, userID uint) InventorySnapshot {
	sort.SliceStable(tanks, func(i, j int) bool {
		if tanks[i].Terminal == tanks[j].Terminal {
			return tanks[i].Product < tanks[j].Product
		}
		return tanks[i].Terminal < tanks[j].Terminal
	})

	sort.SliceStable(deliveries, func(i, j int) bool {
		return deliveries[i].ScheduledAt.After(deliveries[j].ScheduledAt)
	})

	return InventorySnapshot{
		TenantName: tenantName,
		Tanks:      tanks,
		Deliveries: deliveries,
		Theme:      models.NormalizeTheme(theme),
		UserID:     userID,
	}
}

// EmptyInventorySnapshot returns a zero-value snapshot to simplify call sites when no data is available.
func EmptyInventorySnapshot(theme string) InventorySnapshot {
	return InventorySnapshot{Theme: models.NormalizeTheme(theme)}
}

// TanksBelowReorder counts the tanks that have dropped under their reorder point.
func (s InventorySnapshot) TanksBelowReorder() int {
	count := 0
	for _, tank := range s.Tanks {
		if tank.BelowReorder() {
			count++
		}
	}
	return count
}

// TotalCapacityLiters sums the capacity across every tank in the snapshot.
func (s InventorySnapshot) TotalCapacityLiters() float64 {
	total := 0.0
	for _, tank := range s.Tanks {
		total += tank.CapacityLiters
	}
	return total
}

// TotalLevelLiters sums the current product on hand across every tank.
func (s InventorySnapshot) TotalLevelLiters() float64 {
	total := 0.0
	for _, tank := range s.Tanks {
		total += tank.LevelLiters
	}
	return total
}

// OpenDeliveries counts deliveries that have not yet arrived.
func (s InventorySnapshot) OpenDeliveries() int {
	count := 0
	for _, delivery := range s.Deliveries {
		if delivery.Status == "scheduled" || delivery.Status == "in_transit" {
			count++
		}
	}
	return count
}

// TankLookup builds a map of tank IDs to display names to speed up template rendering.
func (s InventorySnapshot) TankLookup() map[uint]string {
	lookup := make(map[uint]string, len(s.Tanks))
	for _, tank := range s.Tanks {
		lookup[tank.ID] = tank.Terminal + " " + ProductLabel(tank.Product)
	}
	return lookup
}
