package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"

	applog "petroflow/internal/log"
	"petroflow/internal/views/pages"
	"petroflow/models"
)

// Dashboard renders the distribution workspace once a user is authenticated.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snapshot := loadInventorySnapshot(r)

	var component templpkg.Component
	if isHTMX(r) {
		component = pages.DashboardPartial(snapshot)
	} else {
		component = pages.Dashboard(snapshot)
	}

	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// loadInventorySnapshot gathers the tenant's tanks and deliveries. Missing
// dependencies degrade to an empty snapshot so the shell still renders.
func loadInventorySnapshot(r *http.Request) pages.InventorySnapshot {
	ctx := r.Context()
	activeTheme := loadCurrentUserTheme(r)
	userID, _ := currentUserID(r)

	if database == nil {
		return pages.EmptyInventorySnapshot(activeTheme)
	}

	record, err := currentTenant(r)
	if err != nil {
		applog.Debug(ctx, "no tenant for inventory snapshot", "error", err)
		return pages.EmptyInventorySnapshot(activeTheme)
	}

	var tanks []models.StorageTank
	if err := database.WithContext(ctx).
		Where("tenant_id = ?", record.ID).
		Find(&tanks).Error; err != nil {
		applog.Error(ctx, "failed to load storage tanks", "error", err)
		return pages.EmptyInventorySnapshot(activeTheme)
	}

	var deliveries []models.Delivery
	if err := database.WithContext(ctx).
		Preload("Tank").
		Where("tenant_id = ?", record.ID).
		Find(&deliveries).Error; err != nil {
		applog.Error(ctx, "failed to load deliveries", "error", err)
		deliveries = nil
	}

	return pages.NewInventorySnapshot(record.Name, tanks, deliveries, activeTheme, userID)
}
