package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	applog "petroflow/internal/log"
	"petroflow/models"
)

type storageTankResponse struct {
	ID             uint      `json:"id"`
	Terminal       string    `json:"terminal"`
	Product        string    `json:"product"`
	CapacityLiters float64   `json:"capacity_liters"`
	LevelLiters    float64   `json:"level_liters"`
	ReorderLiters  float64   `json:"reorder_liters"`
	FillPercent    float64   `json:"fill_percent"`
	BelowReorder   bool      `json:"below_reorder"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type tankLevelUpdateRequest struct {
	LevelLiters float64 `json:"level_liters"`
}

type deliveryRequest struct {
	TankID       uint    `json:"tank_id"`
	VolumeLiters float64 `json:"volume_liters"`
	Carrier      string  `json:"carrier"`
	ScheduledAt  string  `json:"scheduled_at"`
}

type deliveryResponse struct {
	ID           uint       `json:"id"`
	TankID       uint       `json:"tank_id"`
	VolumeLiters float64    `json:"volume_liters"`
	Carrier      string     `json:"carrier"`
	Status       string     `json:"status"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

// TankResource handles REST-style interactions for a tenant's storage tanks.
func TankResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "tank request without database")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	tenantRecord, err := requireTenant(w, r)
	if err != nil {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/app/api/tanks")
	path = strings.Trim(path, "/")

	if path == "" {
		if r.Method == http.MethodGet {
			listTanks(w, r, tenantRecord.ID)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	idValue, err := strconv.ParseUint(path, 10, 64)
	if err != nil {
		applog.Debug(r.Context(), "invalid tank identifier", "identifier", path, "error", err)
		http.NotFound(w, r)
		return
	}
	tankID := uint(idValue)

	switch r.Method {
	case http.MethodGet:
		showTank(w, r, tenantRecord.ID, tankID)
	case http.MethodPut:
		updateTankLevel(w, r, tenantRecord.ID, tankID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// DeliveryResource handles listing and scheduling fuel deliveries.
func DeliveryResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "delivery request without database")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	tenantRecord, err := requireTenant(w, r)
	if err != nil {
		return
	}

	switch r.Method {
	case http.MethodGet:
		listDeliveries(w, r, tenantRecord.ID)
	case http.MethodPost:
		scheduleDelivery(w, r, tenantRecord.ID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func requireTenant(w http.ResponseWriter, r *http.Request) (*models.Tenant, error) {
	if _, ok := currentUserID(r); !ok {
		applog.Debug(r.Context(), "inventory request missing authenticated user")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, errors.New("unauthorized")
	}

	record, err := currentTenant(r)
	if err != nil {
		applog.Debug(r.Context(), "inventory request without tenant", "error", err)
		writeJSONError(w, http.StatusForbidden, "no tenant attached to account")
		return nil, err
	}
	return record, nil
}

func listTanks(w http.ResponseWriter, r *http.Request, tenantID uint) {
	ctx := r.Context()

	query := database.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("terminal asc, product asc")
	if terminal := strings.TrimSpace(r.URL.Query().Get("terminal")); terminal != "" {
		query = query.Where("terminal = ?", terminal)
	}
	if product := strings.TrimSpace(r.URL.Query().Get("product")); product != "" {
		query = query.Where("product = ?", product)
	}

	var tanks []models.StorageTank
	if err := query.Find(&tanks).Error; err != nil {
		applog.Error(ctx, "failed to list storage tanks", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load storage tanks")
		return
	}

	responses := make([]storageTankResponse, 0, len(tanks))
	for _, tank := range tanks {
		responses = append(responses, projectTank(tank))
	}
	writeJSON(w, http.StatusOK, responses)
}

func showTank(w http.ResponseWriter, r *http.Request, tenantID, tankID uint) {
	tank, ok := findTank(w, r, tenantID, tankID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, projectTank(tank))
}

func updateTankLevel(w http.ResponseWriter, r *http.Request, tenantID, tankID uint) {
	ctx := r.Context()

	tank, ok := findTank(w, r, tenantID, tankID)
	if !ok {
		return
	}

	var req tankLevelUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.LevelLiters < 0 || req.LevelLiters > tank.CapacityLiters {
		writeJSONError(w, http.StatusBadRequest, "level must be between zero and tank capacity")
		return
	}

	if err := database.WithContext(ctx).
		Model(&tank).
		Update("level_liters", req.LevelLiters).Error; err != nil {
		applog.Error(ctx, "failed to update tank level", "tankID", tankID, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to update tank level")
		return
	}

	tank.LevelLiters = req.LevelLiters
	if tank.BelowReorder() {
		applog.Warn(ctx, "tank below reorder point", "tankID", tank.ID, "terminal", tank.Terminal, "product", tank.Product)
	}
	writeJSON(w, http.StatusOK, projectTank(tank))
}

func findTank(w http.ResponseWriter, r *http.Request, tenantID, tankID uint) (models.StorageTank, bool) {
	ctx := r.Context()

	var tank models.StorageTank
	err := database.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&tank, tankID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
		} else {
			applog.Error(ctx, "failed to load storage tank", "tankID", tankID, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load storage tank")
		}
		return models.StorageTank{}, false
	}
	return tank, true
}

func listDeliveries(w http.ResponseWriter, r *http.Request, tenantID uint) {
	ctx := r.Context()

	var deliveries []models.Delivery
	if err := database.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("scheduled_at desc").
		Find(&deliveries).Error; err != nil {
		applog.Error(ctx, "failed to list deliveries", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load deliveries")
		return
	}

	responses := make([]deliveryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		responses = append(responses, projectDelivery(delivery))
	}
	writeJSON(w, http.StatusOK, responses)
}

func scheduleDelivery(w http.ResponseWriter, r *http.Request, tenantID uint) {
	ctx := r.Context()

	var req deliveryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.TankID == 0 || req.VolumeLiters <= 0 {
		writeJSONError(w, http.StatusBadRequest, "tank_id and a positive volume_liters are required")
		return
	}

	scheduledAt := time.Now().UTC()
	if strings.TrimSpace(req.ScheduledAt) != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "scheduled_at must be RFC3339")
			return
		}
		scheduledAt = parsed.UTC()
	}

	if _, ok := findTank(w, r, tenantID, req.TankID); !ok {
		return
	}

	delivery := models.Delivery{
		TenantID:     tenantID,
		TankID:       req.TankID,
		VolumeLiters: req.VolumeLiters,
		Carrier:      strings.TrimSpace(req.Carrier),
		Status:       "scheduled",
		ScheduledAt:  scheduledAt,
	}
	if err := database.WithContext(ctx).Create(&delivery).Error; err != nil {
		applog.Error(ctx, "failed to schedule delivery", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to schedule delivery")
		return
	}

	writeJSON(w, http.StatusCreated, projectDelivery(delivery))
}

func projectTank(tank models.StorageTank) storageTankResponse {
	return storageTankResponse{
		ID:             tank.ID,
		Terminal:       tank.Terminal,
		Product:        tank.Product,
		CapacityLiters: tank.CapacityLiters,
		LevelLiters:    tank.LevelLiters,
		ReorderLiters:  tank.ReorderLiters,
		FillPercent:    tank.FillPercent(),
		BelowReorder:   tank.BelowReorder(),
		UpdatedAt:      tank.UpdatedAt,
	}
}

func projectDelivery(delivery models.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:           delivery.ID,
		TankID:       delivery.TankID,
		VolumeLiters: delivery.VolumeLiters,
		Carrier:      delivery.Carrier,
		Status:       delivery.Status,
		ScheduledAt:  delivery.ScheduledAt,
		DeliveredAt:  delivery.DeliveredAt,
	}
}
