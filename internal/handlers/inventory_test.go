package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"petroflow/models"
)

type inventoryFixture struct {
	db     *gorm.DB
	sm     *scs.SessionManager
	tenant models.Tenant
	user   models.User
	tanks  []models.StorageTank
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()

	db, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	f := &inventoryFixture{db: db, sm: sm}

	f.tenant = models.Tenant{Name: "Gulfline Fuels", Slug: "gulfline", BasePreset: models.ThemeDerrickNight}
	if err := db.Create(&f.tenant).Error; err != nil {
		t.Fatalf("failed to seed tenant: %v", err)
	}
	f.user = models.User{Email: "ops@gulfline.example", PasswordHash: "hash", TenantID: &f.tenant.ID}
	if err := db.Create(&f.user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	f.tanks = []models.StorageTank{
		{TenantID: f.tenant.ID, Terminal: "Port Arthur", Product: "diesel", CapacityLiters: 1_200_000, LevelLiters: 840_000, ReorderLiters: 300_000},
		{TenantID: f.tenant.ID, Terminal: "Port Arthur", Product: "gasoline", CapacityLiters: 900_000, LevelLiters: 180_000, ReorderLiters: 250_000},
		{TenantID: f.tenant.ID, Terminal: "Baton Rouge", Product: "jet-a", CapacityLiters: 600_000, LevelLiters: 420_000, ReorderLiters: 150_000},
	}
	for i := range f.tanks {
		if err := db.Create(&f.tanks[i]).Error; err != nil {
			t.Fatalf("failed to seed tank: %v", err)
		}
	}

	return f
}

func (f *inventoryFixture) request(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return authenticateRequest(t, f.sm, req, f.user.ID)
}

func TestTankResourceRequiresAuthentication(t *testing.T) {
	_, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	req := sessionRequest(t, sm, httptest.NewRequest(http.MethodGet, "/app/api/tanks", nil))
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestTankResourceRequiresTenant(t *testing.T) {
	db, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	user := models.User{Email: "solo@example.com", PasswordHash: "hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/app/api/tanks", nil)
	req = authenticateRequest(t, sm, req, user.ID)
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user without tenant, got %d", w.Code)
	}
}

func TestListTanks(t *testing.T) {
	f := newInventoryFixture(t)

	req := f.request(t, http.MethodGet, "/app/api/tanks", nil)
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var tanks []storageTankResponse
	if err := json.Unmarshal(w.Body.Bytes(), &tanks); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tanks) != 3 {
		t.Fatalf("expected 3 tanks, got %d", len(tanks))
	}
	if tanks[0].Terminal != "Baton Rouge" {
		t.Fatalf("expected terminal ordering, got %q first", tanks[0].Terminal)
	}
	if tanks[1].Product != "diesel" || tanks[2].Product != "gasoline" {
		t.Fatalf("expected product ordering within terminal, got %q then %q", tanks[1].Product, tanks[2].Product)
	}
	if !tanks[2].BelowReorder {
		t.Fatal("expected gasoline tank flagged below reorder")
	}
}

func TestListTanksFilters(t *testing.T) {
	f := newInventoryFixture(t)

	req := f.request(t, http.MethodGet, "/app/api/tanks?terminal=Port+Arthur&product=diesel", nil)
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var tanks []storageTankResponse
	if err := json.Unmarshal(w.Body.Bytes(), &tanks); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tanks) != 1 || tanks[0].Product != "diesel" {
		t.Fatalf("expected the single diesel tank, got %+v", tanks)
	}
}

func TestShowTankScopedToTenant(t *testing.T) {
	f := newInventoryFixture(t)

	other := models.Tenant{Name: "Rival Distribution", Slug: "rival"}
	if err := f.db.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed rival tenant: %v", err)
	}
	foreign := models.StorageTank{TenantID: other.ID, Terminal: "Houston", Product: "diesel", CapacityLiters: 500_000, LevelLiters: 100_000}
	if err := f.db.Create(&foreign).Error; err != nil {
		t.Fatalf("failed to seed foreign tank: %v", err)
	}

	req := f.request(t, http.MethodGet, fmt.Sprintf("/app/api/tanks/%d", f.tanks[0].ID), nil)
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for own tank, got %d", w.Code)
	}

	req = f.request(t, http.MethodGet, fmt.Sprintf("/app/api/tanks/%d", foreign.ID), nil)
	w = httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another tenant's tank, got %d", w.Code)
	}
}

func TestUpdateTankLevel(t *testing.T) {
	f := newInventoryFixture(t)
	tank := f.tanks[0]

	body, _ := json.Marshal(tankLevelUpdateRequest{LevelLiters: 250_000})
	req := f.request(t, http.MethodPut, fmt.Sprintf("/app/api/tanks/%d", tank.ID), body)
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response storageTankResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.LevelLiters != 250_000 {
		t.Fatalf("expected level 250000, got %f", response.LevelLiters)
	}
	if !response.BelowReorder {
		t.Fatal("expected below reorder flag after drop under reorder point")
	}

	var persisted models.StorageTank
	if err := f.db.First(&persisted, tank.ID).Error; err != nil {
		t.Fatalf("failed to reload tank: %v", err)
	}
	if persisted.LevelLiters != 250_000 {
		t.Fatalf("expected persisted level 250000, got %f", persisted.LevelLiters)
	}
}

func TestUpdateTankLevelRejectsOutOfRange(t *testing.T) {
	f := newInventoryFixture(t)
	tank := f.tanks[0]

	tests := []struct {
		name  string
		level float64
	}{
		{"negative", -1},
		{"above capacity", tank.CapacityLiters + 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tankLevelUpdateRequest{LevelLiters: tt.level})
			req := f.request(t, http.MethodPut, fmt.Sprintf("/app/api/tanks/%d", tank.ID), body)
			w := httptest.NewRecorder()
			TankResource(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestScheduleDelivery(t *testing.T) {
	f := newInventoryFixture(t)
	tank := f.tanks[1]

	body, _ := json.Marshal(deliveryRequest{
		TankID:       tank.ID,
		VolumeLiters: 400_000,
		Carrier:      "  Bayou Transport  ",
		ScheduledAt:  "2026-09-02T08:00:00Z",
	})
	req := f.request(t, http.MethodPost, "/app/api/deliveries", body)
	w := httptest.NewRecorder()
	DeliveryResource(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var response deliveryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != "scheduled" {
		t.Fatalf("expected scheduled status, got %q", response.Status)
	}
	if response.Carrier != "Bayou Transport" {
		t.Fatalf("expected trimmed carrier, got %q", response.Carrier)
	}
	want := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	if !response.ScheduledAt.Equal(want) {
		t.Fatalf("expected scheduled time %v, got %v", want, response.ScheduledAt)
	}
}

func TestScheduleDeliveryValidation(t *testing.T) {
	f := newInventoryFixture(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing tank", `{"volume_liters":1000}`, http.StatusBadRequest},
		{"non-positive volume", fmt.Sprintf(`{"tank_id":%d,"volume_liters":0}`, f.tanks[0].ID), http.StatusBadRequest},
		{"bad timestamp", fmt.Sprintf(`{"tank_id":%d,"volume_liters":1000,"scheduled_at":"tomorrow"}`, f.tanks[0].ID), http.StatusBadRequest},
		{"unknown tank", `{"tank_id":9999,"volume_liters":1000}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := f.request(t, http.MethodPost, "/app/api/deliveries", []byte(tt.body))
			w := httptest.NewRecorder()
			DeliveryResource(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestListDeliveriesNewestFirst(t *testing.T) {
	f := newInventoryFixture(t)

	older := models.Delivery{TenantID: f.tenant.ID, TankID: f.tanks[0].ID, VolumeLiters: 100_000, Status: "delivered", ScheduledAt: time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)}
	newer := models.Delivery{TenantID: f.tenant.ID, TankID: f.tanks[1].ID, VolumeLiters: 200_000, Status: "in_transit", ScheduledAt: time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)}
	for _, delivery := range []*models.Delivery{&older, &newer} {
		if err := f.db.Create(delivery).Error; err != nil {
			t.Fatalf("failed to seed delivery: %v", err)
		}
	}

	req := f.request(t, http.MethodGet, "/app/api/deliveries", nil)
	w := httptest.NewRecorder()
	DeliveryResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var deliveries []deliveryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &deliveries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(deliveries) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(deliveries))
	}
	if deliveries[0].Status != "in_transit" || deliveries[1].Status != "delivered" {
		t.Fatalf("expected newest first ordering, got %q then %q", deliveries[0].Status, deliveries[1].Status)
	}
}

func TestTankResourceRejectsUnknownIdentifier(t *testing.T) {
	f := newInventoryFixture(t)

	req := f.request(t, http.MethodGet, "/app/api/tanks/not-a-number", nil)
	w := httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric identifier, got %d", w.Code)
	}

	req = f.request(t, http.MethodDelete, "/app/api/tanks", nil)
	w = httptest.NewRecorder()
	TankResource(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
