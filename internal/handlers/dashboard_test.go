package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDashboardRendersWorkspace(t *testing.T) {
	f := newInventoryFixture(t)

	req := f.request(t, http.MethodGet, "/app", nil)
	w := httptest.NewRecorder()
	Dashboard(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<html") {
		t.Fatal("expected full page render for non-HTMX request")
	}
	if !strings.Contains(body, "Gulfline Fuels") {
		t.Fatal("expected tenant name in workspace")
	}
	if !strings.Contains(body, "Port Arthur") {
		t.Fatal("expected seeded tank terminal in workspace")
	}
	if !strings.Contains(body, `data-theme="derrick_night"`) {
		t.Fatal("expected default theme on page shell")
	}
}

func TestDashboardRendersPartialForHTMX(t *testing.T) {
	f := newInventoryFixture(t)

	req := f.request(t, http.MethodGet, "/app", nil)
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	Dashboard(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("expected partial render without page shell")
	}
	if !strings.Contains(body, "Port Arthur") {
		t.Fatal("expected tank rows in partial")
	}
}

func TestDashboardDegradesWithoutTenant(t *testing.T) {
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req = authenticateRequest(t, sm, req, 99)
	w := httptest.NewRecorder()
	Dashboard(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with empty snapshot, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No storage tanks registered yet.") {
		t.Fatal("expected empty state message")
	}
}

func TestDashboardMethodCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/app", nil)
	w := httptest.NewRecorder()
	Dashboard(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
