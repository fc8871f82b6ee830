package components

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLinkState(t *testing.T) {
	if got := linkState("inventory", "inventory"); got != "active" {
		t.Fatalf("expected active state when sections match, got %q", got)
	}
	if got := linkState("themes", "inventory"); got != "inactive" {
		t.Fatalf("expected inactive state when sections differ, got %q", got)
	}
}

func TestStatCardRendersValues(t *testing.T) {
	var buf bytes.Buffer
	err := StatCard("Tanks below reorder", "3", "+1", "Since yesterday").Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("render stat card: %v", err)
	}
	output := buf.String()
	for _, token := range []string{"Tanks below reorder", "3", "+1", "Since yesterday"} {
		if !strings.Contains(output, token) {
			t.Fatalf("expected output to contain %q: %s", token, output)
		}
	}
}

func TestActivityTableRendersEntries(t *testing.T) {
	entries := []ActivityEntry{{
		Name:      "Port Arthur diesel",
		Reference: "DLV-104",
		Quantity:  "250,000 L",
		Progress:  "70%",
		UpdatedAt: "today",
		Status:    "In transit",
	}}
	var buf bytes.Buffer
	if err := ActivityTable(entries).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render activity table: %v", err)
	}
	if !strings.Contains(buf.String(), "Port Arthur diesel") {
		t.Fatalf("expected rendered table to include entry name")
	}
}

func TestSidebarRendersActiveSection(t *testing.T) {
	data := SidebarData{
		Active: "inventory",
		Features: []SidebarLink{{
			Label:   "Inventory",
			Path:    "/app/inventory",
			Section: "inventory",
		}},
	}
	var buf bytes.Buffer
	if err := Sidebar(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render sidebar: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "data-state=\"active\"") {
		t.Fatalf("expected active data-state attribute in sidebar output: %s", out)
	}
}
