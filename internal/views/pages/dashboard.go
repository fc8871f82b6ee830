package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"petroflow/internal/views/components"
	"petroflow/internal/views/layout"
)

// Dashboard renders the full workspace page including the document shell.
func Dashboard(snapshot InventorySnapshot) templ.Component {
	return layout.Layout(
		"PetroFlow Dispatch",
		workspaceSidebar("dashboard"),
		DashboardPartial(snapshot),
		true,
		layout.ThemeByID(snapshot.Theme),
	)
}

// DashboardPartial renders only the workspace content, used for HTMX swaps.
func DashboardPartial(snapshot InventorySnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := snapshot.TenantName
		if title == "" {
			title = "Distribution overview"
		}
		if _, err := io.WriteString(w, `<section id="workspace" class="pf-workspace"><h1>`+html.EscapeString(title)+`</h1>`); err != nil {
			return err
		}

		if err := statRow(snapshot).Render(ctx, w); err != nil {
			return err
		}
		if err := tankTable(snapshot).Render(ctx, w); err != nil {
			return err
		}
		if err := deliveryActivity(snapshot).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func statRow(snapshot InventorySnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="pf-stat-row">`); err != nil {
			return err
		}

		cards := []templ.Component{
			components.StatCard("Product on hand", FormatLiters(snapshot.TotalLevelLiters()), FormatPercent(fillRatio(snapshot)), "Of total capacity"),
			components.StatCard("Tanks below reorder", fmt.Sprintf("%d", snapshot.TanksBelowReorder()), "", "Need replenishment"),
			components.StatCard("Open deliveries", fmt.Sprintf("%d", snapshot.OpenDeliveries()), "", "Scheduled or in transit"),
		}
		for _, card := range cards {
			if err := card.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func tankTable(snapshot InventorySnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(snapshot.Tanks) == 0 {
			_, err := io.WriteString(w, `<p class="pf-muted">No storage tanks registered yet.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="pf-surface pf-table"><thead><tr>`+
			`<th>Terminal</th><th>Product</th><th>Level</th><th>Capacity</th><th>Fill</th><th>Reorder</th>`+
			`</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, tank := range snapshot.Tanks {
			reorder := ""
			if tank.BelowReorder() {
				reorder = `<span class="pf-warning">Below reorder</span>`
			}
			if _, err := io.WriteString(w, `<tr>`+
				`<td>`+html.EscapeString(tank.Terminal)+`</td>`+
				`<td>`+html.EscapeString(ProductLabel(tank.Product))+`</td>`+
				`<td>`+FormatLiters(tank.LevelLiters)+`</td>`+
				`<td>`+FormatLiters(tank.CapacityLiters)+`</td>`+
				`<td>`+FormatPercent(tank.FillPercent())+`</td>`+
				`<td>`+reorder+`</td>`+
				`</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func deliveryActivity(snapshot InventorySnapshot) templ.Component {
	lookup := snapshot.TankLookup()
	entries := make([]components.ActivityEntry, 0, len(snapshot.Deliveries))
	for _, delivery := range snapshot.Deliveries {
		updated := delivery.ScheduledAt.Format("02 Jan 2006")
		if delivery.DeliveredAt != nil {
			updated = delivery.DeliveredAt.Format("02 Jan 2006")
		}
		entries = append(entries, components.ActivityEntry{
			Name:      DefaultDash(lookup[delivery.TankID]),
			Reference: fmt.Sprintf("DLV-%d", delivery.ID),
			Quantity:  FormatLiters(delivery.VolumeLiters),
			Progress:  DefaultDash(delivery.Carrier),
			UpdatedAt: updated,
			Status:    DeliveryStatusLabel(delivery.Status),
		})
	}
	return components.ActivityTable(entries)
}

func workspaceSidebar(active string) templ.Component {
	return components.Sidebar(components.SidebarData{
		Active: active,
		Features: []components.SidebarLink{
			{Label: "Dashboard", Path: "/app", Section: "dashboard"},
			{Label: "Themes", Path: "/app/themes", Section: "themes"},
			{Label: "Preferences", Path: "/app/preferences", Section: "preferences"},
		},
	})
}

func fillRatio(snapshot InventorySnapshot) float64 {
	capacity := snapshot.TotalCapacityLiters()
	if capacity <= 0 {
		return 0
	}
	return snapshot.TotalLevelLiters() / capacity * 100
}
