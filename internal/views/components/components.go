// Package components holds small reusable view fragments shared by the
// workspace pages.
package components

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// StatCard renders a single headline metric with its trend line.
func StatCard(label, value, delta, caption string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="pf-surface pf-stat">`+
				`<span class="pf-muted">`+html.EscapeString(label)+`</span>`+
				`<strong>`+html.EscapeString(value)+`</strong>`+
				`<span class="pf-stat-delta">`+html.EscapeString(delta)+`</span>`+
				`<span class="pf-muted">`+html.EscapeString(caption)+`</span>`+
				`</div>`)
		return err
	})
}

// ActivityEntry is one row in the delivery activity table.
type ActivityEntry struct {
	Name      string
	Reference string
	Quantity  string
	Progress  string
	UpdatedAt string
	Status    string
}

// ActivityTable renders recent delivery activity.
func ActivityTable(entries []ActivityEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="pf-surface pf-table"><thead><tr>`+
			`<th>Delivery</th><th>Reference</th><th>Volume</th><th>Progress</th><th>Updated</th><th>Status</th>`+
			`</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := io.WriteString(w, `<tr>`+
				`<td>`+html.EscapeString(entry.Name)+`</td>`+
				`<td>`+html.EscapeString(entry.Reference)+`</td>`+
				`<td>`+html.EscapeString(entry.Quantity)+`</td>`+
				`<td>`+html.EscapeString(entry.Progress)+`</td>`+
				`<td>`+html.EscapeString(entry.UpdatedAt)+`</td>`+
				`<td>`+html.EscapeString(entry.Status)+`</td>`+
				`</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// SidebarLink describes one navigation entry in the workspace sidebar.
type SidebarLink struct {
	Label   string
	Path    string
	Section string
}

// SidebarData drives the sidebar navigation component.
type SidebarData struct {
	Active   string
	Features []SidebarLink
}

// Sidebar renders the workspace navigation rail.
func Sidebar(data SidebarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<aside class="pf-sidebar"><nav>`); err != nil {
			return err
		}
		for _, link := range data.Features {
			if _, err := io.WriteString(w, `<a href="`+html.EscapeString(link.Path)+
				`" data-state="`+linkState(link.Section, data.Active)+
				`" hx-boost="true">`+html.EscapeString(link.Label)+`</a>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav></aside>`)
		return err
	})
}

func linkState(section, active string) string {
	if section == active {
		return "active"
	}
	return "inactive"
}
