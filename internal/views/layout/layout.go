package layout

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Layout renders the application shell: document head, theme stylesheet link
// and the sidebar plus main content slots.
func Layout(title string, sidebar, content templ.Component, showSidebar bool, theme ThemeDefinition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\" data-theme=\""+html.EscapeString(theme.ID)+"\"><head>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<title>"+html.EscapeString(title)+"</title>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<link rel=\"stylesheet\" href=\"/assets/theme.css\">"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head><body><div class=\""+bodyWrapperClass(showSidebar)+"\">"); err != nil {
			return err
		}

		if showSidebar && sidebar != nil {
			if err := sidebar.Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "<main class=\""+mainClass(showSidebar)+"\">"); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main></div></body></html>")
		return err
	})
}

func bodyWrapperClass(showSidebar bool) string {
	if showSidebar {
		return "pf-shell pf-shell-split"
	}
	return "pf-shell"
}

func mainClass(showSidebar bool) string {
	if showSidebar {
		return "pf-main pf-main-offset"
	}
	return "pf-main"
}
