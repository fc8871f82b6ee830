package handlers

import (
	"io"
	"net/http"

	applog "petroflow/internal/log"
	"petroflow/internal/theme/css"
)

// ThemeStylesheet serves the injected theme CSS for the current session. The
// first request applies the user's theme so a fresh session never renders
// unstyled.
func ThemeStylesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if themes == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	if _, ok := themes.Document.Style(css.StyleID); !ok {
		active := loadCurrentUserTheme(r)
		preset := resolveTenantPreset(r, active)
		if result := themes.Applier.Apply(preset); !result.Success {
			applog.Warn(r.Context(), "stylesheet bootstrap failed", "theme", active, "errors", len(result.Errors))
		}
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, themes.Document.Combined()); err != nil {
		applog.Error(r.Context(), "failed to write theme stylesheet", "error", err)
	}
}
