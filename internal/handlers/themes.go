package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	applog "petroflow/internal/log"
	"petroflow/internal/theme"
	"petroflow/models"
)

// importRequestLimit bounds uploaded preset documents.
const importRequestLimit = 1 << 20

type presetSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Compliant bool   `json:"compliant"`
	Score     int    `json:"score"`
	Active    bool   `json:"active"`
}

type variablesRequest struct {
	Variables map[string]string `json:"variables"`
}

// ThemeResource handles REST-style interactions for the theme pipeline.
func ThemeResource(w http.ResponseWriter, r *http.Request) {
	if themes == nil {
		applog.Debug(r.Context(), "theme request without configured runtime")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	if _, ok := currentUserID(r); !ok {
		applog.Debug(r.Context(), "theme request missing authenticated user")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/app/themes")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		listThemePresets(w, r)
	case path == "validate":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		validateThemeDocument(w, r)
	case path == "apply":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		applyTheme(w, r)
	case path == "import":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		importThemePreset(w, r)
	case path == "variables":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		updateThemeVariables(w, r)
	case strings.HasPrefix(path, "export/"):
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		exportThemePreset(w, r, strings.TrimPrefix(path, "export/"))
	default:
		http.NotFound(w, r)
	}
}

func listThemePresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	active := loadCurrentUserTheme(r)

	presets := theme.Presets()
	summaries := make([]presetSummary, 0, len(presets))
	for _, preset := range presets {
		validation, err := themes.Validator.ValidatePreset(preset)
		if err != nil {
			applog.Error(ctx, "curated preset failed validation", "preset", preset.ID, "error", err)
			continue
		}
		summaries = append(summaries, presetSummary{
			ID:        preset.ID,
			Name:      preset.Name,
			Category:  preset.Category,
			Compliant: validation.IsCompliant,
			Score:     validation.Score,
			Active:    preset.ID == active,
		})
	}

	writeJSON(w, http.StatusOK, summaries)
}

func validateThemeDocument(w http.ResponseWriter, r *http.Request) {
	document, err := readDocument(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	preset, err := theme.Import(document)
	if err != nil {
		if errors.Is(err, theme.ErrMalformedPreset) || errors.Is(err, theme.ErrIncompletePreset) {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := themes.Validator.ValidatePreset(preset)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func applyTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	requested := strings.TrimSpace(r.FormValue("theme"))
	if requested == "" {
		writeJSONError(w, http.StatusBadRequest, "theme is required")
		return
	}
	if !models.ValidTheme(requested) {
		writeJSONError(w, http.StatusBadRequest, "unknown theme selection")
		return
	}

	preset := resolveTenantPreset(r, requested)
	result := themes.Applier.Apply(preset)
	if !result.Success {
		applog.Warn(ctx, "theme application rejected", "theme", requested, "errors", len(result.Errors))
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	persistThemePreference(r, requested)
	setSessionTheme(r, requested)

	applog.Debug(ctx, "theme applied", "theme", requested)
	writeJSON(w, http.StatusOK, result)
}

// resolveTenantPreset layers the session tenant's branding over the requested
// base preset. Requests without a tenant get the plain curated preset.
func resolveTenantPreset(r *http.Request, id string) theme.Preset {
	record, err := currentTenant(r)
	if err != nil {
		return theme.PresetByID(id)
	}

	branded := *record
	branded.BasePreset = id
	return themes.Composer.Compose(r.Context(), &branded).Preset
}

func persistThemePreference(r *http.Request, themeID string) {
	if database == nil {
		return
	}
	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Debug(r.Context(), "skipping theme persistence without user", "error", err)
		return
	}
	if err := database.WithContext(r.Context()).Model(user).Update("theme", themeID).Error; err != nil {
		applog.Error(r.Context(), "failed to persist theme preference", "error", err)
	}
}

func importThemePreset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	document, err := readDocument(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	preset, err := theme.Import(document)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	results, err := themes.Validator.ValidatePreset(preset)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if !results.IsCompliant {
		writeJSON(w, http.StatusUnprocessableEntity, results)
		return
	}

	if database != nil {
		record := &models.ThemePreset{
			PresetID: preset.ID,
			Name:     preset.Name,
			Category: preset.Category,
			Document: document,
			Source:   "import",
		}
		if tenantRecord, err := currentTenant(r); err == nil {
			record.TenantID = &tenantRecord.ID
		}
		if err := database.WithContext(ctx).Create(record).Error; err != nil {
			applog.Error(ctx, "failed to persist imported preset", "preset", preset.ID, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to store imported preset")
			return
		}
	}

	applog.Debug(ctx, "theme preset imported", "preset", preset.ID)
	writeJSON(w, http.StatusCreated, results)
}

func exportThemePreset(w http.ResponseWriter, r *http.Request, id string) {
	id = strings.TrimSpace(id)
	if !models.ValidTheme(id) && !storedPresetExists(r, id) {
		http.NotFound(w, r)
		return
	}

	preset, ok := loadPreset(r, id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	document, err := theme.Export(preset)
	if err != nil {
		applog.Error(r.Context(), "failed to export preset", "preset", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to export preset")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.json"`)
	if _, err := io.WriteString(w, document); err != nil {
		applog.Error(r.Context(), "failed to write preset export", "preset", id, "error", err)
	}
}

func storedPresetExists(r *http.Request, id string) bool {
	if database == nil {
		return false
	}
	var count int64
	if err := database.WithContext(r.Context()).
		Model(&models.ThemePreset{}).
		Where("preset_id = ?", id).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func loadPreset(r *http.Request, id string) (theme.Preset, bool) {
	if models.ValidTheme(id) {
		return theme.PresetByID(id), true
	}
	if database == nil {
		return theme.Preset{}, false
	}

	record := &models.ThemePreset{}
	if err := database.WithContext(r.Context()).First(record, "preset_id = ?", id).Error; err != nil {
		return theme.Preset{}, false
	}
	preset, err := theme.Import(record.Document)
	if err != nil {
		applog.Error(r.Context(), "stored preset document unreadable", "preset", id, "error", err)
		return theme.Preset{}, false
	}
	return preset, true
}

func updateThemeVariables(w http.ResponseWriter, r *http.Request) {
	var req variablesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if len(req.Variables) == 0 {
		writeJSONError(w, http.StatusBadRequest, "variables are required")
		return
	}

	for name, value := range req.Variables {
		themes.Batcher.Update(name, value)
	}

	writeJSON(w, http.StatusAccepted, map[string]int{"queued": len(req.Variables)})
}

// readDocument consumes the request body as a preset document.
func readDocument(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, importRequestLimit))
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", errors.New("document is required")
	}
	return string(body), nil
}
