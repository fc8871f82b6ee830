package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	applog "petroflow/internal/log"
	"petroflow/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionLoginMessageKey  = "auth:message"
	sessionUserIDKey        = "auth:user:id"
	sessionUserEmailKey     = "auth:user:email"
	sessionUserNameKey      = "auth:user:name"
	sessionUserThemeKey     = "auth:user:theme"
	sessionTenantIDKey      = "auth:tenant:id"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	themes         *ThemeRuntime
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB, runtime *ThemeRuntime) {
	sessionManager = sm
	database = db
	themes = runtime
}

func createUser(r *http.Request, email, name, password string) (*models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hashed),
		Theme:        models.DefaultTheme,
	}

	if err := database.WithContext(r.Context()).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func findUserByEmail(r *http.Request, email string) (*models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	user := &models.User{}
	err := database.WithContext(r.Context()).Where("lower(email) = ?", strings.ToLower(email)).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// authenticate verifies the provided credentials and populates the session if successful.
func authenticate(w http.ResponseWriter, r *http.Request, email, password string) bool {
	if sessionManager == nil {
		http.Error(w, "authentication not available", http.StatusServiceUnavailable)
		return false
	}

	user, err := findUserByEmail(r, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			sessionManager.Put(r.Context(), sessionLoginMessageKey, "Invalid email or password. Please try again.")
		} else {
			applog.Error(r.Context(), "failed to load user during login", "error", err)
			sessionManager.Put(r.Context(), sessionLoginMessageKey, "We were unable to sign you in. Please try again.")
		}
		return false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		sessionManager.Put(r.Context(), sessionLoginMessageKey, "Invalid email or password. Please try again.")
		return false
	}

	if err := establishSession(r, user); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		sessionManager.Put(r.Context(), sessionLoginMessageKey, "We were unable to sign you in. Please try again.")
		return false
	}

	return true
}

func establishSession(r *http.Request, user *models.User) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionAuthenticatedKey, true)
	sessionManager.Put(r.Context(), sessionUserIDKey, int(user.ID))
	sessionManager.Put(r.Context(), sessionUserEmailKey, user.Email)
	sessionManager.Put(r.Context(), sessionUserNameKey, user.Name)
	sessionManager.Put(r.Context(), sessionUserThemeKey, models.NormalizeTheme(user.Theme))
	if user.TenantID != nil {
		sessionManager.Put(r.Context(), sessionTenantIDKey, int(*user.TenantID))
	}
	return nil
}

// RequireAuthentication ensures the user has an active session before accessing the resource.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout destroys the current session and redirects the user to the login screen.
func Logout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}

	redirectToLogin(w, r)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func redirectToApp(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/app")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

// ActiveSession returns true when the current request has an authenticated session.
func ActiveSession(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAuthenticatedKey) && sessionManager.GetInt(r.Context(), sessionUserIDKey) > 0
}

func currentUserID(r *http.Request) (uint, bool) {
	if sessionManager == nil {
		return 0, false
	}
	id := sessionManager.GetInt(r.Context(), sessionUserIDKey)
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func loadCurrentUser(r *http.Request) (*models.User, error) {
	userID, ok := currentUserID(r)
	if !ok {
		return nil, errors.New("no authenticated user in session")
	}
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	user := &models.User{}
	if err := database.WithContext(r.Context()).First(user, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// loadCurrentUserTheme resolves the signed-in user's theme, preferring the
// session cache and falling back to the persisted preference.
func loadCurrentUserTheme(r *http.Request) string {
	if sessionManager == nil {
		return models.DefaultTheme
	}

	if cached := sessionManager.GetString(r.Context(), sessionUserThemeKey); strings.TrimSpace(cached) != "" {
		return models.NormalizeTheme(cached)
	}

	user, err := loadCurrentUser(r)
	if err != nil {
		return models.DefaultTheme
	}

	resolved := models.NormalizeTheme(user.Theme)
	setSessionTheme(r, resolved)
	return resolved
}

func setSessionTheme(r *http.Request, theme string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionUserThemeKey, theme)
}

// currentTenant loads the tenant attached to the session, directly or through
// the signed-in user.
func currentTenant(r *http.Request) (*models.Tenant, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	if sessionManager != nil {
		if id := sessionManager.GetInt(r.Context(), sessionTenantIDKey); id > 0 {
			record := &models.Tenant{}
			if err := database.WithContext(r.Context()).First(record, id).Error; err == nil {
				return record, nil
			}
		}
	}

	user, err := loadCurrentUser(r)
	if err != nil {
		return nil, err
	}
	if user.TenantID == nil {
		return nil, gorm.ErrRecordNotFound
	}

	record := &models.Tenant{}
	if err := database.WithContext(r.Context()).First(record, *user.TenantID).Error; err != nil {
		return nil, err
	}
	return record, nil
}
