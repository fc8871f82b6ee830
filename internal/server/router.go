package server

import (
	"context"
	"net/http"

	"petroflow/internal/handlers"
	applog "petroflow/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/logout", handlers.Logout)
	mux.Handle("/app", handlers.RequireAuthentication(http.HandlerFunc(handlers.Dashboard)))
	mux.Handle("/app/", handlers.RequireAuthentication(http.HandlerFunc(handlers.Dashboard)))
	mux.Handle("/app/preferences/update", handlers.RequireAuthentication(http.HandlerFunc(handlers.UpdatePreferences)))
	mux.Handle("/app/themes", handlers.RequireAuthentication(http.HandlerFunc(handlers.ThemeResource)))
	mux.Handle("/app/themes/", handlers.RequireAuthentication(http.HandlerFunc(handlers.ThemeResource)))
	mux.Handle("/app/api/tanks", handlers.RequireAuthentication(http.HandlerFunc(handlers.TankResource)))
	mux.Handle("/app/api/tanks/", handlers.RequireAuthentication(http.HandlerFunc(handlers.TankResource)))
	mux.Handle("/app/api/deliveries", handlers.RequireAuthentication(http.HandlerFunc(handlers.DeliveryResource)))
	mux.HandleFunc("/", handlers.Home)
	mux.HandleFunc("/assets/theme.css", handlers.ThemeStylesheet)
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	applog.Debug(context.Background(), "routes registered")
	return mux
}
