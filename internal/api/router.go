package api

import (
	"map-route-service/internal/api/handlers"
	"map-route-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(nav *services.NavigationService) http.Handler {
	mux := http.NewServeMux()

	navHandler := &handlers.NavigationHandler{Service: nav}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/route", navHandler.Map)
	mux.HandleFunc("/navigation", navHandler.Navigation)
	mux.HandleFunc("/location", navHandler.Location)
	mux.HandleFunc("/distance", handlers.Distance)

	return requestIDMiddleware(loggingMiddleware(mux))
}
