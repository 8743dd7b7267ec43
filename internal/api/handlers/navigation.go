package handlers

import (
	"errors"
	"log"
	"map-route-service/internal/api/dto"
	"map-route-service/internal/domain"
	"map-route-service/internal/geo"
	"map-route-service/internal/services"
	"net/http"
	"strings"
)

// NavigationHandler exposes the map session: route display, navigation and
// user location updates.
type NavigationHandler struct {
	Service *services.NavigationService
}

// Map returns the current map layers as a GeoJSON FeatureCollection.
func (h *NavigationHandler) Map(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		allowMethods(w, r, http.MethodGet)
		return
	}

	fc := dto.NewMapFeatureCollection(h.Service.Snapshot())
	b, err := fc.MarshalJSON()
	if err != nil {
		log.Printf("marshal map features failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// Navigation starts (POST) or clears (DELETE) the active route.
func (h *NavigationHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.start(w, r)
	case http.MethodDelete:
		h.Service.ClearRoute()
		w.WriteHeader(http.StatusNoContent)
	default:
		allowMethods(w, r, strings.Join([]string{http.MethodPost, http.MethodDelete}, ", "))
	}
}

func (h *NavigationHandler) start(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Service.StartNavigation(r.Context())
	if errors.Is(err, domain.ErrEmptyRoute) {
		writeError(w, r, http.StatusConflict, "route coordinates are not set")
		return
	}
	if err != nil {
		log.Printf("start navigation failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "failed to fetch route from routing service")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NavigationResponse{
		Origin:          dto.NewPointResponse(plan.Origin),
		Destination:     dto.NewPointResponse(plan.Destination),
		DistanceKm:      plan.DistanceKm,
		DistanceMeters:  plan.DistanceMeters,
		DurationSeconds: plan.DurationSeconds,
		Bounds:          dto.NewBoundsResponse(plan.Bounds),
		Coordinates:     dto.NewPointsResponse(plan.Path),
		FetchedAt:       plan.FetchedAt,
	})
}

// Location records a user fix. An empty body falls back to the route start.
func (h *NavigationHandler) Location(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		allowMethods(w, r, http.MethodPost)
		return
	}

	var req dto.LocationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var fix *geo.Point
	if req.Lat != nil || req.Lon != nil {
		p, err := req.Point()
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		fix = &p
	}

	p, d, err := h.Service.LocateUser(fix)
	if err != nil {
		writeError(w, r, http.StatusConflict, "no location available")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LocationResponse{
		Location:              dto.NewPointResponse(p),
		DistanceToDestination: d,
	})
}
