package handlers

import (
	"fmt"
	"map-route-service/internal/api/dto"
	"map-route-service/internal/geo"
	"map-route-service/internal/services"
	"net/http"
)

const maxDistancePoints = 10000

// Distance measures an arbitrary route of points with the haversine formula.
func Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		allowMethods(w, r, http.MethodPost)
		return
	}

	var req dto.DistanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Points) > maxDistancePoints {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d points are allowed", maxDistancePoints))
		return
	}

	points := make([]geo.Point, 0, len(req.Points))
	for i, pr := range req.Points {
		p, err := pr.Point()
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("points[%d]: %v", i, err))
			return
		}
		points = append(points, p)
	}

	m := services.MeasureRoute(points)

	res := dto.DistanceResponse{
		Legs:    make([]dto.LegResponse, 0, len(m.Legs)),
		TotalKm: m.TotalKm,
	}
	for _, l := range m.Legs {
		res.Legs = append(res.Legs, dto.LegResponse{
			From:       dto.NewPointResponse(l.From),
			To:         dto.NewPointResponse(l.To),
			DistanceKm: l.DistanceKm,
		})
	}
	if m.Bounds != nil {
		b := dto.NewBoundsResponse(*m.Bounds)
		res.Bounds = &b
	}

	writeJSON(w, r, http.StatusOK, res)
}
