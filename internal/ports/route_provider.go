package ports

import (
	"context"
	"map-route-service/internal/geo"
)

// Road route between two points as reported by a routing service.
type RouteResult struct {
	Path            []geo.Point
	DistanceMeters  int
	DurationSeconds int
}

// Contract for retrieving a driving route polyline between two points.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin geo.Point, destination geo.Point) (RouteResult, error)
}
