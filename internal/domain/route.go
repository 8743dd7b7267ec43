package domain

import (
	"map-route-service/internal/geo"
	"time"
)

// SampleRoute is the fixed demo route drawn before any navigation starts,
// together with the destination the user is heading to.
type SampleRoute struct {
	Points      []geo.Point
	Destination geo.Point
}

// Represents a route fetched from the routing service.
// DistanceKm is the haversine length of Path; DistanceMeters and
// DurationSeconds are the routing service's own road metrics.
type RoutePlan struct {
	Origin          geo.Point
	Destination     geo.Point
	Path            []geo.Point
	DistanceKm      float64
	DistanceMeters  int
	DurationSeconds int
	Bounds          geo.Bound
	FetchedAt       time.Time
}
