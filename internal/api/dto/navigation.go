package dto

import "time"

type NavigationResponse struct {
	Origin          PointResponse   `json:"origin"`
	Destination     PointResponse   `json:"destination"`
	DistanceKm      float64         `json:"distance_km"`
	DistanceMeters  int             `json:"distance_meters"`
	DurationSeconds int             `json:"duration_seconds"`
	Bounds          BoundsResponse  `json:"bounds"`
	Coordinates     []PointResponse `json:"coordinates"`
	FetchedAt       time.Time       `json:"fetched_at"`
}

type LocationRequest struct {
	PointRequest
}

type LocationResponse struct {
	Location              PointResponse `json:"location"`
	DistanceToDestination float64       `json:"distance_to_destination_km"`
}

type DistanceRequest struct {
	Points []PointRequest `json:"points"`
}

type LegResponse struct {
	From       PointResponse `json:"from"`
	To         PointResponse `json:"to"`
	DistanceKm float64       `json:"distance_km"`
}

type DistanceResponse struct {
	Legs    []LegResponse   `json:"legs"`
	TotalKm float64         `json:"total_km"`
	Bounds  *BoundsResponse `json:"bounds"`
}
