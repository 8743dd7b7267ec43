package dto

import (
	"fmt"
	"map-route-service/internal/geo"
)

type PointRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Point validates ranges and returns the coordinate.
func (p PointRequest) Point() (geo.Point, error) {
	if p.Lat == nil || p.Lon == nil {
		return geo.Point{}, fmt.Errorf("lat and lon are required")
	}
	if *p.Lat < -90 || *p.Lat > 90 {
		return geo.Point{}, fmt.Errorf("lat must be between -90 and 90")
	}
	if *p.Lon < -180 || *p.Lon > 180 {
		return geo.Point{}, fmt.Errorf("lon must be between -180 and 180")
	}
	return geo.Point{Lat: *p.Lat, Lon: *p.Lon}, nil
}

func NewPointResponse(p geo.Point) PointResponse {
	return PointResponse{Lat: p.Lat, Lon: p.Lon}
}

func NewPointsResponse(points []geo.Point) []PointResponse {
	out := make([]PointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, NewPointResponse(p))
	}
	return out
}

func NewBoundsResponse(b geo.Bound) BoundsResponse {
	return BoundsResponse{MinLat: b.MinLat, MinLon: b.MinLon, MaxLat: b.MaxLat, MaxLon: b.MaxLon}
}
