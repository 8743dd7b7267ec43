package services

import "map-route-service/internal/geo"

// Leg is the haversine distance between two consecutive route points.
type Leg struct {
	From       geo.Point
	To         geo.Point
	DistanceKm float64
}

type Measurement struct {
	Legs    []Leg
	TotalKm float64
	Bounds  *geo.Bound
}

// MeasureRoute breaks a route into legs. TotalKm equals geo.RouteLength.
func MeasureRoute(points []geo.Point) Measurement {
	m := Measurement{Legs: make([]Leg, 0, max(len(points)-1, 0))}
	for i := 1; i < len(points); i++ {
		m.Legs = append(m.Legs, Leg{
			From:       points[i-1],
			To:         points[i],
			DistanceKm: geo.Distance(points[i-1], points[i]),
		})
	}
	m.TotalKm = geo.RouteLength(points)

	if b, ok := geo.Bounds(points); ok {
		m.Bounds = &b
	}
	return m
}
