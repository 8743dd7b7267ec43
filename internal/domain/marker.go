package domain

import "map-route-service/internal/geo"

type MarkerKind string

const (
	MarkerStart       MarkerKind = "start"
	MarkerEnd         MarkerKind = "end"
	MarkerDestination MarkerKind = "destination"
)

// Marker is a titled pin on the map.
type Marker struct {
	Kind     MarkerKind
	Title    string
	Position geo.Point
}
