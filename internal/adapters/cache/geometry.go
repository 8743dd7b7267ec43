package cache

import (
	"fmt"
	"map-route-service/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// encodePath stores a route path as a GeoJSON LineString geometry.
func encodePath(path []geo.Point) (string, error) {
	b, err := geojson.NewGeometry(geo.LineString(path)).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("encode route geometry: %w", err)
	}
	return string(b), nil
}

func decodePath(s string) ([]geo.Point, error) {
	g, err := geojson.UnmarshalGeometry([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("decode route geometry: %w", err)
	}

	ls, ok := g.Coordinates.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("decode route geometry: got %T, want LineString", g.Coordinates)
	}
	return geo.FromLineString(ls), nil
}
