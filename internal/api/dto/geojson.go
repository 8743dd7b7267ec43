package dto

import (
	"map-route-service/internal/domain"
	"map-route-service/internal/geo"

	"github.com/paulmach/orb/geojson"
)

// Feature "layer" property values, one per map layer the client renders.
const (
	LayerRoute        = "route"
	LayerMarker       = "marker"
	LayerUserLocation = "user-location"
)

// NewMapFeatureCollection renders the session as GeoJSON: the displayed route
// line, one point per marker and the user location when known.
func NewMapFeatureCollection(v domain.View) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if route := v.DisplayedRoute(); len(route) > 1 {
		f := geojson.NewFeature(geo.LineString(route))
		f.Properties["layer"] = LayerRoute
		if v.Active != nil {
			f.Properties["distance_km"] = v.Active.DistanceKm
			f.Properties["duration_seconds"] = v.Active.DurationSeconds
		} else {
			f.Properties["distance_km"] = geo.RouteLength(route)
		}
		fc.Append(f)
	}

	for _, m := range v.Markers {
		f := geojson.NewFeature(m.Position.Orb())
		f.Properties["layer"] = LayerMarker
		f.Properties["type"] = string(m.Kind)
		f.Properties["title"] = m.Title
		fc.Append(f)
	}

	if v.UserLocation != nil {
		f := geojson.NewFeature(v.UserLocation.Orb())
		f.Properties["layer"] = LayerUserLocation
		f.Properties["distance_to_destination_km"] = geo.Distance(*v.UserLocation, v.Sample.Destination)
		fc.Append(f)
	}

	return fc
}
