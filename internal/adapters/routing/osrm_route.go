package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"map-route-service/internal/geo"
	"map-route-service/internal/platform/obs"
	"map-route-service/internal/ports"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry geojson.Geometry `json:"geometry"`
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
	} `json:"routes"`
}

// fetchRoute retrieves the full-overview route between two points from the
// OSRM route endpoint, with the geometry encoded as GeoJSON.
func (o *OSRMRouteProvider) fetchRoute(
	ctx context.Context,
	origin geo.Point,
	destination geo.Point,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.fetchRoute")(&err)

	endpoint := o.routeURL(origin, destination)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, endpoint)
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var rr routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w", err)
	}

	if rr.Code != "Ok" {
		return ports.RouteResult{}, fmt.Errorf("routing service returned code %q: %s", rr.Code, rr.Message)
	}
	if len(rr.Routes) == 0 {
		return ports.RouteResult{}, errors.New("routing service returned no routes")
	}

	route := rr.Routes[0]
	ls, ok := route.Geometry.Coordinates.(orb.LineString)
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("route geometry is %T, want LineString", route.Geometry.Coordinates)
	}

	// OSRM returns float metrics; round to nearest integer for domain consistency.
	return ports.RouteResult{
		Path:            geo.FromLineString(ls),
		DistanceMeters:  int(math.Round(route.Distance)),
		DurationSeconds: int(math.Round(route.Duration)),
	}, nil
}

func (o *OSRMRouteProvider) routeURL(origin, destination geo.Point) string {
	coords := formatCoord(origin) + ";" + formatCoord(destination)

	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")

	return fmt.Sprintf("%s/route/v1/%s/%s?%s", o.baseURL, o.profile, coords, q.Encode())
}

// formatCoord renders a point in OSRM's "lon,lat" order.
func formatCoord(p geo.Point) string {
	return strconv.FormatFloat(p.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}
