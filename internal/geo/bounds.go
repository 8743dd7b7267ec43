package geo

import "github.com/paulmach/orb"

// Bound is the latitude/longitude box enclosing a route.
type Bound struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Bounds returns the smallest box containing every point.
// It reports false for an empty route.
func Bounds(points []Point) (Bound, bool) {
	if len(points) == 0 {
		return Bound{}, false
	}

	b := LineString(points).Bound()
	return Bound{
		MinLat: b.Min.Lat(),
		MinLon: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLon: b.Max.Lon(),
	}, true
}

// Center is the midpoint of the box, used as a camera target.
func (b Bound) Center() Point {
	c := orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}.Center()
	return FromOrb(c)
}
