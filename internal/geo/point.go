package geo

import "github.com/paulmach/orb"

// Point is an immutable latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Orb returns the point in orb's [lon, lat] order.
func (p Point) Orb() orb.Point { return orb.Point{p.Lon, p.Lat} }

func FromOrb(p orb.Point) Point { return Point{Lat: p.Lat(), Lon: p.Lon()} }

// LineString converts an ordered route into an orb.LineString.
func LineString(points []Point) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, p.Orb())
	}
	return ls
}

// FromLineString converts an orb.LineString back into route points.
func FromLineString(ls orb.LineString) []Point {
	out := make([]Point, 0, len(ls))
	for _, p := range ls {
		out = append(out, FromOrb(p))
	}
	return out
}
