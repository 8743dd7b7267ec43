package geo

import (
	"math"
	"testing"
)

func withinPct(got, want, pct float64) bool {
	return math.Abs(got-want) <= math.Abs(want)*pct/100
}

func TestDistanceSamePointIsZero(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 37.422, Lon: -122.084},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
	}

	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 37.422, Lon: -122.084}, {Lat: 37.418, Lon: -122.078}},
		{{Lat: 51.5074, Lon: -0.1278}, {Lat: 40.7128, Lon: -74.006}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 35.6762, Lon: 139.6503}},
		{{Lat: 0, Lon: 179.9}, {Lat: 0, Lon: -179.9}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance not symmetric for %v: %v != %v", p, ab, ba)
		}
		if ab <= 0 {
			t.Errorf("Distance(%v, %v) = %v, want > 0", p[0], p[1], ab)
		}
	}
}

func TestDistanceQuarterEquator(t *testing.T) {
	got := Distance(Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 90})
	if !withinPct(got, 10007.5, 0.1) {
		t.Fatalf("distance = %v, want ~10007.5", got)
	}
}

func TestDistanceSampleRouteLeg(t *testing.T) {
	got := Distance(Point{Lat: 37.422, Lon: -122.084}, Point{Lat: 37.424, Lon: -122.082})
	if !withinPct(got, 0.284, 1) {
		t.Fatalf("distance = %v km, want ~0.284 km", got)
	}
}

func TestDistanceMonotonicWithSeparation(t *testing.T) {
	origin := Point{Lat: 10, Lon: 20}
	prev := 0.0
	for lon := 21.0; lon <= 100; lon += 10 {
		d := Distance(origin, Point{Lat: 10, Lon: lon})
		if d <= prev {
			t.Fatalf("distance to lon=%v = %v, not greater than %v", lon, d, prev)
		}
		prev = d
	}
}

func TestRouteLengthDegenerate(t *testing.T) {
	if got := RouteLength(nil); got != 0 {
		t.Errorf("RouteLength(nil) = %v, want 0", got)
	}
	if got := RouteLength([]Point{}); got != 0 {
		t.Errorf("RouteLength([]) = %v, want 0", got)
	}
	if got := RouteLength([]Point{{Lat: 37.422, Lon: -122.084}}); got != 0 {
		t.Errorf("RouteLength([p]) = %v, want 0", got)
	}
}

func TestRouteLengthAdditive(t *testing.T) {
	p0 := Point{Lat: 37.422, Lon: -122.084}
	p1 := Point{Lat: 37.424, Lon: -122.082}
	p2 := Point{Lat: 37.420, Lon: -122.080}

	got := RouteLength([]Point{p0, p1, p2})
	want := Distance(p0, p1) + Distance(p1, p2)
	if got != want {
		t.Fatalf("RouteLength = %v, want %v", got, want)
	}
}

func TestRouteLengthOrderMatters(t *testing.T) {
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 0, Lon: 10}
	c := Point{Lat: 0, Lon: 5}

	if RouteLength([]Point{a, b, c}) <= RouteLength([]Point{a, c, b}) {
		t.Fatal("expected the back-tracking route to be longer")
	}
}

func TestDistanceAntipodalIsFinite(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 18.83885183633153, Lon: 158.58327169620446}, {Lat: -18.83885183633153, Lon: -21.416728303795537}},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 180}},
		{{Lat: 90, Lon: 0}, {Lat: -90, Lon: 0}},
		{{Lat: 37.422, Lon: -122.084}, {Lat: -37.422, Lon: 57.916}},
		{{Lat: -45.5, Lon: 10.25}, {Lat: 45.5, Lon: -169.75}},
	}

	want := math.Pi * EarthRadiusKm
	for _, p := range pairs {
		for _, d := range []float64{Distance(p[0], p[1]), Distance(p[1], p[0])} {
			if math.IsNaN(d) || math.IsInf(d, 0) {
				t.Fatalf("Distance(%v, %v) = %v, want finite", p[0], p[1], d)
			}
			if !withinPct(d, want, 0.001) {
				t.Errorf("Distance(%v, %v) = %v, want ~%v", p[0], p[1], d, want)
			}
		}
	}
}
