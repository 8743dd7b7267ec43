package domain

import (
	"errors"
	"map-route-service/internal/geo"
	"sync"
)

var (
	ErrEmptyRoute = errors.New("route coordinates are not set")
	ErrNoLocation = errors.New("no start location available")
)

// Session holds the state of the single map screen: the sample route, the
// markers currently placed, the active fetched route and the last user fix.
// It is safe for concurrent use.
type Session struct {
	mu           sync.RWMutex
	sample       SampleRoute
	markers      []Marker
	active       *RoutePlan
	userLocation *geo.Point
	cleared      bool
}

func NewSession(sample SampleRoute) *Session {
	return &Session{sample: sample}
}

// View is a point-in-time copy of the session.
type View struct {
	Sample       SampleRoute
	Markers      []Marker
	Active       *RoutePlan
	UserLocation *geo.Point
	Cleared      bool
}

// DisplayedRoute is the line drawn on the map: the active route, else the
// sample route unless it was cleared.
func (v View) DisplayedRoute() []geo.Point {
	if v.Active != nil {
		return v.Active.Path
	}
	if v.Cleared {
		return nil
	}
	return v.Sample.Points
}

// PlaceMarkers adds Start, End and Destination markers when none are placed.
// End is only placed when the sample route has more than one point.
func (s *Session) PlaceMarkers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placeMarkersLocked()
}

func (s *Session) placeMarkersLocked() {
	if len(s.markers) > 0 {
		return
	}

	points := s.sample.Points
	if len(points) > 0 {
		s.markers = append(s.markers, Marker{Kind: MarkerStart, Title: "Start", Position: points[0]})
	}
	if len(points) > 1 {
		s.markers = append(s.markers, Marker{Kind: MarkerEnd, Title: "End", Position: points[len(points)-1]})
	}
	s.markers = append(s.markers, Marker{Kind: MarkerDestination, Title: "Destination", Position: s.sample.Destination})
}

// NavigationLeg returns the origin and destination for a route request.
// Markers are restored first if a previous Clear removed them.
func (s *Session) NavigationLeg() (geo.Point, geo.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sample.Points) == 0 {
		return geo.Point{}, geo.Point{}, ErrEmptyRoute
	}
	s.placeMarkersLocked()

	return s.sample.Points[0], s.sample.Destination, nil
}

// ApplyRoute replaces the active route.
func (s *Session) ApplyRoute(plan *RoutePlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = plan
	s.cleared = false
}

// Clear removes the active route and every marker.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.markers = nil
	s.cleared = true
}

// UpdateUserLocation records the user's position and returns the distance
// to the destination in kilometers.
func (s *Session) UpdateUserLocation(p geo.Point) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocation = &p
	return geo.Distance(p, s.sample.Destination)
}

// ResolveStartLocation picks the initial camera target: the last known
// device fix, else the first sample route point.
func (s *Session) ResolveStartLocation(last *geo.Point) (geo.Point, error) {
	if last != nil {
		return *last, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.sample.Points) == 0 {
		return geo.Point{}, ErrNoLocation
	}
	return s.sample.Points[0], nil
}

func (s *Session) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Sample: SampleRoute{
			Points:      append([]geo.Point(nil), s.sample.Points...),
			Destination: s.sample.Destination,
		},
		Markers: append([]Marker(nil), s.markers...),
		Cleared: s.cleared,
	}
	if s.active != nil {
		plan := *s.active
		plan.Path = append([]geo.Point(nil), s.active.Path...)
		v.Active = &plan
	}
	if s.userLocation != nil {
		loc := *s.userLocation
		v.UserLocation = &loc
	}
	return v
}
