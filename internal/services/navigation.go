package services

import (
	"context"
	"errors"
	"fmt"
	"map-route-service/internal/domain"
	"map-route-service/internal/geo"
	"map-route-service/internal/ports"
	"time"
)

// NavigationService drives the map session: it fetches routes from the
// routing provider and keeps the session's route, markers and user fix current.
type NavigationService struct {
	Session  *domain.Session
	Provider ports.RouteProvider
	Now      func() time.Time
}

func NewNavigationService(session *domain.Session, provider ports.RouteProvider) *NavigationService {
	return &NavigationService{Session: session, Provider: provider, Now: time.Now}
}

// StartNavigation fetches the road route from the start of the sample route
// to the destination and makes it the active route.
func (s *NavigationService) StartNavigation(ctx context.Context) (*domain.RoutePlan, error) {
	if s.Session == nil || s.Provider == nil {
		return nil, errors.New("start navigation: service is not configured")
	}

	origin, destination, err := s.Session.NavigationLeg()
	if err != nil {
		return nil, fmt.Errorf("start navigation: %w", err)
	}

	res, err := s.Provider.GetRoute(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("start navigation: get route %v -> %v: %w", origin, destination, err)
	}

	plan, err := buildPlan(origin, destination, res, s.Now())
	if err != nil {
		return nil, fmt.Errorf("start navigation: %w", err)
	}

	s.Session.ApplyRoute(plan)
	return plan, nil
}

// ClearRoute removes the active route and all markers.
func (s *NavigationService) ClearRoute() {
	s.Session.Clear()
}

// LocateUser records the user's position and returns it with the distance
// to the destination. A nil fix falls back to the first sample route point.
func (s *NavigationService) LocateUser(fix *geo.Point) (geo.Point, float64, error) {
	p, err := s.Session.ResolveStartLocation(fix)
	if err != nil {
		return geo.Point{}, 0, fmt.Errorf("locate user: %w", err)
	}
	return p, s.Session.UpdateUserLocation(p), nil
}

func (s *NavigationService) Snapshot() domain.View {
	return s.Session.Snapshot()
}

func buildPlan(origin, destination geo.Point, res ports.RouteResult, now time.Time) (*domain.RoutePlan, error) {
	bounds, ok := geo.Bounds(res.Path)
	if !ok {
		return nil, errors.New("routing service returned an empty path")
	}

	return &domain.RoutePlan{
		Origin:          origin,
		Destination:     destination,
		Path:            res.Path,
		DistanceKm:      geo.RouteLength(res.Path),
		DistanceMeters:  res.DistanceMeters,
		DurationSeconds: res.DurationSeconds,
		Bounds:          bounds,
		FetchedAt:       now,
	}, nil
}
