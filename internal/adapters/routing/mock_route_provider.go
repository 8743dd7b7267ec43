package routing

import (
	"context"
	"fmt"
	"map-route-service/internal/geo"
	"map-route-service/internal/ports"
	"sync"
)

type MockLeg struct {
	From, To geo.Point
	Result   ports.RouteResult
}

// MockRouteProvider serves canned routes and counts calls.
type MockRouteProvider struct {
	mu    sync.Mutex
	m     map[[2]geo.Point]ports.RouteResult
	calls int
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[[2]geo.Point]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[[2]geo.Point{l.From, l.To}] = l.Result
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination geo.Point) (ports.RouteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	r, ok := p.m[[2]geo.Point{origin, destination}]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing leg %v -> %v", origin, destination)
	}
	return r, nil
}

func (p *MockRouteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
