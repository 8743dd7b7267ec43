package routing

import (
	"context"
	"errors"
	"map-route-service/internal/geo"
	"map-route-service/internal/ports"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const okRouteBody = `{
	"code": "Ok",
	"routes": [{
		"geometry": {"type": "LineString", "coordinates": [[-122.084, 37.422], [-122.081, 37.421], [-122.078, 37.418]]},
		"distance": 812.6,
		"duration": 95.4
	}],
	"waypoints": []
}`

type memoryCache struct {
	mu sync.Mutex
	m  map[string]ports.RouteResult
}

func (c *memoryCache) Get(ctx context.Context, key string) (ports.RouteResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.m[key]
	return r, ok, nil
}

func (c *memoryCache) Put(ctx context.Context, key string, r ports.RouteResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = r
	return nil
}

var (
	origin      = geo.Point{Lat: 37.422, Lon: -122.084}
	destination = geo.Point{Lat: 37.418, Lon: -122.078}
)

func TestOSRMGetRoute(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okRouteBody))
	}))
	defer srv.Close()

	provider, err := NewOSRMRouteProvider(srv.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := provider.GetRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/route/v1/driving/-122.084,37.422;-122.078,37.418" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.Contains(gotQuery, "geometries=geojson") || !strings.Contains(gotQuery, "overview=full") {
		t.Fatalf("query = %q", gotQuery)
	}

	if len(res.Path) != 3 {
		t.Fatalf("expected 3 points, got %d", len(res.Path))
	}
	if res.Path[0] != origin || res.Path[2] != destination {
		t.Fatalf("path endpoints = %v, %v", res.Path[0], res.Path[2])
	}
	if res.DistanceMeters != 813 || res.DurationSeconds != 95 {
		t.Fatalf("metrics = %d m, %d s", res.DistanceMeters, res.DurationSeconds)
	}
}

func TestOSRMGetRouteUsesCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(okRouteBody))
	}))
	defer srv.Close()

	cache := &memoryCache{m: map[string]ports.RouteResult{}}
	provider, err := NewOSRMRouteProvider(srv.URL, WithCache(cache))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := provider.GetRoute(context.Background(), origin, destination); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("upstream hits = %d, want 1", n)
	}
	if _, ok := cache.m[RouteKey(DefaultProfile, origin, destination)]; !ok {
		t.Fatal("route was not cached")
	}
}

func TestOSRMGetRouteRetriesTransientFailures(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(okRouteBody))
	}))
	defer srv.Close()

	provider, err := NewOSRMRouteProvider(srv.URL, WithRetry(4, time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := provider.GetRoute(context.Background(), origin, destination); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("upstream hits = %d, want 3", n)
	}
}

func TestOSRMGetRouteDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, `{"code":"InvalidQuery"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	provider, err := NewOSRMRouteProvider(srv.URL, WithRetry(4, time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = provider.GetRoute(context.Background(), origin, destination)
	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 status error", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("upstream hits = %d, want 1", n)
	}
}

func TestOSRMGetRouteNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","message":"Impossible route between points","routes":[]}`))
	}))
	defer srv.Close()

	provider, err := NewOSRMRouteProvider(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = provider.GetRoute(context.Background(), origin, destination)
	if err == nil || !strings.Contains(err.Error(), "NoRoute") {
		t.Fatalf("err = %v, want NoRoute error", err)
	}
}

func TestOSRMGetRouteHonorsCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusBadGateway)
	}))
	defer srv.Close()

	provider, err := NewOSRMRouteProvider(srv.URL, WithRetry(4, time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = provider.GetRoute(ctx, origin, destination)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestNewOSRMRouteProviderValidation(t *testing.T) {
	if _, err := NewOSRMRouteProvider("  "); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := NewOSRMRouteProvider("http://x", WithRetry(0, time.Second)); err == nil {
		t.Fatal("expected error for zero attempts")
	}
	if _, err := NewOSRMRouteProvider("http://x", WithProfile("")); err == nil {
		t.Fatal("expected error for empty profile")
	}
}

func TestRouteKeyRoundsCoordinates(t *testing.T) {
	a := RouteKey("driving", geo.Point{Lat: 37.4220001, Lon: -122.084}, destination)
	b := RouteKey("driving", geo.Point{Lat: 37.4219999, Lon: -122.084}, destination)
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a != "driving|37.42200,-122.08400|37.41800,-122.07800" {
		t.Fatalf("key = %q", a)
	}
}
