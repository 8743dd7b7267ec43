package routing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"map-route-service/internal/geo"
	"map-route-service/internal/platform/obs"
	"map-route-service/internal/ports"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://router.project-osrm.org"
	DefaultProfile = "driving"
)

// OSRMRouteProvider implements RouteProvider using an OSRM routing server.
//
// It coordinates:
//   - Persistent route caching keyed by rounded coordinates
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session        *http.Client
	baseURL        string
	profile        string
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	cache          ports.RouteCache
}

type Option func(*OSRMRouteProvider)

func WithHTTPClient(c *http.Client) Option {
	return func(o *OSRMRouteProvider) { o.session = c }
}

func WithProfile(profile string) Option {
	return func(o *OSRMRouteProvider) { o.profile = profile }
}

func WithCache(c ports.RouteCache) Option {
	return func(o *OSRMRouteProvider) { o.cache = c }
}

// WithRetry sets the attempt count and the first backoff delay.
func WithRetry(maxAttempts int, initialBackoff time.Duration) Option {
	return func(o *OSRMRouteProvider) {
		o.maxAttempts = maxAttempts
		o.initialBackoff = initialBackoff
	}
}

func NewOSRMRouteProvider(baseURL string, opts ...Option) (*OSRMRouteProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("OSRM base url is empty")
	}

	provider := &OSRMRouteProvider{
		session:        &http.Client{Timeout: 10 * time.Second},
		baseURL:        baseURL,
		profile:        DefaultProfile,
		userAgent:      "map-route-service/1.0",
		maxAttempts:    4,
		initialBackoff: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(provider)
	}

	if provider.maxAttempts < 1 {
		return nil, fmt.Errorf("OSRM max attempts must be positive, got %d", provider.maxAttempts)
	}
	if strings.TrimSpace(provider.profile) == "" {
		return nil, errors.New("OSRM profile is empty")
	}

	return provider, nil
}

// GetRoute returns the driving route from origin to destination, served from
// the cache when possible.
func (o *OSRMRouteProvider) GetRoute(
	ctx context.Context,
	origin geo.Point,
	destination geo.Point,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	key := RouteKey(o.profile, origin, destination)

	// Check persistent route cache before issuing external API calls.
	if o.cache != nil {
		hit, ok, err := o.cache.Get(ctx, key)
		if err != nil {
			return ports.RouteResult{}, fmt.Errorf("OSRM get route cache: %w", err)
		}
		if ok {
			return hit, nil
		}
	}

	fetched, err := o.fetchRoute(ctx, origin, destination)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("fetching route: %w", err)
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, key, fetched); err != nil {
			log.Printf("route cache write failed: key=%s err=%v", key, err)
		}
	}

	return fetched, nil
}

// RouteKey builds a stable cache key; coordinates are rounded to 5 decimals
// (about one meter) so jittery fixes share an entry.
func RouteKey(profile string, origin, destination geo.Point) string {
	return fmt.Sprintf("%s|%.5f,%.5f|%.5f,%.5f",
		profile, origin.Lat, origin.Lon, destination.Lat, destination.Lon)
}
