package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"map-route-service/internal/platform/obs"
	"map-route-service/internal/ports"
	"strings"
)

// SQLRouteCache is a Postgres-backed cache of fetched routes.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch a cached route by key.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return ports.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT geometry, distance_meters, duration_seconds
    FROM route_cache
    WHERE route_key = $1;
	`

	return scanRoute(s.DB.QueryRowContext(ctx, q, key))
}

// Store a route, replacing any previous entry for the key.
func (s *SQLRouteCache) Put(ctx context.Context, key string, r ports.RouteResult) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	geometry, err := encodePath(r.Path)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO route_cache (route_key, geometry, distance_meters, duration_seconds)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (route_key) DO UPDATE
	SET geometry = EXCLUDED.geometry,
		distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`, key, geometry, r.DistanceMeters, r.DurationSeconds)
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}

func scanRoute(row *sql.Row) (ports.RouteResult, bool, error) {
	var geometry string
	var meters, seconds int
	if err := row.Scan(&geometry, &meters, &seconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.RouteResult{}, false, nil
		}
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: scan row: %w", err)
	}

	path, err := decodePath(geometry)
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return ports.RouteResult{
		Path:            path,
		DistanceMeters:  meters,
		DurationSeconds: seconds,
	}, true, nil
}
