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

// SQLite backed cache of fetched routes.
// Keys are expected to be consistent (e.g., already rounded) by the caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch a cached route by key.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return ports.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT 
        geometry,
        distance_meters,
        duration_seconds
    FROM route_cache
    WHERE route_key = ?;
	`

	return scanRoute(s.DB.QueryRowContext(ctx, q, key))
}

// Store a route, replacing any previous entry for the key.
func (s *SqliteRouteCache) Put(ctx context.Context, key string, r ports.RouteResult) (err error) {
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
	INSERT OR REPLACE INTO route_cache (
        route_key,
        geometry,
        distance_meters,
        duration_seconds
    )
    VALUES (?, ?, ?, ?);
	`, key, geometry, r.DistanceMeters, r.DurationSeconds)
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
