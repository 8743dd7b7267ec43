package ports

import "context"

// Persistent store of previously fetched routes keyed by a normalized leg key.
type RouteCache interface {
	// Get reports false when the key is not cached.
	Get(ctx context.Context, key string) (RouteResult, bool, error)
	Put(ctx context.Context, key string, result RouteResult) error
}
