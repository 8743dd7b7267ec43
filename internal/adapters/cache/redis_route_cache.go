package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"map-route-service/internal/platform/obs"
	"map-route-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "route:"

type redisRoute struct {
	Geometry        string `json:"geometry"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
}

// RedisRouteCache stores routes as JSON values that expire after TTL.
// A zero TTL keeps entries until evicted.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{Client: client, TTL: ttl}
}

// NewRedisClient parses url and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.redis.Get")(&err)

	if c.Client == nil {
		return ports.RouteResult{}, false, errors.New("route cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return ports.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var v redisRoute
	if err := json.Unmarshal(b, &v); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: decode value: %w", err)
	}

	path, err := decodePath(v.Geometry)
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return ports.RouteResult{
		Path:            path,
		DistanceMeters:  v.DistanceMeters,
		DurationSeconds: v.DurationSeconds,
	}, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, r ports.RouteResult) (err error) {
	defer obs.Time(ctx, "route.cache.redis.Put")(&err)

	if c.Client == nil {
		return errors.New("route cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	geometry, err := encodePath(r.Path)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	b, err := json.Marshal(redisRoute{
		Geometry:        geometry,
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
	})
	if err != nil {
		return fmt.Errorf("insert route cache: encode value: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}
	return nil
}
