package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"map-route-service/internal/adapters/cache"
	"map-route-service/internal/adapters/repositories"
	"map-route-service/internal/adapters/routing"
	"map-route-service/internal/api"
	"map-route-service/internal/config"
	"map-route-service/internal/domain"
	"map-route-service/internal/platform/db"
	"map-route-service/internal/ports"
	"map-route-service/internal/services"
	"net/http"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, OSRM) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dsn := cfg.DBPath
	if cfg.DBDriver == db.DriverPostgres {
		dsn = cfg.DatabaseURL
	}

	conn, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed the sample route on startup for local runs.
	if err := initAndSeed(conn, cfg.SeedPath, cfg.DBDriver); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	routeCache, closeCache, err := newRouteCache(ctx, cfg, conn)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	opts := []routing.Option{routing.WithProfile(cfg.OSRMProfile)}
	if routeCache != nil {
		opts = append(opts, routing.WithCache(routeCache))
	}
	provider, err := routing.NewOSRMRouteProvider(cfg.OSRMBaseURL, opts...)
	if err != nil {
		log.Fatal(err)
	}

	sample, err := repositories.NewSQLRouteRepository(conn).LoadSampleRoute(ctx)
	if err != nil {
		log.Fatal(err)
	}
	session := domain.NewSession(sample)
	session.PlaceMarkers()

	nav := services.NewNavigationService(session, provider)
	router := api.NewRouter(nav)

	// Timeouts allow for a slow public routing server on a cold cache.
	log.Printf("Server listening addr=:%s db=%s cache=%s osrm=%s", cfg.Port, cfg.DBDriver, cfg.CacheBackend, cfg.OSRMBaseURL)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newRouteCache(ctx context.Context, cfg config.Config, conn *sql.DB) (ports.RouteCache, func(), error) {
	noop := func() {}

	switch cfg.CacheBackend {
	case "none":
		return nil, noop, nil
	case "redis":
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("route cache: %w", err)
		}
		return cache.NewRedisRouteCache(client, cfg.CacheTTL), func() { _ = client.Close() }, nil
	default:
		if cfg.DBDriver == db.DriverPostgres {
			return cache.NewSQLRouteCache(conn), noop, nil
		}
		return cache.NewSqliteRouteCache(conn), noop, nil
	}
}

func initAndSeed(conn *sql.DB, seedPath string, dialect string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, seedPath, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
