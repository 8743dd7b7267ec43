package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"map-route-service/internal/geo"
	"os"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "pgx"
)

// DOUBLE PRECISION keeps full coordinate precision in Postgres and maps to
// REAL affinity in SQLite, so the same DDL serves both dialects.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS waypoints (
		seq INTEGER PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS destinations (
		name TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS route_cache (
        route_key TEXT PRIMARY KEY,
        geometry TEXT NOT NULL,
        distance_meters INTEGER NOT NULL,
        duration_seconds INTEGER NOT NULL
    );
	`,
}

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PointSeed struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteSeed struct {
	Route       []PointSeed `json:"route"`
	Destination *PointSeed  `json:"destination"`
}

// Populate the database with the sample route from a JSON file.
// Existing waypoints are replaced.
func SeedFromJSON(db *sql.DB, jsonPath string, dialect string) error {
	if db == nil {
		return errors.New("seed route: DB is nil")
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed route: read %q: %w", jsonPath, err)
	}

	var data RouteSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed route: parse json: %w", err)
	}

	return Seed(db, data, dialect)
}

// Seed validates and writes a route seed.
func Seed(db *sql.DB, data RouteSeed, dialect string) error {
	insertWaypoint, upsertDestination, err := seedQueries(dialect)
	if err != nil {
		return fmt.Errorf("seed route: %w", err)
	}

	for i, p := range data.Route {
		if err := validPoint(p); err != nil {
			return fmt.Errorf("seed route: waypoint #%d: %w", i+1, err)
		}
	}
	if data.Destination == nil {
		return errors.New("seed route: destination is required")
	}
	if err := validPoint(*data.Destination); err != nil {
		return fmt.Errorf("seed route: destination: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM waypoints;`); err != nil {
		return fmt.Errorf("seed route: clear waypoints: %w", err)
	}

	stmt, err := tx.Prepare(insertWaypoint)
	if err != nil {
		return fmt.Errorf("seed route: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range data.Route {
		if _, err := stmt.Exec(i+1, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("seed route: insert waypoint seq=%d: %w", i+1, err)
		}
	}

	if _, err := tx.Exec(upsertDestination, defaultDestination, data.Destination.Lat, data.Destination.Lon); err != nil {
		return fmt.Errorf("seed route: upsert destination: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed route: commit tx: %w", err)
	}

	return nil
}

func seedQueries(dialect string) (waypoint string, destination string, err error) {
	switch dialect {
	case DialectSQLite:
		return `
		INSERT OR REPLACE INTO waypoints (seq, lat, lon)
		VALUES (?, ?, ?);
		`, `
		INSERT OR REPLACE INTO destinations (name, lat, lon)
		VALUES (?, ?, ?);
		`, nil
	case DialectPostgres:
		return `
		INSERT INTO waypoints (seq, lat, lon)
		VALUES ($1, $2, $3)
		ON CONFLICT (seq) DO UPDATE
		SET lat = EXCLUDED.lat, lon = EXCLUDED.lon;
		`, `
		INSERT INTO destinations (name, lat, lon)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET lat = EXCLUDED.lat, lon = EXCLUDED.lon;
		`, nil
	default:
		return "", "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}

func validPoint(p PointSeed) error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Lon)
	}
	return nil
}

func (p PointSeed) point() geo.Point { return geo.Point{Lat: p.Lat, Lon: p.Lon} }
