package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"map-route-service/internal/domain"
	"map-route-service/internal/geo"
)

const defaultDestination = "default"

// SQL-backed implementation of the RouteRepository port.
// The queries take no bind parameters, so the same SQL runs on SQLite and Postgres.
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

// Return the seeded waypoints in order and the destination.
func (s *SQLRouteRepository) LoadSampleRoute(ctx context.Context) (domain.SampleRoute, error) {
	if s.DB == nil {
		return domain.SampleRoute{}, errors.New("sql route repository: DB is nil")
	}

	query := `
	SELECT
		lat,
		lon
	FROM waypoints
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return domain.SampleRoute{}, fmt.Errorf("load route: query waypoints table: %w", err)
	}
	defer rows.Close()

	points := make([]geo.Point, 0, 16)
	for rows.Next() {
		var p PointSeed
		if err := rows.Scan(&p.Lat, &p.Lon); err != nil {
			return domain.SampleRoute{}, fmt.Errorf("load route: scan row: %w", err)
		}
		points = append(points, p.point())
	}

	if err := rows.Err(); err != nil {
		return domain.SampleRoute{}, fmt.Errorf("load route: row iteration: %w", err)
	}

	var dest PointSeed
	err = s.DB.QueryRowContext(ctx, `
	SELECT
		lat,
		lon
	FROM destinations
	WHERE name = '`+defaultDestination+`';
	`).Scan(&dest.Lat, &dest.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SampleRoute{}, errors.New("load route: no destination seeded")
	}
	if err != nil {
		return domain.SampleRoute{}, fmt.Errorf("load route: query destination: %w", err)
	}

	return domain.SampleRoute{Points: points, Destination: dest.point()}, nil
}
