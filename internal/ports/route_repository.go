package ports

import (
	"context"
	"map-route-service/internal/domain"
)

// Port: a boundary for loading the demo route from a data source.
type RouteRepository interface {
	LoadSampleRoute(ctx context.Context) (domain.SampleRoute, error)
}
