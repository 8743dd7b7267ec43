package cache

import (
	"context"
	"map-route-service/internal/adapters/repositories"
	"map-route-service/internal/geo"
	"map-route-service/internal/platform/db"
	"map-route-service/internal/ports"
	"testing"
)

func sampleResult() ports.RouteResult {
	return ports.RouteResult{
		Path: []geo.Point{
			{Lat: 37.422, Lon: -122.084},
			{Lat: 37.421, Lon: -122.081},
			{Lat: 37.418, Lon: -122.078},
		},
		DistanceMeters:  813,
		DurationSeconds: 95,
	}
}

func assertSameResult(t *testing.T, got, want ports.RouteResult) {
	t.Helper()

	if got.DistanceMeters != want.DistanceMeters || got.DurationSeconds != want.DurationSeconds {
		t.Fatalf("metrics = %d m, %d s; want %d m, %d s",
			got.DistanceMeters, got.DurationSeconds, want.DistanceMeters, want.DurationSeconds)
	}
	if len(got.Path) != len(want.Path) {
		t.Fatalf("path length = %d, want %d", len(got.Path), len(want.Path))
	}
	for i := range want.Path {
		if got.Path[i] != want.Path[i] {
			t.Fatalf("point %d = %v, want %v", i, got.Path[i], want.Path[i])
		}
	}
}

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	conn, err := db.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	ctx := context.Background()
	c := NewSqliteRouteCache(conn)

	if _, ok, err := c.Get(ctx, "driving|a|b"); err != nil || ok {
		t.Fatalf("Get on empty cache = ok %v, err %v", ok, err)
	}

	want := sampleResult()
	if err := c.Put(ctx, "driving|a|b", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "driving|a|b")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	assertSameResult(t, got, want)

	want.DurationSeconds = 120
	if err := c.Put(ctx, "driving|a|b", want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = c.Get(ctx, "driving|a|b")
	if got.DurationSeconds != 120 {
		t.Fatalf("duration after overwrite = %d", got.DurationSeconds)
	}

	if err := c.Put(ctx, " ", want); err == nil {
		t.Fatal("expected error for empty key")
	}
}
