package main

import (
	"database/sql"
	"log"
	"map-route-service/internal/adapters/repositories"
	"map-route-service/internal/config"
	"map-route-service/internal/platform/db"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool prepares a Postgres database for the server: schema plus sample route.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(db.DriverPostgres, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/route.json")
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(conn, seedPath, repositories.DialectPostgres); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
