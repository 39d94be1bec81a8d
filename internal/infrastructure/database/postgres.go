package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the service-credential pool against the shop database.
//
// The pool bypasses any per-user row restrictions, which is what the role
// resolver and the public snapshot reads rely on.
//
// Env vars:
//   - DATABASE_URL (full conn string; wins when set)
//   - POSTGRES_HOST / POSTGRES_PORT / POSTGRES_USER / POSTGRES_PASSWORD / POSTGRES_DB
func ConnectPostgres(ctx context.Context) *pgxpool.Pool {
	pool, err := NewPostgresPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	return pool
}

func NewPostgresPoolFromEnv(ctx context.Context) (*pgxpool.Pool, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getenvDefault("POSTGRES_HOST", "localhost"),
			getenvDefault("POSTGRES_PORT", "5432"),
			getenvDefault("POSTGRES_USER", "postgres"),
			getenvDefault("POSTGRES_PASSWORD", "postgres"),
			getenvDefault("POSTGRES_DB", "oficina"),
		)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
