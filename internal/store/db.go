// Package store persists league members and their season records in Postgres.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgxpool.Pool for league database access.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new DB by parsing the given database URL and establishing a connection pool.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying pgxpool.Pool for repository use.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

const schema = `
CREATE TABLE IF NOT EXISTS league_members (
	id              UUID PRIMARY KEY,
	display_name    TEXT NOT NULL UNIQUE,
	sleeper_user_id TEXT,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS seasons (
	id                UUID PRIMARY KEY,
	league_member_id  UUID NOT NULL REFERENCES league_members(id) ON DELETE CASCADE,
	year              TEXT NOT NULL,
	sleeper_league_id TEXT,
	team_name         TEXT,
	final_rank        INTEGER,
	wins              INTEGER,
	losses            INTEGER,
	ties              INTEGER,
	total_points      DOUBLE PRECISION,
	division          TEXT,
	UNIQUE (league_member_id, year)
);`

// EnsureSchema creates the league tables when they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
