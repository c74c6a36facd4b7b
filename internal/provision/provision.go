package provision

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users-service/internal/logger"
)

// EnsureDatabase connects to the administrative database and creates the
// target database if it is not registered in the server catalog.
// It is a no-op when the database already exists.
func EnsureDatabase(ctx context.Context, adminDSN, dbName string) error {
	db, err := sqlx.ConnectContext(ctx, "pgx", adminDSN)
	if err != nil {
		return fmt.Errorf("connect to admin database: %w", err)
	}
	defer db.Close()

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM pg_database WHERE datname = $1
		)
	`

	var exists bool
	err = db.GetContext(ctx, &exists, query, dbName)

	logger.Log.Infow("provision",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{dbName},
		"result", exists,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}
	if exists {
		return nil
	}

	// DDL cannot be parameterized; the name is quoted as an identifier.
	stmt := fmt.Sprintf(`CREATE DATABASE %s`, pgx.Identifier{dbName}.Sanitize())
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create database %s: %w", dbName, err)
	}

	logger.Log.Infow("database created", "name", dbName)
	return nil
}

// EnsureSchema creates the users table if it does not exist. Safe to run
// on every start; an existing table is left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	const query = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	_, err := db.ExecContext(ctx, query)

	logger.Log.Infow("provision",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}
