package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/auth"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
)

// Supported driver names, as returned by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Timestamps are stored as TEXT in the second-precision layout on both
// backends, so the ORDER BY timestamp contract behaves identically.
const surveysDDL = `
CREATE TABLE IF NOT EXISTS surveys (
    id TEXT PRIMARY KEY,
    timestamp TEXT NOT NULL,
    customer_name TEXT NOT NULL,
    customer_email TEXT NOT NULL DEFAULT '',
    customer_phone TEXT NOT NULL DEFAULT '',
    customer_gender TEXT NOT NULL DEFAULT '',
    customer_location TEXT NOT NULL DEFAULT '',
    quality INTEGER NOT NULL,
    timeliness INTEGER NOT NULL,
    service INTEGER NOT NULL,
    overall INTEGER NOT NULL,
    comments TEXT NOT NULL DEFAULT '',
    owner_username TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
)`

var usersDDL = map[string]string{
	DriverSQLite: `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    full_name TEXT NOT NULL,
    is_admin INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
)`,
	DriverPostgres: `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    full_name TEXT NOT NULL,
    is_admin INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
)`,
}

// BootstrapOptions seeds the initial admin account.
type BootstrapOptions struct {
	AdminUsername string
	AdminPassword string
	AdminFullName string
	BcryptCost    int
}

// Bootstrap idempotently creates the schema and seeds the admin account if
// and only if no account with the bootstrap username exists. Safe to call on
// every process start.
func Bootstrap(ctx context.Context, db *sql.DB, driver string, opts BootstrapOptions, logger *zap.Logger) error {
	ddl, ok := usersDDL[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}

	for _, stmt := range []string{ddl, surveysDDL} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	logger.Info("schema ready", zap.String("driver", driver))

	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = $1`, opts.AdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(opts.AdminPassword, opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, full_name, is_admin, created_at)
		 VALUES ($1, $2, $3, 1, $4)`,
		opts.AdminUsername, hash, opts.AdminFullName, domain.NowStamp())
	if err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	logger.Info("seeded admin account", zap.String("username", opts.AdminUsername))
	return nil
}
