package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/config"
)

// Open connects to the configured backend and returns the handle plus the
// driver name, which the schema bootstrap needs for its DDL dialect.
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*sql.DB, string, error) {
	lifetime := time.Duration(cfg.ConnMaxLifeSec) * time.Second

	switch cfg.Driver {
	case "sqlite":
		db, err := OpenSQLite(cfg.SQLitePath, cfg.MaxOpenConns, cfg.MaxIdleConns, lifetime)
		if err != nil {
			return nil, "", fmt.Errorf("open sqlite at %s: %w", cfg.SQLitePath, err)
		}
		logger.Info("connected to sqlite", zap.String("path", cfg.SQLitePath))
		return db, DriverSQLite, nil
	case "postgres":
		db, err := OpenPostgres(cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, lifetime)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("connected to postgres")
		return db, DriverPostgres, nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
