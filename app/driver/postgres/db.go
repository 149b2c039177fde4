package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"portal-api/app/config"
	apperrors "portal-api/app/utils/errors"
)

// Connection pool configuration constants
const (
	maxConns        = int32(25)
	minConns        = int32(5)
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
)

// DB represents a PostgreSQL database connection
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection creates a new PostgreSQL database connection
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	dsn := buildDSN(cfg)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure connection pool settings
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabase, "failed to create connection pool", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabase, "failed to ping database", err)
	}

	logger.Info("database connection established",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName,
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns)

	return &DB{
		pool:   pool,
		logger: logger,
	}, nil
}

// Close closes the database connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
		db.logger.Info("database connection closed")
	}
}

// Pool returns the underlying connection pool
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// HealthCheck checks if the database is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

// buildDSN builds the PostgreSQL connection string
func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
}
