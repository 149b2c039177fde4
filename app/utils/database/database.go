// Package database opens a database/sql connection for the migration
// runner. The service itself talks to PostgreSQL through pgxpool; lib/pq
// is kept only here so migrations can run as plain multi-statement SQL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"portal-api/app/config"
)

const (
	maxOpenConns = 2
	connTimeout  = 10 * time.Second
)

// Conn wraps the sql.DB handle used by the migration runner.
type Conn struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to the configured database and verifies the connection.
func Open(cfg *config.Config, logger *slog.Logger) (*Conn, error) {
	log := logger.With("component", "database")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
		int(connTimeout.Seconds()),
	)

	log.Info("connecting to database",
		"host", cfg.DatabaseHost,
		"port", cfg.DatabasePort,
		"database", cfg.DatabaseName,
		"ssl_mode", cfg.DatabaseSSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return &Conn{db: db, logger: log}, nil
}

// DB returns the underlying sql.DB handle.
func (c *Conn) DB() *sql.DB {
	return c.db
}

// Close closes the database connection.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	c.logger.Info("closing database connection")
	return c.db.Close()
}
