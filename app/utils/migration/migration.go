// Package migration applies versioned SQL migrations from an fs.FS.
// Files are named NNN_description.up.sql with a matching .down.sql;
// applied versions are tracked in schema_migrations.
package migration

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Migration is a single versioned schema change.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	AppliedAt time.Time
}

// Runner applies and rolls back migrations against a database handle.
type Runner struct {
	db     *sql.DB
	logger *slog.Logger
	source fs.FS
}

// NewRunner creates a migration runner reading from the given filesystem.
func NewRunner(db *sql.DB, logger *slog.Logger, source fs.FS) *Runner {
	return &Runner{
		db:     db,
		logger: logger.With("component", "migration"),
		source: source,
	}
}

func (r *Runner) ensureVersionTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum VARCHAR(64) NOT NULL
	)`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// Load reads every migration pair from the filesystem, ordered by version.
func (r *Runner) Load() ([]Migration, error) {
	var migrations []Migration

	err := fs.WalkDir(r.source, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		filename := filepath.Base(path)
		prefix, rest, ok := strings.Cut(strings.TrimSuffix(filename, ".up.sql"), "_")
		if !ok {
			return fmt.Errorf("migration %s: want NNN_description.up.sql", filename)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return fmt.Errorf("migration %s: bad version prefix: %w", filename, err)
		}

		upSQL, err := fs.ReadFile(r.source, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		downPath := strings.Replace(path, ".up.sql", ".down.sql", 1)
		downSQL, err := fs.ReadFile(r.source, downPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", downPath, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    rest,
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}

	return migrations, nil
}

func (r *Runner) appliedVersions() (map[int]time.Time, error) {
	rows, err := r.db.Query(`SELECT version, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[version] = at
	}
	return applied, rows.Err()
}

// Up applies every pending migration in version order.
func (r *Runner) Up() error {
	if err := r.ensureVersionTable(); err != nil {
		return err
	}

	migrations, err := r.Load()
	if err != nil {
		return err
	}
	applied, err := r.appliedVersions()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if _, done := applied[mig.Version]; done {
			continue
		}
		if err := r.apply(mig); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", mig.Version, mig.Name, err)
		}
		r.logger.Info("applied migration", "version", mig.Version, "name", mig.Name)
	}
	return nil
}

// Down rolls back the given number of most recently applied migrations.
func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	migrations, err := r.Load()
	if err != nil {
		return err
	}
	byVersion := make(map[int]Migration, len(migrations))
	for _, mig := range migrations {
		byVersion[mig.Version] = mig
	}

	for ; steps > 0; steps-- {
		applied, err := r.appliedVersions()
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			r.logger.Info("no migrations to roll back")
			return nil
		}

		last := 0
		for version := range applied {
			if version > last {
				last = version
			}
		}

		mig, ok := byVersion[last]
		if !ok {
			return fmt.Errorf("applied migration %d has no source file", last)
		}
		if err := r.rollback(mig); err != nil {
			return fmt.Errorf("rollback of %d (%s) failed: %w", mig.Version, mig.Name, err)
		}
		r.logger.Info("rolled back migration", "version", mig.Version, "name", mig.Name)
	}
	return nil
}

func (r *Runner) apply(mig Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(mig.UpSQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		mig.Version, mig.Name, checksum(mig.UpSQL),
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}

func (r *Runner) rollback(mig Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(mig.DownSQL); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, mig.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}
	return tx.Commit()
}

// Status logs one line per migration with its applied state.
func (r *Runner) Status() error {
	if err := r.ensureVersionTable(); err != nil {
		return err
	}

	migrations, err := r.Load()
	if err != nil {
		return err
	}
	applied, err := r.appliedVersions()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if at, ok := applied[mig.Version]; ok {
			r.logger.Info("applied",
				"version", mig.Version,
				"name", mig.Name,
				"applied_at", at.Format(time.RFC3339))
		} else {
			r.logger.Info("pending", "version", mig.Version, "name", mig.Name)
		}
	}
	return nil
}

func checksum(content string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
}
