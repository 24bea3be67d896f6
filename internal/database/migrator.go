package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"property-ledger/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsDir = "db/migrations"
	defaultSeedsDir      = "db/seeds"

	defaultReadyAttempts = 30
	defaultReadyBackoff  = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationStatus is the schema version recorded by golang-migrate
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Applied is false on a database no migration has touched yet
	Applied bool
}

// Migrator applies the SQL migrations under db/migrations and replays the
// seed files under db/seeds when seeding is enabled.
type Migrator struct {
	db       *sql.DB
	dir      string
	seedDir  string
	seed     bool
	attempts int
	backoff  time.Duration
	logger   *slog.Logger
}

type MigratorOption func(*Migrator)

func WithMigrationsDir(dir string) MigratorOption {
	return func(m *Migrator) { m.dir = dir }
}

func WithSeedsDir(dir string) MigratorOption {
	return func(m *Migrator) { m.seedDir = dir }
}

// WithReadyRetry sets how often WaitReady pings before giving up
func WithReadyRetry(attempts int, backoff time.Duration) MigratorOption {
	return func(m *Migrator) {
		m.attempts = attempts
		m.backoff = backoff
	}
}

func WithMigratorLogger(logger *slog.Logger) MigratorOption {
	return func(m *Migrator) { m.logger = logger }
}

func NewMigrator(db *sql.DB, cfg *config.DatabaseConfig, opts ...MigratorOption) *Migrator {
	m := &Migrator{
		db:       db,
		dir:      defaultMigrationsDir,
		seedDir:  defaultSeedsDir,
		seed:     cfg.SeedDatabase,
		attempts: defaultReadyAttempts,
		backoff:  defaultReadyBackoff,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WaitReady pings the database until it answers, the attempts run out or
// ctx is done
func (m *Migrator) WaitReady(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		if lastErr = m.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		m.logger.Info("database not ready", "attempt", attempt, "of", m.attempts, "error", lastErr)

		if attempt == m.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.backoff):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", m.attempts, lastErr)
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	if _, err := os.Stat(m.dir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMigrationsNotFound
		}
		return nil, err
	}

	dir, err := filepath.Abs(m.dir)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations dir: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrate driver: %w", err)
	}

	mig, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate instance: %w", err)
	}
	return mig, nil
}

// Up applies every pending migration. A dirty schema is forced back to its
// recorded version first.
func (m *Migrator) Up() error {
	mig, err := m.open()
	if errors.Is(err, ErrMigrationsNotFound) {
		m.logger.Warn("no migrations directory, skipping", "dir", m.dir)
		return nil
	}
	if err != nil {
		return err
	}

	before, err := status(mig)
	if err != nil {
		return err
	}
	if before.Dirty {
		m.logger.Warn("schema is dirty, forcing version", "version", before.Version)
		if err := mig.Force(int(before.Version)); err != nil {
			return fmt.Errorf("force version %d: %w", before.Version, err)
		}
	}

	switch err := mig.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("schema up to date", "version", before.Version)
		return nil
	case err != nil:
		return fmt.Errorf("apply migrations: %w", err)
	}

	after, err := status(mig)
	if err != nil {
		return err
	}
	m.logger.Info("migrations applied", "from", before.Version, "to", after.Version)
	return nil
}

// Down reverts the most recently applied migration
func (m *Migrator) Down() error {
	mig, err := m.open()
	if err != nil {
		return err
	}
	if err := mig.Steps(-1); err != nil {
		return fmt.Errorf("roll back: %w", err)
	}
	return nil
}

func (m *Migrator) Status() (MigrationStatus, error) {
	mig, err := m.open()
	if err != nil {
		return MigrationStatus{}, err
	}
	return status(mig)
}

func status(mig *migrate.Migrate) (MigrationStatus, error) {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("read migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}

// Seed runs every db/seeds/*.sql file in name order and returns how many
// succeeded. A failing file is logged and skipped.
func (m *Migrator) Seed(ctx context.Context) (int, error) {
	if !m.seed {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(m.seedDir, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("list seed files: %w", err)
	}

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("read seed %s: %w", file, err)
		}
		if _, err := m.db.ExecContext(ctx, string(content)); err != nil {
			m.logger.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		applied++
	}

	m.logger.Info("seed data loaded", "files", applied, "of", len(files))
	return applied, nil
}

// Prepare migrates and seeds the database at startup when AUTO_MIGRATE is set
func Prepare(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig, opts ...MigratorOption) error {
	if !cfg.AutoMigrate {
		return nil
	}

	m := NewMigrator(db, cfg, opts...)
	if err := m.WaitReady(ctx); err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		return err
	}
	if _, err := m.Seed(ctx); err != nil {
		m.logger.Warn("seeding failed", "error", err)
	}
	return nil
}
