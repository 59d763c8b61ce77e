// Package migration applies the versioned SQL schema with golang-migrate.
package migration

import (
	"database/sql"
	"log/slog"

	"storefront/config"
	"storefront/internal/errors"
	"storefront/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// sources
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // database/sql driver used by golang-migrate's postgres driver
)

// ErrNoDatabaseURL is returned when neither a URL nor an open handle is supplied.
var ErrNoDatabaseURL = errors.New("migration database url is empty")

// Migrator wraps a golang-migrate instance.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *slog.Logger
}

// New builds a Migrator from the migration section of cfg. An empty Path uses
// the SQL files compiled into the binary.
func New(cfg *config.MigrationConfig, logger *slog.Logger) (*Migrator, error) {
	if cfg == nil || cfg.DatabaseURL == "" {
		return nil, ErrNoDatabaseURL
	}

	var (
		m   *migrate.Migrate
		err error
	)
	if cfg.Path == "" {
		src, srcErr := iofs.New(migrations.FS, ".")
		if srcErr != nil {
			return nil, errors.Wrap(srcErr, "failed to open embedded migrations")
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, cfg.DatabaseURL)
	} else {
		m, err = migrate.New(cfg.Path, cfg.DatabaseURL)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// NewWithDB reuses an open postgres handle, e.g. the application pool.
func NewWithDB(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create postgres driver")
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	m.logger.Info("Running migrations up")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migration up failed")
	}

	return m.logVersion("Migrations completed")
}

// Down rolls back every migration.
func (m *Migrator) Down() error {
	m.logger.Warn("Running migrations down")

	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to roll back")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migration down failed")
	}

	m.logger.Info("All migrations rolled back")

	return nil
}

// Steps applies n migrations; negative n rolls back.
func (m *Migrator) Steps(n int) error {
	m.logger.Info("Running migration steps", slog.Int("steps", n))

	err := m.migrate.Steps(n)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migration steps failed")
	}

	return m.logVersion("Migration steps completed")
}

// GoTo migrates up or down to version.
func (m *Migrator) GoTo(version uint) error {
	err := m.migrate.Migrate(version)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Already at target version", slog.Uint64("version", uint64(version)))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "migration to version %d failed", version)
	}

	return m.logVersion("Migration to version completed")
}

// Version reports the applied version; a fresh database is version 0.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to get migration version")
	}

	return version, dirty, nil
}

// Force records version without running anything. It is how a dirty
// database is repaired after a failed migration.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", slog.Int("version", version))

	if err := m.migrate.Force(version); err != nil {
		return errors.Wrapf(err, "failed to force version %d", version)
	}

	return nil
}

func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return errors.Wrap(sourceErr, "failed to close migration source")
	}
	if dbErr != nil {
		return errors.Wrap(dbErr, "failed to close migration database")
	}

	return nil
}

func (m *Migrator) logVersion(msg string) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	m.logger.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
