package helper

//nolint:revive
import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/postgres"
	"frontdesk/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	TargetLocal  = "local"
	TargetRemote = "remote"

	sourceName = "iofs"
)

func newSource(fs embed.FS, dir string) (source.Driver, error) {
	src, err := iofs.New(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	return src, nil
}

func getConnection(config *config.Config, target string) (*migrate.Migrate, error) {
	var (
		fs               embed.FS
		dir              string
		connectionString string
	)

	switch target {
	case TargetRemote:
		fs, dir = migrations.Postgres, "postgres"
		connectionString = postgres.DSN(config, config.DB.Postgres.Write) +
			"&x-migrations-table=" + config.DB.Postgres.MigrationTable
	default:
		fs, dir = migrations.SQLite, "sqlite"
		connectionString = fmt.Sprintf("sqlite3://%s?x-migrations-table=%s",
			config.DB.SQLite.Path,
			config.DB.SQLite.MigrationTable,
		)
	}

	src, err := newSource(fs, dir)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance(sourceName, src, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(mig *migrate.Migrate, target, action string) error {
	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("target", target).Msg("Database migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Str("target", target).Msg("Database migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("target", target).Msg("Database migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Str("target", target).Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func Runner(config *config.Config, target, action string) error {
	mig, err := getConnection(config, target)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	return run(mig, target, action)
}

// MigrateLocalInstance applies the local schema to an already open SQLite handle.
// The migrate instance is not closed since that would close db as well.
func MigrateLocalInstance(db *sql.DB, migrationTable string) error {
	src, err := newSource(migrations.SQLite, "sqlite")
	if err != nil {
		return err
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{MigrationsTable: migrationTable})
	if err != nil {
		return fmt.Errorf("error creating sqlite migration driver: %w", err)
	}

	mig, err := migrate.NewWithInstance(sourceName, src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	return run(mig, TargetLocal, "up")
}

func Up(config *config.Config, target string) error {
	return Runner(config, target, "up")
}

func StepUp(config *config.Config, target string) error {
	return Runner(config, target, "step-up")
}

func Down(config *config.Config, target string) error {
	return Runner(config, target, "down")
}

func Drop(config *config.Config, target string) error {
	return Runner(config, target, "drop")
}
