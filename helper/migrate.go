package helper

//nolint:revive
import (
	"dailytodo/config"
	"dailytodo/infras/postgres"
	"dailytodo/migrations"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// MigrationURL adds TLS and the migrations table parameter to dsn.
func MigrationURL(dsn, migrationTable string) (string, error) {
	descriptor, err := postgres.WithSSL(dsn)
	if err != nil {
		return "", fmt.Errorf("building migration url: %w", err)
	}

	if migrationTable == "" {
		return descriptor, nil
	}

	parsed, err := url.Parse(descriptor)
	if err != nil {
		return "", fmt.Errorf("building migration url: %w", err)
	}

	query := parsed.Query()
	query.Set("x-migrations-table", migrationTable)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func getConnection(dsn, migrationTable string) (*migrate.Migrate, error) {
	connectionString, err := MigrationURL(dsn, migrationTable)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action against the database at dsn.
func Runner(dsn, migrationTable, action string) error {
	mig, err := getConnection(dsn, migrationTable)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func Up(config *config.Config) error {
	return Runner(config.DB.URL, config.DB.MigrationTable, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config.DB.URL, config.DB.MigrationTable, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config.DB.URL, config.DB.MigrationTable, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config.DB.URL, config.DB.MigrationTable, ActionDrop)
}

// MigrateOnStartup applies pending migrations when DB_AUTO_MIGRATE is set.
func MigrateOnStartup(config *config.Config) error {
	if !config.DB.AutoMigrate {
		log.Info().Msg("Automatic migrations disabled")

		return nil
	}

	return Up(config)
}
