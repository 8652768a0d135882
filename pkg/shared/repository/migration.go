package repository

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// Migrate applies every migration of sourceURL (e.g. file://pkg/core/db/migration) in the given direction.
// Being already at the target version is not an error.
func Migrate(sourceURL, connectionString string, direction MigrationDirection) error {
	m, err := migrate.New(sourceURL, connectionString)
	if err != nil {
		return fmt.Errorf("cannot create migration instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("cannot close migration")
		}
	}()

	switch direction {
	case MigrationDirectionUp:
		err = m.Up()
	case MigrationDirectionDown:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	switch {
	case errors.Is(verr, migrate.ErrNilVersion):
		log.Info().Str("direction", string(direction)).Msg("Database has no migration applied")
	case verr != nil:
		log.Warn().Err(verr).Msg("cannot read migration version")
	default:
		log.Info().Str("direction", string(direction)).Uint("version", version).Bool("dirty", dirty).Msg("Migration done")
	}
	return nil
}
