package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ctoup.com/devconnect/pkg/shared/config"
	"ctoup.com/devconnect/pkg/shared/repository"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(repository.MigrationDirectionUp), string(repository.MigrationDirectionDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := repository.MigrationDirection(args[0])
		if err := repository.Migrate(migrationURL(), repository.GetConnectionString(), direction); err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}
		return nil
	},
}

func migrationURL() string {
	return config.GetEnv("MIGRATION_URL", "file://pkg/core/db/migration")
}
