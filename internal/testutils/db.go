//go:build testutils
// +build testutils

/*
This needs to be added in VS code settings.json
{
    "go.testTags": "testutils",
    "go.buildTags": "testutils"
}
*/

package testutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"ctoup.com/devconnect/pkg/shared/repository"
)

var DB_CONNECTION string

func SetupPostgresContainer() (*pgxpool.Pool, func(), error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpassword",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start container: %w", err)
	}

	host, err := postgresC.Host(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get host: %w", err)
	}

	port, err := postgresC.MappedPort(ctx, "5432")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	DB_CONNECTION = fmt.Sprintf("postgres://testuser:testpassword@%s:%s/testdb?sslmode=disable", host, port.Port())

	connector := repository.ConnectorRetryDecorator{
		Connector:     repository.NewPostgresConnector(DB_CONNECTION),
		Attempts:      10,
		Delay:         2 * time.Second,
		IncreaseDelay: time.Second,
		MaxDelay:      10 * time.Second,
	}
	connPool, err := connector.ConnectWithRetry(ctx)
	if err != nil {
		postgresC.Terminate(ctx)
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cleanup := func() {
		connPool.Close()
		if err := postgresC.Terminate(ctx); err != nil {
			log.Warn().Err(err).Msg("cannot terminate postgres container")
		}
	}

	return connPool, cleanup, nil
}

// RunMigrations applies pkg/core/db/migration, located by walking up to the module root.
func RunMigrations(connectionString string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	rootDir := currentDir
	for {
		if _, err := os.Stat(filepath.Join(rootDir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(rootDir)
		if parent == rootDir {
			return fmt.Errorf("could not find module root from %s", currentDir)
		}
		rootDir = parent
	}

	migrationsDir := filepath.Join(rootDir, "pkg", "core", "db", "migration")
	return repository.Migrate("file://"+migrationsDir, connectionString, repository.MigrationDirectionUp)
}
