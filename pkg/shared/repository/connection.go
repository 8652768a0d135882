package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"ctoup.com/devconnect/pkg/shared/config"
)

func GetConnectionString() string {

	username, password, databaseUrl := getConnectionInfo()

	return fmt.Sprintf("postgres://%s:%s@%s", username, password, databaseUrl)
}

func getConnectionInfo() (string, string, string) {
	username := config.MustGetEnv("DATABASE_USERNAME")
	password := config.MustGetEnv("DATABASE_PASSWORD")
	databaseUrl := config.MustGetEnv("DATABASE_URL")
	return username, password, databaseUrl
}

// ConnectDB opens a database/sql handle (lib/pq) used by migrations and health checks.
func ConnectDB(connectionString string) (*sql.DB, error) {

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("Cannot open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("Cannot ping database: %w", err)
	}

	return db, nil
}

type IConnector interface {
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}

type ErrorConnector struct {
}

// Connect always throws error
func (r ErrorConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	return nil, fmt.Errorf("connect error")
}

type PostgresConnector struct {
	connectionString string
	maxConns         int32
}

func NewPostgresConnector(connectionString string) PostgresConnector {
	return PostgresConnector{
		connectionString: connectionString,
		maxConns:         int32(config.GetEnvAsInt("DATABASE_MAX_CONNS", 25)),
	}
}

// Connect builds the pool and checks that the server answers.
func (r PostgresConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(r.connectionString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	if r.maxConns > 0 {
		cfg.MaxConns = r.maxConns
	}
	connPool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("connect error")
		return nil, err
	}
	if err := connPool.Ping(ctx); err != nil {
		connPool.Close()
		log.Error().Err(err).Msg("ping error")
		return nil, err
	}
	return connPool, nil
}

type ConnectorRetryDecorator struct {
	Connector     IConnector
	Attempts      int
	Delay         time.Duration
	IncreaseDelay time.Duration
	MaxDelay      time.Duration
}

func (r ConnectorRetryDecorator) ConnectWithRetry(ctx context.Context) (*pgxpool.Pool, error) {
	for i := 0; i < r.Attempts; i++ {
		connPool, err := r.Connector.Connect(ctx)
		if err == nil {
			log.Info().Msg("Connected to DB")
			return connPool, err
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("retry canceled: %w", ctx.Err())
		case <-time.After(r.Delay):
			if r.Delay <= r.MaxDelay {
				r.Delay += r.IncreaseDelay
			}
			log.Info().Msgf("Next Attempt in %v second(s)", r.Delay.Seconds())
		}
	}
	return nil, fmt.Errorf("connect error")
}

// MigrationDirection represents the direction of database migration
type MigrationDirection string

const (
	// MigrationDirectionUp represents upward migration
	MigrationDirectionUp MigrationDirection = "up"
	// MigrationDirectionDown represents downward migration
	MigrationDirectionDown MigrationDirection = "down"
)
