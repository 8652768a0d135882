package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ctoup.com/devconnect/api/health"
	rest "ctoup.com/devconnect/internal/server/http"
	"ctoup.com/devconnect/pkg/core/db"
	coreservice "ctoup.com/devconnect/pkg/core/service"
	"ctoup.com/devconnect/pkg/shared/auth"
	"ctoup.com/devconnect/pkg/shared/config"
	"ctoup.com/devconnect/pkg/shared/event"
	"ctoup.com/devconnect/pkg/shared/fileservice"
	"ctoup.com/devconnect/pkg/shared/repository"
	"ctoup.com/devconnect/pkg/shared/server/core"
	"ctoup.com/devconnect/pkg/shared/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info().Str("version", cmd.Root().Version).Msg("Application started...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectionString := repository.GetConnectionString()
	connector := repository.ConnectorRetryDecorator{
		Connector:     repository.NewPostgresConnector(connectionString),
		Attempts:      config.GetEnvAsInt("DATABASE_CONNECT_ATTEMPTS", 1000),
		Delay:         5 * time.Second,
		IncreaseDelay: 20 * time.Millisecond,
		MaxDelay:      1 * time.Minute,
	}
	log.Info().Msg("Creating Connection Pool")
	connPool, err := connector.ConnectWithRetry(ctx)
	if err != nil {
		return err
	}
	defer connPool.Close()
	log.Info().Msg("Connection Pool created...")

	var sqlDB *sql.DB
	if sqlDB, err = repository.ConnectDB(connectionString); err != nil {
		log.Warn().Err(err).Msg("SQL health check disabled")
		sqlDB = nil
	} else {
		defer sqlDB.Close()
	}

	if config.GetEnv("MIGRATE_ON_START", "false") == "true" {
		if err := repository.Migrate(migrationURL(), connectionString, repository.MigrationDirectionUp); err != nil {
			return err
		}
	}

	deps := core.Dependencies{
		Store:            db.NewStore(connPool),
		SqlDB:            sqlDB,
		Tokens:           auth.NewTokenIssuer(config.MustGetEnv("JWT_SECRET"), config.GetEnvAsDuration("JWT_TTL", time.Hour)),
		Hasher:           auth.NewPasswordHasher(),
		HealthComponents: map[string]health.Component{},
		CorsOrigins:      util.SplitAndTrim(config.GetEnv("CORS_ORIGIN", "*")),
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		denylist, err := auth.NewRedisDenylist(ctx, redisURL)
		if err != nil {
			return err
		}
		defer denylist.Close()
		deps.Denylist = denylist
		deps.HealthComponents["redis"] = health.Component{Type: "cache", Name: "redis", Pinger: denylist}
	} else {
		log.Warn().Msg("REDIS_URL not set, revoked tokens are kept in memory")
		deps.Denylist = auth.NewMemoryDenylist()
	}

	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		publisher, err := event.NewNATSPublisher(natsURL)
		if err != nil {
			return err
		}
		defer publisher.Close()
		deps.Events = publisher
		deps.HealthComponents["nats"] = health.Component{Type: "broker", Name: "nats", Pinger: publisher}
	} else {
		deps.Events = event.NoopPublisher{}
	}

	files, err := fileservice.NewFileService(ctx, config.GetEnv("FILE_FOLDER_URL", "mem://"))
	if err != nil {
		return err
	}
	defer files.Close()
	deps.Files = files

	limiter := coreservice.NewRateLimiter(config.GetEnvAsInt("LOGIN_RATE_LIMIT", 10), time.Minute)
	defer limiter.Close()
	deps.LoginLimiter = limiter

	restAddress := ":" + config.GetEnv("WEBSITES_PORT", "5000")
	if err := rest.RunRESTServer(ctx, deps, restAddress); err != nil {
		return err
	}
	log.Info().Msg("Server exiting")
	return nil
}
