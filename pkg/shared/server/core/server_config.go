package core

import (
	"database/sql"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	"github.com/tavsec/gin-healthcheck/config"

	"ctoup.com/devconnect/api/handlers"
	"ctoup.com/devconnect/api/health"
	"ctoup.com/devconnect/pkg/core/db"
	coreservice "ctoup.com/devconnect/pkg/core/service"
	"ctoup.com/devconnect/pkg/shared/auth"
	"ctoup.com/devconnect/pkg/shared/event"
	"ctoup.com/devconnect/pkg/shared/fileservice"
	"ctoup.com/devconnect/pkg/shared/service"
)

// Dependencies are the infrastructure pieces the router is built from.
// Denylist, Files, LoginLimiter and SqlDB are optional.
type Dependencies struct {
	Store            db.Store
	SqlDB            *sql.DB
	Tokens           *auth.TokenIssuer
	Hasher           auth.PasswordHasher
	Denylist         auth.Denylist
	Events           event.Publisher
	Files            *fileservice.FileService
	LoginLimiter     *coreservice.RateLimiter
	HealthComponents map[string]health.Component
	CorsOrigins      []string
}

type ServerConfig struct {
	Router         *gin.Engine
	AuthMiddleware *service.AuthMiddleware
	APIOptions     handlers.GinServerOptions
	Services       handlers.Services
}

var (
	serverConfigInstance *ServerConfig
	serverConfigOnce     sync.Once
)

// NewServerConfig builds the process wide router once.
func NewServerConfig(deps Dependencies, additionalChecks ...checks.Check) *ServerConfig {
	serverConfigOnce.Do(func() {
		serverConfigInstance = InitializeServerConfig(deps, additionalChecks...)
	})
	return serverConfigInstance
}

func setupHealthCheck(router *gin.Engine, defaultChecks ...checks.Check) {
	allChecks := make([]checks.Check, 0)
	allChecks = append(allChecks, defaultChecks...)
	healthcheck.New(router, config.DefaultConfig(), allChecks)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", service.RequestIDHeader},
		ExposeHeaders:    []string{service.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}

// InitializeServerConfig builds a fresh router; tests use it directly.
func InitializeServerConfig(deps Dependencies, additionalChecks ...checks.Check) *ServerConfig {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(deps.CorsOrigins))

	allChecks := make([]checks.Check, 0, len(additionalChecks)+1)
	if deps.SqlDB != nil {
		allChecks = append(allChecks, checks.SqlCheck{Sql: deps.SqlDB})
	}
	allChecks = append(allChecks, additionalChecks...)
	setupHealthCheck(router, allChecks...)

	services := handlers.Services{
		Accounts: coreservice.NewAccountService(deps.Store, deps.Tokens, deps.Hasher, deps.Denylist, deps.Files, deps.LoginLimiter),
		Profiles: coreservice.NewProfileService(deps.Store, deps.Events, deps.Files),
		Posts:    coreservice.NewPostService(deps.Store, deps.Events),
	}

	authMiddleware := service.NewAuthMiddleware(services.Accounts)

	apiOptions := handlers.GinServerOptions{
		BaseURL: "",
		Middlewares: []gin.HandlerFunc{
			service.RequestIDMiddleware(),
		},
		Auth: authMiddleware.MiddlewareFunc(),
	}

	h := handlers.CreateCoreHandlers(deps.Store, services, deps.HealthComponents)
	handlers.RegisterHandlersWithOptions(router, h, apiOptions)

	return &ServerConfig{
		Router:         router,
		AuthMiddleware: authMiddleware,
		APIOptions:     apiOptions,
		Services:       services,
	}
}
