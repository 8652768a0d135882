package handlers

import (
	"ctoup.com/devconnect/api/health"
	core "ctoup.com/devconnect/pkg/core/api"
	"ctoup.com/devconnect/pkg/core/db"
	"ctoup.com/devconnect/pkg/core/service"
)

// Services are the domain services the HTTP layer delegates to.
type Services struct {
	Accounts *service.AccountService
	Profiles *service.ProfileService
	Posts    *service.PostService
}

func CreateCoreHandlers(store db.Store, services Services, healthComponents map[string]health.Component) Handlers {
	handlers := Handlers{
		HealthHandler:  health.NewHealthHandler(store, healthComponents),
		UserHandler:    core.NewUserHandler(services.Accounts),
		ProfileHandler: core.NewProfileHandler(services.Profiles),
		PostHandler:    core.NewPostHandler(services.Posts),
	}
	return handlers
}

type Handlers struct {
	*health.HealthHandler
	*core.UserHandler
	*core.ProfileHandler
	*core.PostHandler
}
