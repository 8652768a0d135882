package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ctoup.com/devconnect/internal/version"
	"ctoup.com/devconnect/pkg/core/db"
)

type HealthCheckResponse struct {
	Status  string                  `json:"status"`
	Version string                  `json:"version"`
	Notes   []string                `json:"notes,omitempty"`
	Output  string                  `json:"output,omitempty"`
	Checks  map[string]CheckDetails `json:"checks,omitempty"`
}

type CheckDetails struct {
	ComponentType string    `json:"componentType"`
	ComponentName string    `json:"componentName,omitempty"`
	Status        string    `json:"status"`
	Time          time.Time `json:"time"`
	Output        string    `json:"output,omitempty"`
}

// Pinger is any dependency able to report its own health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Component struct {
	Type   string
	Name   string
	Pinger Pinger
}

type HealthHandler struct {
	components map[string]Component
	timeout    time.Duration
}

// NewHealthHandler always checks the database; extra components (cache, broker) are optional.
func NewHealthHandler(store db.Store, extra map[string]Component) *HealthHandler {
	components := map[string]Component{
		"database": {Type: "datastore", Name: "postgres", Pinger: store},
	}
	for key, component := range extra {
		components[key] = component
	}
	return &HealthHandler{components: components, timeout: 3 * time.Second}
}

func (exh *HealthHandler) GetHealthCheck(c *gin.Context) {
	response := HealthCheckResponse{
		Status:  "pass",
		Version: version.Version,
		Notes:   []string{"health check"},
		Checks:  make(map[string]CheckDetails),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exh.timeout)
	defer cancel()

	for key, component := range exh.components {
		check := CheckDetails{
			ComponentType: component.Type,
			ComponentName: component.Name,
			Status:        "pass",
			Time:          time.Now(),
		}
		if err := component.Pinger.Ping(ctx); err != nil {
			check.Status = "fail"
			check.Output = err.Error()
			response.Status = "fail"
		}
		response.Checks[key] = check
	}

	if response.Status == "pass" {
		c.JSON(http.StatusOK, response)
	} else {
		c.JSON(http.StatusServiceUnavailable, response)
	}
}
