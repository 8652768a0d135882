package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctoup.com/devconnect/internal/testutils"
	"ctoup.com/devconnect/internal/version"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(handler *HealthHandler) (*httptest.ResponseRecorder, HealthCheckResponse) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", handler.GetHealthCheck)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	var body HealthCheckResponse
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHealthCheckPass(t *testing.T) {
	store := testutils.NewMemoryStore()
	w, body := serve(NewHealthHandler(store, map[string]Component{
		"cache": {Type: "cache", Name: "redis", Pinger: pingFunc(func(ctx context.Context) error { return nil })},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pass", body.Status)
	assert.Equal(t, version.Version, body.Version)
	require.Contains(t, body.Checks, "database")
	require.Contains(t, body.Checks, "cache")
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	store := testutils.NewMemoryStore()
	store.FailWith(errors.New("connection refused"))

	w, body := serve(NewHealthHandler(store, nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "fail", body.Status)
	assert.Equal(t, "fail", body.Checks["database"].Status)
	assert.Equal(t, "connection refused", body.Checks["database"].Output)
}
