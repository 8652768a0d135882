package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctoup.com/devconnect/internal/testutils"
	"ctoup.com/devconnect/pkg/client"
	"ctoup.com/devconnect/pkg/core/validation"
	"ctoup.com/devconnect/pkg/shared/auth"
	servercore "ctoup.com/devconnect/pkg/shared/server/core"
)

const secret = "client-test-secret"

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := servercore.InitializeServerConfig(servercore.Dependencies{
		Store:    testutils.NewMemoryStore(),
		Tokens:   auth.NewTokenIssuer(secret, time.Hour),
		Hasher:   auth.PasswordHasher{Cost: 4},
		Denylist: auth.NewMemoryDenylist(),
	})
	srv := httptest.NewServer(cfg.Router)
	t.Cleanup(srv.Close)
	return srv
}

func register(t *testing.T, c *client.Client, email string) {
	t.Helper()
	err := c.RegisterUser(context.Background(), validation.RegisterInput{
		Name: "Jane Doe", Email: email, Password: "secret1", Password2: "secret1",
	})
	require.NoError(t, err)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	srv := newAPI(t)
	c := client.NewClient(srv.URL)

	register(t, c, "jane@example.com")
	assert.False(t, c.IsAuthenticated())
}

func TestRegisterReportsFieldErrors(t *testing.T) {
	srv := newAPI(t)
	c := client.NewClient(srv.URL)
	ctx := context.Background()

	err := c.RegisterUser(ctx, validation.RegisterInput{Email: "not-an-email"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Name field is required", apiErr.Field("name"))
	assert.Equal(t, "Email is invalid", apiErr.Field("email"))

	register(t, c, "jane@example.com")
	err = c.RegisterUser(ctx, validation.RegisterInput{
		Name: "Jane Doe", Email: "jane@example.com", Password: "secret1", Password2: "secret1",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]string{"email": "Email already exists"}, apiErr.Errors)
}

func TestLoginAndLogout(t *testing.T) {
	srv := newAPI(t)
	tokens := client.NewMemoryTokenStore()
	c := client.NewClient(srv.URL, client.WithTokenStore(tokens))
	ctx := context.Background()
	register(t, c, "jane@example.com")

	_, err := c.LoginUser(ctx, validation.LoginInput{Email: "jane@example.com", Password: "wrong1"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Password incorrect", apiErr.Field("password"))
	assert.False(t, c.IsAuthenticated())

	user, err := c.LoginUser(ctx, validation.LoginInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEqual(t, uuid.Nil, user.Identity.ID)
	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, user, c.CurrentUser())

	stored, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, stored, auth.BearerPrefix)

	current, err := c.FetchCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Identity.ID.String(), current["id"])

	require.NoError(t, c.LogoutUser(ctx))
	assert.False(t, c.IsAuthenticated())
	assert.Equal(t, client.CurrentUser{}, c.CurrentUser())
	_, err = tokens.Load(ctx)
	assert.ErrorIs(t, err, client.ErrNoToken)

	_, err = c.FetchCurrentUser(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.Field("message"))
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	identity := auth.Identity{ID: uuid.New(), Name: "Jane Doe", Avatar: "//gravatar"}

	t.Run("nothing stored", func(t *testing.T) {
		c := client.NewClient("http://localhost")
		ok, err := c.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := auth.NewTokenIssuer(secret, time.Hour).Issue(identity)
		require.NoError(t, err)
		tokens := client.NewMemoryTokenStore()
		require.NoError(t, tokens.Save(ctx, auth.BearerPrefix+token))

		c := client.NewClient("http://localhost", client.WithTokenStore(tokens))
		ok, err := c.Restore(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, identity, c.CurrentUser().Identity)
	})

	t.Run("expired token is dropped", func(t *testing.T) {
		issuedAt := time.Now().Add(-2 * time.Hour)
		token, _, err := auth.NewTokenIssuer(secret, time.Hour).WithClock(func() time.Time { return issuedAt }).Issue(identity)
		require.NoError(t, err)
		tokens := client.NewMemoryTokenStore()
		require.NoError(t, tokens.Save(ctx, auth.BearerPrefix+token))

		c := client.NewClient("http://localhost", client.WithTokenStore(tokens))
		ok, err := c.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, c.IsAuthenticated())
		_, err = tokens.Load(ctx)
		assert.ErrorIs(t, err, client.ErrNoToken)
	})

	t.Run("garbage token is dropped", func(t *testing.T) {
		tokens := client.NewMemoryTokenStore()
		require.NoError(t, tokens.Save(ctx, "Bearer not-a-jwt"))

		c := client.NewClient("http://localhost", client.WithTokenStore(tokens))
		ok, err := c.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSetCurrentUser(t *testing.T) {
	c := client.NewClient("http://localhost")
	user := client.CurrentUser{Identity: auth.Identity{ID: uuid.New(), Name: "John"}}

	c.SetCurrentUser(user)
	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, user, c.CurrentUser())

	c.SetCurrentUser(client.CurrentUser{})
	assert.False(t, c.IsAuthenticated())
}

func TestAPIErrorFromPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := client.NewClient(srv.URL).RegisterUser(context.Background(), validation.RegisterInput{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "bad gateway", apiErr.Field("message"))
	assert.Contains(t, apiErr.Error(), "502")
}
