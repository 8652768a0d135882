package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ctoup.com/devconnect/pkg/core/validation"
)

// Client calls the devconnect API and keeps the logged in session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	session    *Session
	now        func() time.Time
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithTokenStore(tokens TokenStore) Option {
	return func(c *Client) { c.tokens = tokens }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     NewMemoryTokenStore(),
		session:    &Session{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterUser creates an account. It does not log in: callers go on to LoginUser.
func (c *Client) RegisterUser(ctx context.Context, in validation.RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/users/register", in, nil)
}

// LoginUser stores the returned token, authenticates later requests with it and
// returns the decoded identity.
func (c *Client) LoginUser(ctx context.Context, in validation.LoginInput) (CurrentUser, error) {
	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", in, &out); err != nil {
		return CurrentUser{}, err
	}
	user, err := decodeToken(out.Token)
	if err != nil {
		return CurrentUser{}, err
	}
	if err := c.tokens.Save(ctx, out.Token); err != nil {
		return CurrentUser{}, fmt.Errorf("save token: %w", err)
	}
	c.session.set(out.Token, user)
	return user, nil
}

// LogoutUser forgets the session. The server side revocation is best effort.
func (c *Client) LogoutUser(ctx context.Context) error {
	if c.session.header() != "" {
		if err := c.do(ctx, http.MethodPost, "/api/users/logout", nil, nil); err != nil {
			log.Warn().Err(err).Msg("server logout failed")
		}
	}
	c.session.clear()
	if err := c.tokens.Delete(ctx); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// SetCurrentUser replaces the identity without touching the stored token.
func (c *Client) SetCurrentUser(user CurrentUser) {
	c.session.mu.Lock()
	defer c.session.mu.Unlock()
	c.session.user = user
}

func (c *Client) CurrentUser() CurrentUser {
	return c.session.current()
}

func (c *Client) IsAuthenticated() bool {
	return c.session.current().Identity.ID != uuid.Nil
}

// Restore resumes the session of a previously stored token. An expired token is deleted
// and the client stays anonymous.
func (c *Client) Restore(ctx context.Context) (bool, error) {
	token, err := c.tokens.Load(ctx)
	if errors.Is(err, ErrNoToken) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load token: %w", err)
	}
	user, err := decodeToken(token)
	if err != nil || (!user.ExpiresAt.IsZero() && !c.now().Before(user.ExpiresAt)) {
		c.session.clear()
		if delErr := c.tokens.Delete(ctx); delErr != nil {
			return false, fmt.Errorf("delete token: %w", delErr)
		}
		return false, nil
	}
	c.session.set(token, user)
	return true, nil
}

// FetchCurrentUser asks the server who the session belongs to.
func (c *Client) FetchCurrentUser(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	if err := c.do(ctx, http.MethodGet, "/api/users/current", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if header := c.session.header(); header != "" {
		req.Header.Set("Authorization", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status, Errors: map[string]string{}}
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		apiErr.Errors["message"] = strings.TrimSpace(string(data))
		return apiErr
	}
	for field, value := range body {
		if field == "status" {
			continue
		}
		if s, ok := value.(string); ok {
			apiErr.Errors[field] = s
		} else {
			apiErr.Errors[field] = fmt.Sprint(value)
		}
	}
	return apiErr
}
