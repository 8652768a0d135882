package testutils

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ctoup.com/devconnect/pkg/shared/auth"
)

// MockAuthenticator accepts any bearer header and answers with fixed claims or a fixed error.
type MockAuthenticator struct {
	AuthenticateCalled bool
	LastHeader         string
	Claims             *auth.Claims
	MockError          error
}

func NewMockAuthenticator(identity auth.Identity) *MockAuthenticator {
	return &MockAuthenticator{Claims: ClaimsFor(identity)}
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, header string) (*auth.Claims, error) {
	m.AuthenticateCalled = true
	m.LastHeader = header
	if m.MockError != nil {
		return nil, m.MockError
	}
	if header == "" {
		return nil, auth.NewAuthError(auth.ErrorCodeMissingToken, "missing authorization header", nil)
	}
	return m.Claims, nil
}

// ClaimsFor builds unsigned claims valid for an hour.
func ClaimsFor(identity auth.Identity) *auth.Claims {
	now := time.Now()
	return &auth.Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}
