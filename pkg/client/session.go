package client

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ctoup.com/devconnect/pkg/shared/auth"
)

// CurrentUser is the identity decoded from the session token. The zero value is anonymous.
type CurrentUser struct {
	auth.Identity
	ExpiresAt time.Time `json:"exp"`
}

// Session holds the auth header and the decoded identity shared by every request of a Client.
type Session struct {
	mu         sync.RWMutex
	authHeader string
	user       CurrentUser
}

func (s *Session) set(header string, user CurrentUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authHeader = header
	s.user = user
}

func (s *Session) clear() {
	s.set("", CurrentUser{})
}

func (s *Session) header() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authHeader
}

func (s *Session) current() CurrentUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// decodeToken reads the claims of a "Bearer <jwt>" value without checking the signature,
// which only the server can do.
func decodeToken(bearer string) (CurrentUser, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(bearer, auth.BearerPrefix))
	claims := &auth.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return CurrentUser{}, fmt.Errorf("decode token: %w", err)
	}
	if claims.Identity.ID == uuid.Nil {
		return CurrentUser{}, fmt.Errorf("decode token: missing user id")
	}
	user := CurrentUser{Identity: claims.Identity}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}
	return user, nil
}
