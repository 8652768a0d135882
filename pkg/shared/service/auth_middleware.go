package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ctoup.com/devconnect/pkg/shared/auth"
)

// Authenticator turns an Authorization header into verified claims.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*auth.Claims, error)
}

// AuthMiddleware guards the routes it is attached to with a bearer token.
type AuthMiddleware struct {
	authenticator Authenticator
}

func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

func (am *AuthMiddleware) MiddlewareFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)
		claims, err := am.authenticator.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			var authErr *auth.AuthError
			if errors.As(err, &authErr) {
				logger.Debug().Str("code", authErr.Code).Msg("authentication failed")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"status":  http.StatusUnauthorized,
					"message": http.StatusText(http.StatusUnauthorized),
				})
				return
			}
			logger.Error().Err(err).Msg("authentication failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  http.StatusInternalServerError,
				"message": "Authentication unavailable",
			})
			return
		}

		c.Set(auth.AUTH_USER_ID, claims.Identity.ID)
		c.Set(auth.AUTH_CLAIMS, claims)
		c.Next()
	}
}

// GetAuthenticatedUser returns the claims stored by the middleware; ok is false on unguarded routes.
func GetAuthenticatedUser(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(auth.AUTH_CLAIMS)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok && claims != nil
}

func GetAuthenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(auth.AUTH_USER_ID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
