package core

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ctoup.com/devconnect/api/helpers"
	"ctoup.com/devconnect/pkg/core/service"
	"ctoup.com/devconnect/pkg/shared/auth"
	access "ctoup.com/devconnect/pkg/shared/service"
)

// writeError maps service errors to their status: invalid input 400, not found 404,
// ownership 401, throttled 429, anything else 500.
func writeError(c *gin.Context, err error) {
	var (
		fieldErr     *service.FieldError
		notFound     *service.NotFoundError
		unauthorized *service.UnauthorizedError
		rateLimited  *service.RateLimitError
	)
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, helpers.FieldsResponse(fieldErr.Fields))
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, helpers.FieldsResponse(notFound.Fields))
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, helpers.FieldsResponse(unauthorized.Fields))
	case errors.As(err, &rateLimited):
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(rateLimited.RetryAfter.Seconds()))))
		c.JSON(http.StatusTooManyRequests, helpers.ErrorStringResponse(rateLimited.Error()))
	default:
		logger := access.GetLoggerFromContext(c)
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, helpers.ErrorStringResponse(err.Error()))
	}
}

// bindInput decodes a JSON or form body into in. An empty body leaves in zero valued so that
// validation reports the missing fields.
func bindInput(c *gin.Context, in interface{}) bool {
	if err := c.ShouldBind(in); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err))
		return false
	}
	return true
}

// authIdentity returns the caller of a guarded route. It answers 401 itself when missing.
func authIdentity(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := access.GetAuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, helpers.ErrorStringResponse(http.StatusText(http.StatusUnauthorized)))
		return nil, false
	}
	return claims, true
}

// idParam parses a UUID path parameter. A malformed id is reported like a missing resource.
func idParam(c *gin.Context, name, field, message string) (uuid.UUID, bool) {
	id, ok := helpers.UUIDParam(c, name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{field: message})
		return uuid.Nil, false
	}
	return id, true
}
