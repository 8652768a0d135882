package service

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	RequestIDKey    contextKey = "requestID"
	LoggerKey       contextKey = "logger"
	RequestIDHeader            = "X-Request-ID"
)

// RequestIDMiddleware is a Gin middleware to add a unique request ID to each request.
// It also creates a request-scoped zerolog instance.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		requestLogger := log.With().
			Str("request_id", requestID).
			Logger()

		ctx := context.WithValue(c.Request.Context(), LoggerKey, requestLogger)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		entry := requestLogger.Info()
		if c.Writer.Status() >= 500 {
			entry = requestLogger.Error()
		}
		if userID, ok := GetAuthenticatedUserID(c); ok {
			entry = entry.Str("user_id", userID.String())
		}
		entry.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("url", c.Request.URL.String()).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

func GetLoggerFromContext(c *gin.Context) zerolog.Logger {
	if c.Request != nil {
		if logger, ok := c.Request.Context().Value(LoggerKey).(zerolog.Logger); ok {
			return logger
		}
	}
	return log.Logger // Fallback to global logger
}
