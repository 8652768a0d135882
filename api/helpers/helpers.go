package helpers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ErrorResponse(err error) gin.H {
	log.Error().Err(err).Msg("request failed")
	return gin.H{
		"message": err.Error(),
	}
}

func ErrorStringResponse(errMsg string) gin.H {
	return gin.H{
		"message": errMsg,
	}
}

// FieldsResponse renders a field to message map as the response body.
func FieldsResponse(fields map[string]string) gin.H {
	body := make(gin.H, len(fields))
	for field, message := range fields {
		body[field] = message
	}
	return body
}

func SuccessResponse() gin.H {
	return gin.H{"success": true}
}

// UUIDParam parses the named path parameter; ok is false when it is not a UUID.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
