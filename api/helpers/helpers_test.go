package helpers

import (
	"errors"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetPagingSQL(t *testing.T) {
	page, size, huge := int32(3), int32(10), int32(500)

	unpaged := GetPagingSQL(PagingRequest{MaxPageSize: 50, DefaultPageSize: 20})
	assert.False(t, unpaged.IsPaged())

	paged := GetPagingSQL(PagingRequest{Page: &page, PageSize: &size, MaxPageSize: 50, DefaultPageSize: 20})
	assert.Equal(t, int32(10), paged.PageSize)
	assert.Equal(t, int32(20), paged.Offset)

	capped := GetPagingSQL(PagingRequest{PageSize: &huge, MaxPageSize: 50, DefaultPageSize: 20})
	assert.Equal(t, int32(50), capped.PageSize)
	assert.Equal(t, int32(0), capped.Offset)

	defaulted := GetPagingSQL(PagingRequest{Page: &page, MaxPageSize: 50, DefaultPageSize: 20})
	assert.Equal(t, int32(20), defaulted.PageSize)
	assert.Equal(t, int32(40), defaulted.Offset)

	lastPage, fifty := int32(math.MaxInt32), int32(50)
	far := GetPagingSQL(PagingRequest{Page: &lastPage, PageSize: &fifty, MaxPageSize: 50, DefaultPageSize: 20})
	assert.Equal(t, int32(50), far.PageSize)
	assert.Equal(t, int32(math.MaxInt32), far.Offset)
}

func TestResponses(t *testing.T) {
	assert.Equal(t, gin.H{"message": "boom"}, ErrorResponse(errors.New("boom")))
	assert.Equal(t, gin.H{"email": "Email is invalid"}, FieldsResponse(map[string]string{"email": "Email is invalid"}))
	assert.Equal(t, gin.H{"success": true}, SuccessResponse())
}

func TestUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	id := uuid.New()

	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, ok := UUIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	_, ok = UUIDParam(c, "id")
	assert.False(t, ok)
}
