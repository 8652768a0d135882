package helpers

import (
	"math"

	sqlservice "ctoup.com/devconnect/pkg/shared/sql"
)

// PagingRequest is bound from the query string. Both fields are optional.
type PagingRequest struct {
	Page            *int32 `form:"page" binding:"omitempty,min=1"`
	PageSize        *int32 `form:"page_size" binding:"omitempty,min=1"`
	MaxPageSize     int32  `form:"-"`
	DefaultPageSize int32  `form:"-"`
}

// GetPagingSQL turns a request into a window. Without page and page_size every row is selected.
func GetPagingSQL(pagingRequest PagingRequest) sqlservice.PagingSQL {
	if pagingRequest.Page == nil && pagingRequest.PageSize == nil {
		return sqlservice.Unpaged
	}

	pageSize := pagingRequest.DefaultPageSize
	if pagingRequest.PageSize != nil {
		if *pagingRequest.PageSize > pagingRequest.MaxPageSize {
			pageSize = pagingRequest.MaxPageSize
		} else {
			pageSize = *pagingRequest.PageSize
		}
	}

	// Pages past the int32 range land on an empty window.
	offset := int64(0)
	if pagingRequest.Page != nil && *pagingRequest.Page > 1 {
		offset = int64(pageSize) * (int64(*pagingRequest.Page) - 1)
	}
	if offset > math.MaxInt32 {
		offset = math.MaxInt32
	}

	return sqlservice.PagingSQL{
		Offset:   int32(offset),
		PageSize: pageSize,
	}
}
