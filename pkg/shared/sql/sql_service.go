package sqlservice

import "github.com/jackc/pgx/v5/pgtype"

// PagingSQL is a LIMIT/OFFSET window. A zero PageSize selects every row.
type PagingSQL struct {
	Offset   int32
	PageSize int32
}

var Unpaged = PagingSQL{}

// Limit is the LIMIT parameter; NULL when the window is unbounded.
func (p PagingSQL) Limit() pgtype.Int4 {
	if p.PageSize <= 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: p.PageSize, Valid: true}
}

func (p PagingSQL) IsPaged() bool {
	return p.PageSize > 0
}
