package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"ctoup.com/devconnect/pkg/shared/repository/subentity"
)

const postColumns = `id, user_id, text, name, avatar, likes, comments, date`

const createPost = `-- name: CreatePost :one
INSERT INTO core_posts (id, user_id, text, name, avatar)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + postColumns + `
`

type CreatePostParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (CorePost, error) {
	row := q.db.QueryRow(ctx, createPost,
		arg.ID,
		arg.UserID,
		arg.Text,
		arg.Name,
		arg.Avatar,
	)
	return scanPost(row)
}

const getPostByID = `-- name: GetPostByID :one
SELECT ` + postColumns + ` FROM core_posts
WHERE id = $1 LIMIT 1
`

func (q *Queries) GetPostByID(ctx context.Context, id uuid.UUID) (CorePost, error) {
	row := q.db.QueryRow(ctx, getPostByID, id)
	return scanPost(row)
}

const lockPostByID = `-- name: LockPostByID :one
SELECT ` + postColumns + ` FROM core_posts
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockPostByID(ctx context.Context, id uuid.UUID) (CorePost, error) {
	row := q.db.QueryRow(ctx, lockPostByID, id)
	return scanPost(row)
}

const listPosts = `-- name: ListPosts :many
SELECT ` + postColumns + ` FROM core_posts
ORDER BY date DESC
LIMIT $1 OFFSET $2
`

type ListPostsParams struct {
	// Limit is NULL to return every post.
	Limit  pgtype.Int4 `json:"limit"`
	Offset int32       `json:"offset"`
}

func (q *Queries) ListPosts(ctx context.Context, arg ListPostsParams) ([]CorePost, error) {
	rows, err := q.db.Query(ctx, listPosts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CorePost{}
	for rows.Next() {
		i, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updatePostLikes = `-- name: UpdatePostLikes :one
UPDATE core_posts SET likes = $2
WHERE id = $1
RETURNING ` + postColumns + `
`

type UpdatePostLikesParams struct {
	ID    uuid.UUID        `json:"id"`
	Likes []subentity.Like `json:"likes"`
}

func (q *Queries) UpdatePostLikes(ctx context.Context, arg UpdatePostLikesParams) (CorePost, error) {
	row := q.db.QueryRow(ctx, updatePostLikes, arg.ID, arg.Likes)
	return scanPost(row)
}

const updatePostComments = `-- name: UpdatePostComments :one
UPDATE core_posts SET comments = $2
WHERE id = $1
RETURNING ` + postColumns + `
`

type UpdatePostCommentsParams struct {
	ID       uuid.UUID           `json:"id"`
	Comments []subentity.Comment `json:"comments"`
}

func (q *Queries) UpdatePostComments(ctx context.Context, arg UpdatePostCommentsParams) (CorePost, error) {
	row := q.db.QueryRow(ctx, updatePostComments, arg.ID, arg.Comments)
	return scanPost(row)
}

const deletePost = `-- name: DeletePost :one
DELETE FROM core_posts
WHERE id = $1
RETURNING id
`

func (q *Queries) DeletePost(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, deletePost, id)
	var deleted uuid.UUID
	err := row.Scan(&deleted)
	return deleted, err
}

func scanPost(row pgx.Row) (CorePost, error) {
	var i CorePost
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Text,
		&i.Name,
		&i.Avatar,
		&i.Likes,
		&i.Comments,
		&i.Date,
	)
	return i, err
}
