package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Messages returned to API clients, keyed by the field they are reported under.
const (
	MsgEmailExists        = "Email already exists"
	MsgUserNotFound       = "User not found"
	MsgPasswordIncorrect  = "Password incorrect"
	MsgNoProfile          = "There is no profile for this user"
	MsgNoProfiles         = "There are no profiles"
	MsgHandleExists       = "That handle already exists"
	MsgExperienceNotFound = "Experience does not exist"
	MsgEducationNotFound  = "Education does not exist"
	MsgNoPostsFound       = "No posts found"
	MsgNoPostWithID       = "No post found with that id"
	MsgPostNotFound       = "No post found"
	MsgNotAuthorized      = "User not authorized"
	MsgAlreadyLiked       = "User already liked this post"
	MsgNotLiked           = "You have not yet liked this post"
	MsgCommentNotExists   = "Comment does not exist"
)

// FieldError is a rejected input: 400 with a field to message map.
type FieldError struct {
	Fields map[string]string
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Fields: map[string]string{field: message}}
}

func (e *FieldError) Error() string {
	return "invalid input: " + joinFields(e.Fields)
}

// NotFoundError is a missing resource: 404 with a field to message map.
type NotFoundError struct {
	Fields map[string]string
	Err    error
}

func NewNotFoundError(field, message string, err error) *NotFoundError {
	return &NotFoundError{Fields: map[string]string{field: message}, Err: err}
}

func (e *NotFoundError) Error() string {
	return "not found: " + joinFields(e.Fields)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// UnauthorizedError is an ownership violation: 401 with a field to message map.
type UnauthorizedError struct {
	Fields map[string]string
}

func NewUnauthorizedError(field, message string) *UnauthorizedError {
	return &UnauthorizedError{Fields: map[string]string{field: message}}
}

func (e *UnauthorizedError) Error() string {
	return "unauthorized: " + joinFields(e.Fields)
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, ", ")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation reports a Postgres unique_violation, optionally on a given constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
