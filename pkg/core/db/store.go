package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ctoup.com/devconnect/pkg/core/db/repository"
)

// Store provides all functions to execute db queries and transactions
type Store interface {
	repository.Querier
	// ExecTx runs fn inside one transaction; the transaction is rolled back when fn fails.
	ExecTx(ctx context.Context, fn func(repository.Querier) error) error
	Ping(ctx context.Context) error
}

// SQLStore is the Postgres backed Store.
type SQLStore struct {
	*repository.Queries
	ConnPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries:  repository.New(connPool),
		ConnPool: connPool,
	}
}

func (s *SQLStore) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	tx, err := s.ConnPool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.ConnPool.Ping(ctx)
}

var _ Store = (*SQLStore)(nil)
