package storage

import (
	"context"
	"database/sql"

	"github.com/dkamau/studentportal/internal/dbx"
)

// Atomic is implemented by stores that can run several operations as one
// transaction. Callers that hold a plain Store may type-assert for it and
// fall back to non-atomic execution.
type Atomic interface {
	Atomically(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// TxStore is a SQLiteStore over a full database handle, able to run a
// function atomically with store operations bound to the transaction.
type TxStore struct {
	*SQLiteStore
	db *sql.DB
}

func NewTxStore(db *sql.DB) *TxStore {
	return &TxStore{SQLiteStore: NewSQLiteStore(db), db: db}
}

func (t *TxStore) Atomically(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteStore(tx))
	})
}
