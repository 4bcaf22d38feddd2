// Package dbx defines the database handles the user repositories are built
// on: DBTX, the query subset shared by connections and transactions, and
// WithTx, which brackets multi-statement credential updates in a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the repositories use. Both *sql.DB and *sql.Tx
// satisfy it, so a repository vended by the RepositoryManager works the same
// inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is what the service layer holds: the DBTX query surface plus the
// ability to start a transaction. *sql.DB satisfies it.
type DB interface {
	DBTX
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn inside a transaction: commit on success, rollback on error
// or panic. Panics are rethrown. Flows that read a credential and then
// overwrite it (change-password verifies the current hash before writing the
// new one) go through here so both statements see the same row state.
func WithTx(ctx context.Context, db DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
