package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the subset of *sql.DB and *sql.Tx used by SQL-backed stores,
// so a store can run on either a pooled connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
