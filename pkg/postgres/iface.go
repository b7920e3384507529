package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is what repositories run their statements on: a pool or a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// PgxIface is a DBTX that can also open transactions. *pgxpool.Pool and
// pgxmock.PgxPoolIface satisfy it.
type PgxIface interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}
