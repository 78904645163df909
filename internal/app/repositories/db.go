package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx operations repositories run statements on.
// *pgxpool.Pool and pgx.Tx both satisfy it, so a repository can be rebound
// onto a transaction with WithTx and keep the same query code.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool adds transaction support on top of DB. Satisfied by *pgxpool.Pool.
type Pool interface {
	DB
	Begin(ctx context.Context) (pgx.Tx, error)
}
