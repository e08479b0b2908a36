package postgres

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories use
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// fitsInt4 reports whether id can match a SERIAL or INTEGER column. pgx
// refuses to encode larger values for int4 parameters.
func fitsInt4(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}
