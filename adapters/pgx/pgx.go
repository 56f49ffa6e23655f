package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estately/estately/core"
)

// Adapter implements the core storage ports over a pgx connection pool.
// The pool is safe for concurrent use; every method is one round trip.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.Store = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
