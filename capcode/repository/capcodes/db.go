package capcodes

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultTable is the table created by the service migrations.
const DefaultTable = "capcodes"

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
}

// New returns queries against table, quoted as a Postgres identifier.
func New(db DBTX, table string) *Queries {
	if table == "" {
		table = DefaultTable
	}
	return &Queries{
		db:    db,
		table: pgx.Identifier{table}.Sanitize(),
	}
}

type Queries struct {
	db    DBTX
	table string
}
