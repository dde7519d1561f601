package capcodes

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertCapcode = `-- name: InsertCapcode :exec
INSERT INTO %s (id, capcode, created_at)
VALUES ($1, $2, $3)
`

type InsertCapcodeParams struct {
	ID        pgtype.UUID
	Capcode   string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) InsertCapcode(ctx context.Context, arg InsertCapcodeParams) error {
	_, err := q.db.Exec(ctx, fmt.Sprintf(insertCapcode, q.table), arg.ID, arg.Capcode, arg.CreatedAt)
	return err
}
