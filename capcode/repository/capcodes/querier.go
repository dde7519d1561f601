package capcodes

import (
	"context"
)

type Querier interface {
	InsertCapcode(ctx context.Context, arg InsertCapcodeParams) error
}

var _ Querier = (*Queries)(nil)
