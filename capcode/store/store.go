package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/capcode/model"
	"encore.app/capcode/repository"
	"encore.app/capcode/repository/capcodes"
)

// Gateway durably records capcodes. Put is attempted once; durability after a nil
// return is the database's concern.
type Gateway interface {
	Put(ctx context.Context, record model.Record) error
}

// Store writes records through the capcode repository
type Store struct {
	capcodes capcodes.Querier
}

// NewStore creates a new Store over the repository queriers
func NewStore(repo *repository.Repository) *Store {
	return &Store{
		capcodes: repo.Capcodes,
	}
}

func (s *Store) Put(ctx context.Context, record model.Record) error {
	err := s.capcodes.InsertCapcode(ctx, capcodes.InsertCapcodeParams{
		ID:        pgtype.UUID{Bytes: record.ID, Valid: true},
		Capcode:   string(record.TransformedIdentifier),
		CreatedAt: pgtype.Timestamptz{Time: record.CreatedAt, Valid: true},
	})
	if err != nil {
		rlog.Error("failed to insert capcode record", "error", err, "record_id", record.ID, "class", classify(err))
		return fmt.Errorf("insert capcode record: %w", err)
	}

	return nil
}

// classify buckets database errors for logging.
func classify(err error) string {
	var e *pgconn.PgError
	if !errors.As(err, &e) {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "context"
		}
		return "unknown"
	}

	switch {
	case pgerrcode.IsConnectionException(e.Code):
		return "connection_exception"
	case pgerrcode.IsInsufficientResources(e.Code):
		return "insufficient_resources"
	case pgerrcode.IsIntegrityConstraintViolation(e.Code):
		return "integrity_constraint_violation"
	case pgerrcode.IsOperatorIntervention(e.Code):
		return "operator_intervention"
	default:
		return "database_error"
	}
}
