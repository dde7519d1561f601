package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/capcode/repository/capcodes"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Capcodes capcodes.Querier
}

// NewRepository creates a new Repository writing capcodes to table
func NewRepository(db *pgxpool.Pool, table string) *Repository {
	return &Repository{
		Capcodes: capcodes.New(db, table),
	}
}
