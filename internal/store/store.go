package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pinspot/pinspot_api/internal/db"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks a concurrent-write collision (unique violation or
	// serialization failure); callers may retry the enclosing sequence.
	ErrConflict = errors.New("conflicting concurrent write")
)

type Store struct {
	db *db.DB
}

func New(database *db.DB) *Store {
	return &Store{db: database}
}

func (s *Store) pool() *pgxpool.Pool {
	return s.db.Pool()
}

// asStoreErr maps driver errors onto the package sentinels.
func asStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "40001":
			return ErrConflict
		}
	}
	return err
}
