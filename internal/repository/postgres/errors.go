package postgres

import (
	"errors"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// translateError maps driver errors onto domain errors so usecases never
// see pgx types. Unique violations become ErrDuplicate; this is how the
// storage-level (job_id, user_id) indexes surface to the workflows.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicate
	}
	return err
}
