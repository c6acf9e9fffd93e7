package catalog

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors surfaced by the service. The web layer maps these to
// HTTP statuses with errors.Is; everything else is a server error.
var (
	// ErrUnknownTable is returned for table names outside the registry.
	ErrUnknownTable = errors.New("unknown product table")

	// ErrNotFound is returned when no row matches the given identifier.
	ErrNotFound = errors.New("product not found")

	// ErrEmptyPayload is returned for writes with no columns supplied.
	ErrEmptyPayload = errors.New("no fields provided")

	// ErrInvalidColumn is returned for column names that fail identifier
	// syntax validation.
	ErrInvalidColumn = errors.New("invalid column name")

	// ErrEmailTaken is returned when a signup email is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not differentiate the two in responses.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation. The signup table enforces email uniqueness at
// the database level, so concurrent duplicate signups surface here
// rather than racing a check-then-insert.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
