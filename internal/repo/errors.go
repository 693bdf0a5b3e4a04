package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrProductNotFound is returned when a product does not exist or is not
// owned by the requesting user. The two cases are deliberately not
// distinguished, so an id cannot be probed across owners.
var ErrProductNotFound = errors.New("product not found")

// ErrUserNotFound is returned when a user is not found in the repository.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")

const pgUniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}
