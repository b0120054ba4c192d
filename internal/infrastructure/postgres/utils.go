package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueConstraint renvoie le nom de la contrainte violée si err est une
// violation de contrainte unique (23505), "" sinon.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// isUniqueViolation vérifie si err est une violation de contrainte unique.
func isUniqueViolation(err error) bool {
	return uniqueConstraint(err) != ""
}
