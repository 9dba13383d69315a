package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/cloud-task-manager/internal/store"
)

// SQLSTATE codes the tasks table can raise.
const (
	uniqueViolationCode  = "23505"
	checkViolationCode   = "23514"
	notNullViolationCode = "23502"
	stringTooLongCode    = "22001"
)

// pgErrorClass maps a SQLSTATE code to the store sentinel it represents and a
// short label for the wrapped message.
var pgErrorClass = map[string]struct {
	target error
	label  string
}{
	uniqueViolationCode:  {store.ErrDuplicate, "unique violation"},
	checkViolationCode:   {store.ErrInvalidEntity, "check constraint violation"},
	notNullViolationCode: {store.ErrInvalidEntity, "not null violation"},
	stringTooLongCode:    {store.ErrInvalidEntity, "value too long"},
}

// MapError translates a driver error into a store sentinel. The driver error
// stays in the chain for logging; unknown errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	class, ok := pgErrorClass[pgErr.Code]
	if !ok {
		return err
	}

	detail := pgErr.ConstraintName
	if detail == "" {
		detail = pgErr.ColumnName
	}
	if detail != "" {
		return fmt.Errorf("%w: %s (%s): %v", class.target, class.label, detail, err)
	}
	return fmt.Errorf("%w: %s: %v", class.target, class.label, err)
}

// IsCheckConstraintViolation reports whether err carries SQLSTATE 23514.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// CheckRowsAffected returns notFound (store.ErrNotFound when nil) if result
// touched no rows. UPDATE and DELETE use it to detect a missing id without a
// prior SELECT.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("nil sql.Result")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
