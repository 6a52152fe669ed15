package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// PostgreSQL error codes the adapters react to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeQueryCanceled       = "57014"
)

// MapError converts pgx/pgconn errors to domain errors.
// A deadline on ctx becomes domain.ErrTimeout; plain cancellation passes through.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != nil && fmt.Sprint(id) != "" {
		label = fmt.Sprintf("%s %v", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", label, domain.ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", label, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w", label, domain.ErrValidation)
		case codeQueryCanceled:
			return fmt.Errorf("%s: %w: %w", label, domain.ErrTimeout, err)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", label, err)
}
