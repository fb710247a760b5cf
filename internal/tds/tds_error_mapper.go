package tds

import (
	"errors"

	tdserrors "hr-payroll/internal/tds/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tdserrors.ErrRecordNotFound
	}

	// The pre-checks race with concurrent writers; the unique index is
	// the backstop and its violation still reads as the same conflict.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_tds_records_pan" {
			return tdserrors.ErrPanAlreadyExists
		}
	}

	return err
}
