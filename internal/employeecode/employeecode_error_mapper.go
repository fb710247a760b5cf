package employeecode

import (
	"errors"

	employeecodeerrors "hr-payroll/internal/employeecode/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeecodeerrors.ErrCodeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_employee_codes_code" {
			return employeecodeerrors.ErrCodeAlreadyExists
		}
	}

	return err
}
