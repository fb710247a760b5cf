package employeecodeerrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee code not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	// Distinct from ErrCodeAlreadyExists so the dashboard can tell a
	// duplicate assignment apart from a taken code string.
	ErrEmployeeAlreadyHasCode = apperror.New(
		apperror.CodeConflict,
		"This employee already has an employee code",
		http.StatusBadRequest,
	)
	ErrCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusBadRequest,
	)
)
