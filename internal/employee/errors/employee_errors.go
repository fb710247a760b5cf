package employeeerrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfJoining = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date_of_joining format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
