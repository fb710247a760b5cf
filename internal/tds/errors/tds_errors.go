package tdserrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"TDS record not found",
		http.StatusNotFound,
	)
	ErrInvalidTDSID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid TDS record ID",
		http.StatusBadRequest,
	)
	ErrPanAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A record with this PAN card number already exists",
		http.StatusBadRequest,
	)
)
