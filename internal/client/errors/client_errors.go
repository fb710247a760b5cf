package clienterrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client ID",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Client with this email already exists.",
		http.StatusBadRequest,
	)
)
