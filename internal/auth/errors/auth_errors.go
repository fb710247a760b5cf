package autherrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	// Deliberately undifferentiated: it never reveals whether the
	// email exists.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Login failed. Invalid username or password.",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"An error occurred while processing your request.",
		http.StatusInternalServerError,
	)
)
