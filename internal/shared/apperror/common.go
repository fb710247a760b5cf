package apperror

import (
	"fmt"
	"net/http"
)

// ErrInternal is the catch-all failure; ToHTTP hides every unmapped
// error behind it so store internals never reach the dashboard.
var ErrInternal = New(
	CodeInternalError,
	"An error occurred while processing your request.",
	http.StatusInternalServerError,
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
