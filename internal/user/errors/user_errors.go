package usererrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found.",
		http.StatusNotFound,
	)
	// The legacy API surfaced a duplicate registration as its generic
	// 500; the conflict code keeps it distinguishable internally.
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"An error occurred while processing your request.",
		http.StatusInternalServerError,
	)
)
