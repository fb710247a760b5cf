package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"hr-payroll/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error passes through", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Employee not found", httpErr.Message)
	})

	t.Run("wrapped app error is still found", func(t *testing.T) {
		inner := apperror.New(apperror.CodeConflict, "Employee code already exists", http.StatusBadRequest)
		err := apperror.Wrap(inner, apperror.CodeConflict, "Employee code already exists", http.StatusBadRequest)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	// Store internals must never reach the dashboard.
	t.Run("plain error hides behind the generic message", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "An error occurred while processing your request.", httpErr.Message)
	})
}

func TestWrap(t *testing.T) {
	t.Run("keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("db error")
		err := apperror.Wrap(cause, apperror.CodeInternalError, "An error occurred while saving the payslip.", http.StatusInternalServerError)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil in, nil out", func(t *testing.T) {
		assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))
	})
}
